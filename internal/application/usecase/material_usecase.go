package usecase

import (
	"context"
	"time"

	"github.com/innovasport/almacen-api/internal/application/dto"
	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/domain/repository"
)

// MaterialReportGenerator puerto para la generación del informe de stock.
// Lo implementa infrastructure/pdf.
type MaterialReportGenerator interface {
	GenerateStockReport(ctx context.Context, materials []*entity.Material, generatedAt time.Time) ([]byte, error)
}

// MaterialUseCase casos de uso CRUD para materiales. Cantidades y precios se
// normalizan a 2 decimales (redondeo mitad lejos de cero) antes de persistir.
type MaterialUseCase struct {
	repo   repository.MaterialRepository
	report MaterialReportGenerator
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, report MaterialReportGenerator) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, report: report}
}

// List devuelve todos los materiales.
func (uc *MaterialUseCase) List(ctx context.Context) (*dto.MaterialListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Materials: items}, nil
}

// GetByName busca un material por nombre exacto. Devuelve (nil, nil) si no existe.
func (uc *MaterialUseCase) GetByName(ctx context.Context, name string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// Create da de alta un material, normaliza los decimales y estampa la auditoría.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	m := &entity.Material{
		Name:        in.Name,
		Quantity:    in.Quantity.Round(2),
		Valor:       in.Valor.Round(2),
		Factura:     in.Factura,
		Category:    in.Category,
		Description: in.Description,
		LastDestiny: in.LastDestiny,
		UpdatedBy:   in.UpdatedBy,
		LastUpdated: time.Now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si el id no existe.
// Un parche sin campos se acepta como toque de metadatos (solo auditoría).
func (uc *MaterialUseCase) Update(ctx context.Context, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	patch := repository.MaterialPatch{
		Name:        in.Name,
		Category:    in.Category,
		Factura:     in.Factura,
		Description: in.Description,
		LastDestiny: in.LastDestiny,
		UpdatedBy:   in.UpdatedBy,
	}
	if in.Quantity != nil {
		q := in.Quantity.Round(2)
		patch.Quantity = &q
	}
	if in.Valor != nil {
		v := in.Valor.Round(2)
		patch.Valor = &v
	}
	m, err := uc.repo.PartialUpdate(ctx, in.ID, patch)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// Adjust actualización especializada de cantidad y precio unitario, ambos
// redondeados a 2 decimales. Devuelve (nil, nil) si el id no existe.
func (uc *MaterialUseCase) Adjust(ctx context.Context, in dto.AdjustMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.UpdateQuantityValor(ctx, in.ID, in.Quantity.Round(2), in.Valor.Round(2), in.UpdatedBy)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := toMaterialResponse(m)
	return &out, nil
}

// Delete elimina un material por id. Idempotente: borrar un id inexistente
// no es un error.
func (uc *MaterialUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// StockReportPDF genera el informe de stock en PDF con el estado actual.
func (uc *MaterialUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateStockReport(ctx, list, time.Now())
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		Valor:       m.Valor,
		Factura:     m.Factura,
		Category:    m.Category,
		Description: m.Description,
		LastDestiny: m.LastDestiny,
		UpdatedBy:   m.UpdatedBy,
		LastUpdated: m.LastUpdated,
	}
}
