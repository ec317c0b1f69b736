package usecase

import (
	"context"
	"time"

	"github.com/innovasport/almacen-api/internal/application/dto"
	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/domain/repository"
)

// ObraExporter puerto para la exportación del listado de obras a hoja de
// cálculo. Lo implementa infrastructure/excel.
type ObraExporter interface {
	ExportObras(ctx context.Context, obras []*entity.Obra) ([]byte, error)
}

// ObraUseCase casos de uso CRUD para obras.
type ObraUseCase struct {
	repo     repository.ObraRepository
	exporter ObraExporter
}

// NewObraUseCase construye el caso de uso.
func NewObraUseCase(repo repository.ObraRepository, exporter ObraExporter) *ObraUseCase {
	return &ObraUseCase{repo: repo, exporter: exporter}
}

// List devuelve todas las obras.
func (uc *ObraUseCase) List(ctx context.Context) (*dto.ObraListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ObraResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toObraResponse(o))
	}
	return &dto.ObraListResponse{Obras: items}, nil
}

// Create da de alta una obra. Importe se normaliza a 2 decimales; created_at
// y updated_at se estampan al insertar.
func (uc *ObraUseCase) Create(ctx context.Context, in dto.CreateObraRequest) (*dto.ObraResponse, error) {
	now := time.Now()
	o := &entity.Obra{
		Obra:          in.Obra,
		Email:         in.Email,
		Provincia:     in.Provincia,
		Localidad:     in.Localidad,
		Importe:       in.Importe.Round(2),
		Contacto:      in.Contacto,
		Observaciones: in.Observaciones,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	out := toObraResponse(o)
	return &out, nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si el id no existe.
func (uc *ObraUseCase) Update(ctx context.Context, in dto.UpdateObraRequest) (*dto.ObraResponse, error) {
	patch := repository.ObraPatch{
		Obra:          in.Obra,
		Email:         in.Email,
		Provincia:     in.Provincia,
		Localidad:     in.Localidad,
		Contacto:      in.Contacto,
		Observaciones: in.Observaciones,
	}
	if in.Importe != nil {
		imp := in.Importe.Round(2)
		patch.Importe = &imp
	}
	o, err := uc.repo.PartialUpdate(ctx, in.ID, patch)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	out := toObraResponse(o)
	return &out, nil
}

// Delete elimina una obra por id. Idempotente.
func (uc *ObraUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ExportXLSX genera la hoja de cálculo con el listado completo de obras.
func (uc *ObraUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportObras(ctx, list)
}

func toObraResponse(o *entity.Obra) dto.ObraResponse {
	return dto.ObraResponse{
		ID:            o.ID,
		Obra:          o.Obra,
		Email:         o.Email,
		Provincia:     o.Provincia,
		Localidad:     o.Localidad,
		Importe:       o.Importe,
		Contacto:      o.Contacto,
		Observaciones: o.Observaciones,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
