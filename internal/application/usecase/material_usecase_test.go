package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovasport/almacen-api/internal/application/dto"
	"github.com/innovasport/almacen-api/internal/application/usecase"
	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/domain/repository"
)

// fakeMaterialRepo repositorio en memoria con la misma semántica que el
// adaptador PostgreSQL: (nil, nil) cuando no hay fila y delete idempotente.
type fakeMaterialRepo struct {
	rows   map[int64]*entity.Material
	nextID int64
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{rows: make(map[int64]*entity.Material)}
}

func (f *fakeMaterialRepo) List(context.Context) ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(f.rows))
	for i := int64(1); i <= f.nextID; i++ {
		if m, ok := f.rows[i]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id int64) (*entity.Material, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) GetByName(_ context.Context, name string) (*entity.Material, error) {
	for _, m := range f.rows {
		if m.Name == name {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	f.nextID++
	m.ID = f.nextID
	cp := *m
	f.rows[m.ID] = &cp
	return nil
}

func (f *fakeMaterialRepo) PartialUpdate(_ context.Context, id int64, patch repository.MaterialPatch) (*entity.Material, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.Quantity != nil {
		m.Quantity = *patch.Quantity
	}
	if patch.Valor != nil {
		m.Valor = *patch.Valor
	}
	if patch.Factura != nil {
		m.Factura = *patch.Factura
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.LastDestiny != nil {
		m.LastDestiny = *patch.LastDestiny
	}
	m.UpdatedBy = patch.UpdatedBy
	m.LastUpdated = time.Now()
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) UpdateQuantityValor(_ context.Context, id int64, quantity, valor decimal.Decimal, updatedBy string) (*entity.Material, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	m.Quantity = quantity
	m.Valor = valor
	m.UpdatedBy = updatedBy
	m.LastUpdated = time.Now()
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

// stubReport evita generar PDF reales en los tests de caso de uso.
type stubReport struct{ calls int }

func (s *stubReport) GenerateStockReport(context.Context, []*entity.Material, time.Time) ([]byte, error) {
	s.calls++
	return []byte("%PDF-stub"), nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// La regla de redondeo es mitad lejos de cero a 2 decimales:
// 10.005 → 10.01 y 5.004 → 5.00.
func TestMaterialCreate_NormalizaDecimalesYEstampaAuditoria(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &stubReport{})

	out, err := uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name:        "Cemento",
		Quantity:    dec("10.005"),
		Valor:       dec("5.004"),
		Category:    "obra",
		LastDestiny: "bodega",
		UpdatedBy:   "alice@x.com",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Quantity.Equal(dec("10.01")), "quantity: %s", out.Quantity)
	assert.True(t, out.Valor.Equal(dec("5.00")), "valor: %s", out.Valor)
	assert.Equal(t, "alice@x.com", out.UpdatedBy)
	assert.False(t, out.LastUpdated.IsZero(), "lastUpdated debe estamparse al crear")
	assert.NotZero(t, out.ID)
}

// Round-trip: alta seguida de búsqueda devuelve los mismos campos salvo id
// y auditoría, con los decimales ya normalizados.
func TestMaterialCreate_RoundTrip(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &stubReport{})

	in := dto.CreateMaterialRequest{
		Name:        "Ladrillo",
		Quantity:    dec("300"),
		Valor:       dec("0.35"),
		Factura:     "F-2025-117",
		Category:    "unidad",
		Description: "hueco doble",
		UpdatedBy:   "bob@x.com",
	}
	created, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	got, err := uc.GetByName(context.Background(), "Ladrillo")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.True(t, got.Quantity.Equal(dec("300.00")))
	assert.True(t, got.Valor.Equal(dec("0.35")))
	assert.Equal(t, in.Factura, got.Factura)
	assert.Equal(t, in.Category, got.Category)
	assert.Equal(t, in.Description, got.Description)
}

// Un parche sin campos es un toque de metadatos: aplicado dos veces deja
// intactos todos los campos no auditados.
func TestMaterialUpdate_SoloAuditoriaEsIdempotente(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &stubReport{})

	created, err := uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "Arena", Quantity: dec("7.50"), Valor: dec("12.00"), UpdatedBy: "alice@x.com",
	})
	require.NoError(t, err)

	touch := dto.UpdateMaterialRequest{ID: created.ID, UpdatedBy: "bob@x.com"}
	first, err := uc.Update(context.Background(), touch)
	require.NoError(t, err)
	second, err := uc.Update(context.Background(), touch)
	require.NoError(t, err)

	for _, got := range []*dto.MaterialResponse{first, second} {
		require.NotNil(t, got)
		assert.Equal(t, "Arena", got.Name)
		assert.True(t, got.Quantity.Equal(dec("7.50")))
		assert.True(t, got.Valor.Equal(dec("12.00")))
		assert.Equal(t, "bob@x.com", got.UpdatedBy)
	}
}

// Los campos no incluidos en el parche no cambian.
func TestMaterialUpdate_ParcheParcialNoTocaElResto(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &stubReport{})

	created, err := uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "Grava", Quantity: dec("4.00"), Valor: dec("9.99"),
		Description: "triturada", UpdatedBy: "alice@x.com",
	})
	require.NoError(t, err)

	q := dec("6.125")
	got, err := uc.Update(context.Background(), dto.UpdateMaterialRequest{
		ID: created.ID, Quantity: &q, UpdatedBy: "bob@x.com",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.Quantity.Equal(dec("6.13")), "quantity se redondea en el parche")
	assert.Equal(t, "Grava", got.Name)
	assert.True(t, got.Valor.Equal(dec("9.99")))
	assert.Equal(t, "triturada", got.Description)
}

func TestMaterialUpdate_IdInexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo(), &stubReport{})

	got, err := uc.Update(context.Background(), dto.UpdateMaterialRequest{ID: 99, UpdatedBy: "bob"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMaterialAdjust_RedondeaCantidadYValor(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &stubReport{})

	created, err := uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "Yeso", Quantity: dec("1"), Valor: dec("1"), UpdatedBy: "alice@x.com",
	})
	require.NoError(t, err)

	got, err := uc.Adjust(context.Background(), dto.AdjustMaterialRequest{
		ID: created.ID, Quantity: dec("2.345"), Valor: dec("3.455"), UpdatedBy: "bob@x.com",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.True(t, got.Quantity.Equal(dec("2.35")))
	assert.True(t, got.Valor.Equal(dec("3.46")))
	assert.Equal(t, "bob@x.com", got.UpdatedBy)
}

// Borrar un id inexistente no es error, y borrar dos veces es seguro.
func TestMaterialDelete_Idempotente(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &stubReport{})

	require.NoError(t, uc.Delete(context.Background(), 42))

	created, err := uc.Create(context.Background(), dto.CreateMaterialRequest{
		Name: "Cal", Quantity: dec("1"), Valor: dec("1"), UpdatedBy: "alice@x.com",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	require.NoError(t, uc.Delete(context.Background(), created.ID))

	got, err := uc.GetByName(context.Background(), "Cal")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMaterialStockReport_UsaElGenerador(t *testing.T) {
	repo := newFakeMaterialRepo()
	report := &stubReport{}
	uc := usecase.NewMaterialUseCase(repo, report)

	data, err := uc.StockReportPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 1, report.calls)
}
