package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// materialColumns proyección fija de la tabla materials. Las columnas de texto
// opcionales son NULLables en el esquema y se leen como cadena vacía.
const materialColumns = `id, name, quantity, valor,
	COALESCE(factura, ''), COALESCE(category, ''), COALESCE(description, ''),
	COALESCE(last_destiny, ''), COALESCE(updated_by, ''), last_updated`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository construye el adaptador de persistencia para materiales.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{pool: pool}
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.Name, &m.Quantity, &m.Valor,
		&m.Factura, &m.Category, &m.Description,
		&m.LastDestiny, &m.UpdatedBy, &m.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List devuelve todos los materiales.
func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByID obtiene un material por ID. Devuelve (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	m, err := scanMaterial(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material by id: %w", err)
	}
	return m, nil
}

// GetByName obtiene un material por nombre. Devuelve (nil, nil) si no existe.
func (r *MaterialRepo) GetByName(ctx context.Context, name string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE name = $1 LIMIT 1`
	m, err := scanMaterial(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material by name: %w", err)
	}
	return m, nil
}

// Create inserta un material y asigna el ID generado.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (name, quantity, valor, factura, category, description, last_destiny, updated_by, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		m.Name, m.Quantity, m.Valor, m.Factura, m.Category, m.Description,
		m.LastDestiny, m.UpdatedBy, m.LastUpdated,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// materialPatchSQL arma el UPDATE parcial con squirrel: un fragmento SET por campo
// presente, en orden de campo fijo para que el SQL generado sea estable. Las
// columnas de auditoría se añaden siempre, haya o no otros campos (toque de
// metadatos). Los valores viajan únicamente como parámetros posicionales.
func materialPatchSQL(id int64, p repository.MaterialPatch, now time.Time) (string, []interface{}, error) {
	b := psql.Update("materials")
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Category != nil {
		b = b.Set("category", *p.Category)
	}
	if p.Quantity != nil {
		b = b.Set("quantity", *p.Quantity)
	}
	if p.Valor != nil {
		b = b.Set("valor", *p.Valor)
	}
	if p.Factura != nil {
		b = b.Set("factura", *p.Factura)
	}
	if p.Description != nil {
		b = b.Set("description", *p.Description)
	}
	if p.LastDestiny != nil {
		b = b.Set("last_destiny", *p.LastDestiny)
	}
	b = b.Set("updated_by", p.UpdatedBy).
		Set("last_updated", now).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + materialColumns)
	return b.ToSql()
}

// PartialUpdate aplica un parche de campos opcionales y devuelve la fila
// resultante. Devuelve (nil, nil) si el ID no existe.
func (r *MaterialRepo) PartialUpdate(ctx context.Context, id int64, patch repository.MaterialPatch) (*entity.Material, error) {
	query, args, err := materialPatchSQL(id, patch, time.Now())
	if err != nil {
		return nil, fmt.Errorf("build material update: %w", err)
	}
	m, err := scanMaterial(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update material: %w", err)
	}
	return m, nil
}

// UpdateQuantityValor actualización especializada de cantidad y precio unitario.
// Los valores llegan ya normalizados a 2 decimales desde el caso de uso.
func (r *MaterialRepo) UpdateQuantityValor(ctx context.Context, id int64, quantity, valor decimal.Decimal, updatedBy string) (*entity.Material, error) {
	query := `
		UPDATE materials SET quantity = $2, valor = $3, updated_by = $4, last_updated = $5
		WHERE id = $1
		RETURNING ` + materialColumns
	m, err := scanMaterial(r.pool.QueryRow(ctx, query, id, quantity, valor, updatedBy, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update material quantity/valor: %w", err)
	}
	return m, nil
}

// Delete elimina un material por ID. Idempotente: no falla si la fila no existe.
func (r *MaterialRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}
