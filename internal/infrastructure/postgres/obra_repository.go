package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/innovasport/almacen-api/internal/domain/entity"
	"github.com/innovasport/almacen-api/internal/domain/repository"
)

var _ repository.ObraRepository = (*ObraRepo)(nil)

const obraColumns = `id, obra, email,
	COALESCE(provincia, ''), COALESCE(localidad, ''), importe,
	COALESCE(contacto, ''), COALESCE(observaciones, ''), created_at, updated_at`

// ObraRepo implementación del puerto ObraRepository sobre PostgreSQL.
type ObraRepo struct {
	pool *pgxpool.Pool
}

// NewObraRepository construye el adaptador de persistencia para obras.
func NewObraRepository(pool *pgxpool.Pool) *ObraRepo {
	return &ObraRepo{pool: pool}
}

func scanObra(row pgx.Row) (*entity.Obra, error) {
	var o entity.Obra
	err := row.Scan(
		&o.ID, &o.Obra, &o.Email,
		&o.Provincia, &o.Localidad, &o.Importe,
		&o.Contacto, &o.Observaciones, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List devuelve todas las obras.
func (r *ObraRepo) List(ctx context.Context) ([]*entity.Obra, error) {
	query := `SELECT ` + obraColumns + ` FROM obras ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list obras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Obra
	for rows.Next() {
		o, err := scanObra(rows)
		if err != nil {
			return nil, fmt.Errorf("scan obra: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetByID obtiene una obra por ID. Devuelve (nil, nil) si no existe.
func (r *ObraRepo) GetByID(ctx context.Context, id int64) (*entity.Obra, error) {
	query := `SELECT ` + obraColumns + ` FROM obras WHERE id = $1`
	o, err := scanObra(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obra by id: %w", err)
	}
	return o, nil
}

// Create inserta una obra y asigna el ID generado.
func (r *ObraRepo) Create(ctx context.Context, o *entity.Obra) error {
	query := `
		INSERT INTO obras (obra, email, provincia, localidad, importe, contacto, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		o.Obra, o.Email, o.Provincia, o.Localidad, o.Importe,
		o.Contacto, o.Observaciones, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert obra: %w", err)
	}
	return nil
}

// obraPatchSQL arma el UPDATE parcial en orden de campo fijo; updated_at se
// estampa siempre. Mismo esquema de construcción que materialPatchSQL.
func obraPatchSQL(id int64, p repository.ObraPatch, now time.Time) (string, []interface{}, error) {
	b := psql.Update("obras")
	if p.Obra != nil {
		b = b.Set("obra", *p.Obra)
	}
	if p.Email != nil {
		b = b.Set("email", *p.Email)
	}
	if p.Provincia != nil {
		b = b.Set("provincia", *p.Provincia)
	}
	if p.Localidad != nil {
		b = b.Set("localidad", *p.Localidad)
	}
	if p.Importe != nil {
		b = b.Set("importe", *p.Importe)
	}
	if p.Contacto != nil {
		b = b.Set("contacto", *p.Contacto)
	}
	if p.Observaciones != nil {
		b = b.Set("observaciones", *p.Observaciones)
	}
	b = b.Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + obraColumns)
	return b.ToSql()
}

// PartialUpdate aplica un parche de campos opcionales y devuelve la fila
// resultante. Devuelve (nil, nil) si el ID no existe.
func (r *ObraRepo) PartialUpdate(ctx context.Context, id int64, patch repository.ObraPatch) (*entity.Obra, error) {
	query, args, err := obraPatchSQL(id, patch, time.Now())
	if err != nil {
		return nil, fmt.Errorf("build obra update: %w", err)
	}
	o, err := scanObra(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update obra: %w", err)
	}
	return o, nil
}

// Delete elimina una obra por ID. Idempotente.
func (r *ObraRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM obras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete obra: %w", err)
	}
	return nil
}
