package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateObraRequest alta de obra. Obra y Email son obligatorios; Importe no
// puede ser negativo.
type CreateObraRequest struct {
	Obra          string          `json:"obra"`
	Email         string          `json:"email"`
	Provincia     string          `json:"provincia"`
	Localidad     string          `json:"localidad"`
	Importe       decimal.Decimal `json:"importe"`
	Contacto      string          `json:"contacto"`
	Observaciones string          `json:"observaciones"`
}

// UpdateObraRequest actualización parcial de obra (nil = sin cambio).
type UpdateObraRequest struct {
	ID            int64            `json:"id"`
	Obra          *string          `json:"obra"`
	Email         *string          `json:"email"`
	Provincia     *string          `json:"provincia"`
	Localidad     *string          `json:"localidad"`
	Importe       *decimal.Decimal `json:"importe"`
	Contacto      *string          `json:"contacto"`
	Observaciones *string          `json:"observaciones"`
}

// DeleteObraRequest borrado por id.
type DeleteObraRequest struct {
	ID int64 `json:"id"`
}

// ObraResponse proyección de Obra hacia el cliente.
type ObraResponse struct {
	ID            int64           `json:"id"`
	Obra          string          `json:"obra"`
	Email         string          `json:"email"`
	Provincia     string          `json:"provincia"`
	Localidad     string          `json:"localidad"`
	Importe       decimal.Decimal `json:"importe"`
	Contacto      string          `json:"contacto"`
	Observaciones string          `json:"observaciones"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ObraListResponse listado completo de obras.
type ObraListResponse struct {
	Obras []ObraResponse `json:"obras"`
}
