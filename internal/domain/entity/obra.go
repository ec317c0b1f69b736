package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Obra representa un registro de obra o proyecto en seguimiento.
// Importe nunca es negativo; CreatedAt se fija una vez y UpdatedAt en cada escritura.
type Obra struct {
	ID            int64
	Obra          string // nombre de la obra
	Email         string // contacto del responsable (texto plano, sin FK a users)
	Provincia     string
	Localidad     string
	Importe       decimal.Decimal // presupuesto
	Contacto      string
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
