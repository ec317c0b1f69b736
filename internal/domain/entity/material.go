package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa un ítem de stock del almacén.
// Quantity y Valor se normalizan siempre a 2 decimales antes de persistir;
// UpdatedBy y LastUpdated se estampan en cada escritura.
type Material struct {
	ID          int64
	Name        string
	Quantity    decimal.Decimal // cantidad en stock, nunca negativa
	Valor       decimal.Decimal // precio unitario, nunca negativo
	Factura     string          // referencia de factura (opcional)
	Category    string          // etiqueta de unidad de medida (opcional)
	Description string
	LastDestiny string // último destino / uso (opcional)
	UpdatedBy   string // identidad del último escritor
	LastUpdated time.Time
}
