// Package excel exporta el listado de obras a una hoja de cálculo XLSX.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/innovasport/almacen-api/internal/application/usecase"
	"github.com/innovasport/almacen-api/internal/domain/entity"
)

var _ usecase.ObraExporter = (*ObraExporter)(nil)

// ObraExporter implementa usecase.ObraExporter usando excelize.
type ObraExporter struct{}

// NewObraExporter construye el exportador.
func NewObraExporter() *ObraExporter { return &ObraExporter{} }

const sheetName = "Obras"

var obraHeaders = []string{
	"ID", "Obra", "Email", "Provincia", "Localidad",
	"Importe", "Contacto", "Observaciones", "Creada", "Actualizada",
}

// ExportObras genera el XLSX y devuelve sus bytes.
func (e *ObraExporter) ExportObras(_ context.Context, obras []*entity.Obra) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for i, h := range obraHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
		}
	}

	for r, o := range obras {
		importe, _ := o.Importe.Float64()
		values := []interface{}{
			o.ID, o.Obra, o.Email, o.Provincia, o.Localidad,
			importe, o.Contacto, o.Observaciones,
			o.CreatedAt.Format("02/01/2006"), o.UpdatedAt.Format("02/01/2006"),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("excel: celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: escribir fila: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
