// Package pdf implementa la generación del Certificado de Liberación a
// Servicio (Certificate of Release to Service) de una orden de trabajo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Operador + N° Orden  │  Estado + Fechas            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AERONAVE: Matrícula / Modelo / Serie / Horas de vuelo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Seq | Tarea | RII | Estado | Inspector              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  REPUESTOS: P/N | Cantidad | Notas                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Completada por / Liberada por + leyenda            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Mantenimiento-api/internal/application/workorder"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 120, Blue: 60}
)

var _ workorder.ReleaseCertificateGenerator = (*MarotoReleaseCertificate)(nil)

// MarotoReleaseCertificate implementa workorder.ReleaseCertificateGenerator usando Maroto v2.
type MarotoReleaseCertificate struct{}

// NewMarotoReleaseCertificate construye el generador.
func NewMarotoReleaseCertificate() *MarotoReleaseCertificate { return &MarotoReleaseCertificate{} }

// Generate genera el certificado PDF de una orden liberada y devuelve sus bytes.
func (g *MarotoReleaseCertificate) Generate(
	_ context.Context,
	wo *entity.WorkOrder,
	aircraft *entity.Aircraft,
	tasks []*entity.Task,
	parts []*entity.PartUsage,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Certificado de Liberación a Servicio", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(wo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(aircraftRow(aircraft))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Checklist de tareas
	m.AddRows(taskHeaderRow())
	for _, r := range taskRows(tasks) {
		m.AddRows(r)
	}

	// Repuestos consumidos
	if len(parts) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(partsHeaderRow())
		for _, r := range partsRows(parts) {
			m.AddRows(r)
		}
	}

	// Firmas y leyenda
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range signatureRows(wo) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + N° de orden (izq) y estado + fechas (der).
func headerRow(wo *entity.WorkOrder) core.Row {
	released := "—"
	if wo.ReleasedAt != nil {
		released = wo.ReleasedAt.Format("02/01/2006 15:04")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("CERTIFICADO DE LIBERACIÓN A SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
			text.New("Orden de trabajo: "+wo.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New(string(wo.Status), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorGreen, Top: 1,
			}),
			text.New("Liberada: "+released, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Tipo: "+wo.Type+"  |  Prioridad: "+wo.Priority, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// aircraftRow: datos de la aeronave intervenida.
func aircraftRow(aircraft *entity.Aircraft) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("AERONAVE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(aircraft.TailNumber+"  —  "+aircraft.Model, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Serie: %s   |   Horas de vuelo: %.1f",
				nonEmpty(aircraft.SerialNumber, "—"), aircraft.FlightHours,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// taskHeaderRow: cabecera de la tabla del checklist.
func taskHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Seq", 1, align.Center),
		h("Tarea", 6, align.Left),
		h("RII", 1, align.Center),
		h("Estado", 2, align.Center),
		h("Inspector", 2, align.Left),
	)
}

// taskRows: una fila por tarea del checklist.
func taskRows(tasks []*entity.Task) []core.Row {
	result := make([]core.Row, 0, len(tasks))
	for _, t := range tasks {
		rii := ""
		if t.IsRii {
			rii = "RII"
		}
		inspector := ""
		if t.InspectedBy != nil {
			inspector = *t.InspectedBy
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", t.Sequence),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				t.Title,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				rii,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: colorPrimary},
			)),
			col.New(2).Add(text.New(
				string(t.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				inspector,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// partsHeaderRow: cabecera de la tabla de repuestos consumidos.
func partsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("P/N", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("Notas", 6, align.Left),
	)
}

// partsRows: una fila por repuesto consumido.
func partsRows(parts []*entity.PartUsage) []core.Row {
	result := make([]core.Row, 0, len(parts))
	for _, p := range parts {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				p.PartNumber,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				p.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(6).Add(text.New(
				p.Notes,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// signatureRows: bloque de firmas de completado y liberación + leyenda.
func signatureRows(wo *entity.WorkOrder) []core.Row {
	completedBy := "—"
	if wo.CompletedBy != nil {
		completedBy = *wo.CompletedBy
	}
	completedAt := "—"
	if wo.CompletedAt != nil {
		completedAt = wo.CompletedAt.Format("02/01/2006 15:04")
	}
	releasedBy := "—"
	if wo.ReleasedBy != nil {
		releasedBy = *wo.ReleasedBy
	}

	rows := []core.Row{
		row.New(16).Add(
			col.New(6).Add(
				text.New("COMPLETADA POR", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(completedBy, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
				text.New(completedAt, props.Text{Size: 8, Top: 12, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("LIBERADA POR (INSPECTOR)", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(releasedBy, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			),
		),
	}

	if wo.CompletionNotes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+wo.CompletionNotes, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	// Leyenda de certificación
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New(
			"Se certifica que el trabajo descrito fue ejecutado y que las inspecciones "+
				"requeridas (RII) fueron verificadas y firmadas por el inspector autorizado. "+
				"La aeronave queda liberada para retornar a servicio.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
