// Package pdf genera la planilla diaria de asistencia de una empresa.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa   │  PLANILLA + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Dirección / Contacto / Salario por hora            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Trabajador | Entrada | Salida | Horas | Tarde         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Horas trabajadas / Pago estimado                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	fontentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wazard-api/internal/application/attendance"
	"github.com/jhoicas/wazard-api/internal/domain/entity"
)

var _ attendance.SheetGenerator = (*MarotoSheetGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorTardy   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ── Generator ─────────────────────────────────────────────────────────────────

const defaultFontFamily = "helvetica"

// SheetFont fuente TTF UTF-8 embebida en la planilla. Las fuentes core
// (helvetica) solo cubren latin-1 y no dibujan nombres en Hangul.
type SheetFont struct {
	Family string
	TTF    []byte
}

// LoadSheetFont lee el TTF de path y lo registra bajo family.
func LoadSheetFont(family, path string) (*SheetFont, error) {
	if family == "" || path == "" {
		return nil, fmt.Errorf("pdf: familia y ruta de fuente requeridas")
	}
	fonts, err := repository.New().AddUTF8Font(family, fontstyle.Normal, path).Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuente %s: %w", path, err)
	}
	if len(fonts) == 0 || len(fonts[0].Bytes) == 0 {
		return nil, fmt.Errorf("pdf: fuente %s vacía", path)
	}
	return &SheetFont{Family: family, TTF: fonts[0].Bytes}, nil
}

// customFonts registra el mismo TTF para todos los estilos que usa la planilla.
func (f *SheetFont) customFonts() ([]*fontentity.CustomFont, error) {
	return repository.New().
		AddUTF8FontFromBytes(f.Family, fontstyle.Normal, f.TTF).
		AddUTF8FontFromBytes(f.Family, fontstyle.Bold, f.TTF).
		AddUTF8FontFromBytes(f.Family, fontstyle.Italic, f.TTF).
		AddUTF8FontFromBytes(f.Family, fontstyle.BoldItalic, f.TTF).
		Load()
}

// MarotoSheetGenerator implementa attendance.SheetGenerator usando Maroto v2.
type MarotoSheetGenerator struct {
	font *SheetFont
}

// NewMarotoSheetGenerator construye el generador. Con font nil usa helvetica.
func NewMarotoSheetGenerator(font *SheetFont) *MarotoSheetGenerator {
	return &MarotoSheetGenerator{font: font}
}

// GenerateAttendanceSheet genera el PDF y devuelve sus bytes.
func (g *MarotoSheetGenerator) GenerateAttendanceSheet(
	_ context.Context,
	company *entity.Company,
	date time.Time,
	entries []entity.AttendanceEntry,
) ([]byte, error) {
	if company == nil {
		return nil, fmt.Errorf("pdf: empresa requerida")
	}
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("Planilla de asistencia", true).
		WithAuthor(company.CompanyName, true)

	family := defaultFontFamily
	if g.font != nil {
		fonts, err := g.font.customFonts()
		if err != nil {
			return nil, fmt.Errorf("pdf: registrar fuente: %w", err)
		}
		builder = builder.WithCustomFonts(fonts)
		family = g.font.Family
	}
	cfg := builder.WithDefaultFont(&props.Font{Family: family, Size: 9}).Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin registros de asistencia para este día.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	m.AddRows(tableDetailRows(entries)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(entries, company.HourlyWage))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company *entity.Company, date time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Empresa #%d", company.ID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLANILLA DE ASISTENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(date.Format(dateLayout), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(weekdayName(date.Weekday()), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func companyRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA EMPRESA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Contacto: %s   |   Salario por hora: $%s",
				nonEmpty(company.Address, "-"),
				nonEmpty(company.CompanyContact, "-"),
				formatMoney(company.HourlyWage.StringFixed(0)),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Trabajador", 4, align.Left),
		h("Entrada", 2, align.Center),
		h("Salida", 2, align.Center),
		h("Horas", 2, align.Right),
		h("Tarde", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por entrada del día.
func tableDetailRows(entries []entity.AttendanceEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		exit := "-"
		hours := "-"
		if e.ExitTime != nil {
			exit = e.ExitTime.Format(timeLayout)
			hours = workedHours(e).StringFixed(2)
		}
		tardy, tardyColor := "No", colorGray
		if e.Tardy {
			tardy, tardyColor = "Sí", colorTardy
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(nonEmpty(e.UserName, fmt.Sprintf("#%d", e.AccountID)),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(e.EnterTime.Format(timeLayout),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(exit,
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(hours,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(tardy,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: tardyColor})),
		))
	}
	return result
}

func totalsRow(entries []entity.AttendanceEntry, hourlyWage decimal.Decimal) core.Row {
	total := totalHours(entries)
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Horas trabajadas:"),
			label("Pago estimado:"),
		),
		col.New(3).Add(
			value(total.StringFixed(2)),
			value("$"+formatMoney(total.Mul(hourlyWage).StringFixed(0))),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// workedHours horas entre entrada y salida; 0 si la entrada sigue abierta.
func workedHours(e entity.AttendanceEntry) decimal.Decimal {
	if e.ExitTime == nil || e.ExitTime.Before(e.EnterTime) {
		return decimal.Zero
	}
	minutes := int64(e.ExitTime.Sub(e.EnterTime) / time.Minute)
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60))
}

func totalHours(entries []entity.AttendanceEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(workedHours(e))
	}
	return total
}

func weekdayName(d time.Weekday) string {
	return [...]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}[d]
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
