// Package report assembles the aligned value series into one table and
// renders it as a delimited file and a comparison chart.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const dateFormat = "2006-01-02"

// Column is one named value series of the results table.
type Column struct {
	Name   string
	Values []decimal.Decimal
}

// Table joins value series on a shared month-end date index.
type Table struct {
	Dates   []time.Time
	Columns []Column
}

// New builds a table, requiring every column to match the date index length.
func New(dates []time.Time, columns ...Column) (*Table, error) {
	if len(dates) == 0 {
		return nil, errors.New("report: empty date index")
	}
	for _, col := range columns {
		if len(col.Values) != len(dates) {
			return nil, fmt.Errorf("report: column %q has %d values for %d dates", col.Name, len(col.Values), len(dates))
		}
	}
	return &Table{Dates: dates, Columns: columns}, nil
}

// WriteCSV persists the table, replacing any previous file at path.
func (t *Table) WriteCSV(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, "Date")
	for _, col := range t.Columns {
		header = append(header, col.Name)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, date := range t.Dates {
		record := make([]string, 0, len(t.Columns)+1)
		record = append(record, date.Format(dateFormat))
		for _, col := range t.Columns {
			record = append(record, col.Values[i].String())
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

// ChartOptions tune the rendered comparison chart.
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

// Column styles cycle solid, dashed, dotted in column order.
var strokeStyles = []struct {
	color     drawing.Color
	dashArray []float64
}{
	{color: chart.ColorBlue},
	{color: chart.ColorGreen, dashArray: []float64{5.0, 5.0}},
	{color: chart.ColorAlternateGray, dashArray: []float64{2.0, 2.0}},
}

// RenderPNG draws one line per column against the date index and writes the
// chart image, replacing any previous file at path.
func (t *Table) RenderPNG(path string, opts ChartOptions) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = 1100
	}
	height := opts.Height
	if height <= 0 {
		height = 600
	}

	seriesList := make([]chart.Series, 0, len(t.Columns))
	for i, col := range t.Columns {
		y := make([]float64, len(col.Values))
		for j, v := range col.Values {
			y[j] = v.InexactFloat64()
		}

		style := strokeStyles[i%len(strokeStyles)]
		seriesList = append(seriesList, chart.TimeSeries{
			Name:    col.Name,
			XValues: t.Dates,
			YValues: y,
			Style: chart.Style{
				StrokeColor:     style.color,
				StrokeDashArray: style.dashArray,
			},
		})
	}

	valueFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.0f")
	}
	graph := chart.Chart{
		Title:  opts.Title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			ValueFormatter: valueFormatter,
		},
		Series: seriesList,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
