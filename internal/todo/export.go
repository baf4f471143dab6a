package todo

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"todo-api/internal/model"
)

type Lister interface {
	List() ([]model.Todo, error)
}

// Export is a rendered todo list ready to be written to a client.
type Export struct {
	ContentType string
	Filename    string
	Body        []byte
}

type Exporter struct{ src Lister }

func NewExporter(src Lister) *Exporter { return &Exporter{src: src} }

// Export renders the current list as json (the default), csv or pdf.
func (e *Exporter) Export(format string) (Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "json"
	}

	render, ok := renderers[format]
	if !ok {
		return Export{}, NewValidationError(
			fmt.Sprintf("unknown format %q, expected json, csv or pdf", format),
			"enum", "query", "format")
	}

	all, err := e.src.List()
	if err != nil {
		return Export{}, fmt.Errorf("export: list todos: %w", err)
	}

	body, err := render.fn(all)
	if err != nil {
		return Export{}, fmt.Errorf("export %s: %w", format, err)
	}
	return Export{
		ContentType: render.contentType,
		Filename:    "todos." + format,
		Body:        body,
	}, nil
}

type renderer struct {
	contentType string
	fn          func([]model.Todo) ([]byte, error)
}

var renderers = map[string]renderer{
	"json": {"application/json; charset=utf-8", renderJSON},
	"csv":  {"text/csv; charset=utf-8", renderCSV},
	"pdf":  {"application/pdf", renderPDF},
}

func renderJSON(all []model.Todo) ([]byte, error) {
	return json.MarshalIndent(all, "", "  ")
}

func renderCSV(all []model.Todo) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "text", "completed", "created_at"})
	for _, t := range all {
		_ = w.Write([]string{t.ID, t.Text, strconv.FormatBool(t.Completed), t.CreatedAt.Format(time.RFC3339Nano)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func renderPDF(all []model.Todo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todo List")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	done := 0
	for _, t := range all {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
			done++
		}
		line := fmt.Sprintf("%s %s  (%s)", mark, t.Text, t.CreatedAt.Format("2006-01-02 15:04"))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("%d items, %d completed", len(all), done))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
