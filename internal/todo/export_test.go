package todo

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"todo-api/internal/model"
)

type staticLister struct {
	todos []model.Todo
	err   error
}

func (s staticLister) List() ([]model.Todo, error) { return s.todos, s.err }

func sampleTodos() []model.Todo {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.Todo{
		{ID: "1", Text: "buy milk", Completed: true, CreatedAt: at},
		{ID: "2", Text: "walk, then \"run\"", Completed: false, CreatedAt: at.Add(time.Minute)},
	}
}

func TestExport_DefaultsToJSON(t *testing.T) {
	ex := NewExporter(staticLister{todos: sampleTodos()})

	out, err := ex.Export("")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Filename != "todos.json" {
		t.Fatalf("filename=%s", out.Filename)
	}

	var decoded []model.Todo
	if err := json.Unmarshal(out.Body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v; body=%s", err, out.Body)
	}
	if len(decoded) != 2 || decoded[1].Text != "walk, then \"run\"" {
		t.Fatalf("decoded=%+v", decoded)
	}
}

func TestExport_CSV(t *testing.T) {
	ex := NewExporter(staticLister{todos: sampleTodos()})

	out, err := ex.Export("CSV")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out.Body)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[0][0] != "id" || rows[0][3] != "created_at" {
		t.Fatalf("header=%v", rows[0])
	}
	if rows[1][2] != "true" || rows[2][1] != "walk, then \"run\"" {
		t.Fatalf("rows=%v", rows)
	}
}

func TestExport_PDF(t *testing.T) {
	ex := NewExporter(staticLister{todos: sampleTodos()})

	out, err := ex.Export("pdf")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.ContentType != "application/pdf" {
		t.Fatalf("content type=%s", out.ContentType)
	}
	if !bytes.HasPrefix(out.Body, []byte("%PDF-")) {
		t.Fatalf("not a pdf: %q", out.Body[:min(len(out.Body), 16)])
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	ex := NewExporter(staticLister{})

	_, err := ex.Export("xml")
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExport_ListError(t *testing.T) {
	boom := errors.New("boom")
	ex := NewExporter(staticLister{err: boom})

	_, err := ex.Export("json")
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
}
