package todo

import (
	"errors"
	"testing"

	"todo-api/internal/model"
	"todo-api/internal/store/memorystore"
)

func TestService_CreateRequiresText(t *testing.T) {
	svc := NewService(memorystore.NewTodoStore())

	_, err := svc.Create(nil)
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Type != "missing" {
		t.Fatalf("fields=%+v", ve.Fields)
	}
	if got := ve.Fields[0].Loc; len(got) != 2 || got[0] != "body" || got[1] != "text" {
		t.Fatalf("loc=%v", got)
	}

	list, _ := svc.List()
	if len(list) != 0 {
		t.Fatalf("nothing should be stored, got %+v", list)
	}
}

func TestService_CreateAcceptsEmptyText(t *testing.T) {
	svc := NewService(memorystore.NewTodoStore())
	empty := ""

	created, err := svc.Create(&empty)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Text != "" {
		t.Fatalf("text=%q", created.Text)
	}
}

func TestService_CreateThenList(t *testing.T) {
	svc := NewService(memorystore.NewTodoStore())
	text := "buy milk"

	created, err := svc.Create(&text)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, _ := svc.List()
	matches := 0
	for _, td := range list {
		if td.Text == text {
			matches++
			if td.Completed || td.ID != created.ID {
				t.Fatalf("listed=%+v", td)
			}
		}
	}
	if matches != 1 {
		t.Fatalf("matches=%d", matches)
	}
}

func TestService_PatchUnknownID(t *testing.T) {
	svc := NewService(memorystore.NewTodoStore())
	done := true

	_, err := svc.Patch("nope", model.Patch{Completed: &done})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("field required", "missing", "body", "text")
	if got, want := err.Error(), "validation failed: body.text: field required"; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}
