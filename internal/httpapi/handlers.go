package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"todo-api/internal/model"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Todo API is running")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := s.service.List()
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

type createTodoRequest struct {
	Text *string `json:"text"`
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	created, err := s.service.Create(req.Text)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	found, err := s.service.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

type patchTodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (s *Server) handlePatchTodo(w http.ResponseWriter, r *http.Request) {
	var req patchTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	updated, err := s.service.Patch(r.PathValue("id"), model.Patch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(r.PathValue("id")); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Todo deleted")
}

func (s *Server) handleClearCompleted(w http.ResponseWriter, r *http.Request) {
	n, err := s.service.ClearCompleted()
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Cleared %d completed todos", n))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.service.Stats()
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.Export(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Body)
}
