package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"todo-api/internal/todo"
)

type Options struct {
	AllowedOrigin  string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	Logger         *slog.Logger
}

type Server struct {
	service *todo.Service
	logger  *slog.Logger
	mux     *http.ServeMux
	handler http.Handler
}

func NewServer(service *todo.Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "http://localhost:3000"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 3 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}

	srv := &Server{
		service: service,
		logger:  opts.Logger,
		mux:     http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /{$}", srv.handleRoot)
	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)

	srv.mux.HandleFunc("GET /api/todos", srv.handleListTodos)
	srv.mux.HandleFunc("POST /api/todos", srv.handleCreateTodo)
	srv.mux.HandleFunc("GET /api/todos/stats", srv.handleStats)
	srv.mux.HandleFunc("GET /api/todos/export", srv.handleExport)
	srv.mux.HandleFunc("DELETE /api/todos/completed/clear", srv.handleClearCompleted)

	srv.mux.HandleFunc("GET /api/todos/{id}", srv.handleGetTodo)
	srv.mux.HandleFunc("PATCH /api/todos/{id}", srv.handlePatchTodo)
	srv.mux.HandleFunc("DELETE /api/todos/{id}", srv.handleDeleteTodo)

	srv.handler = Chain(srv.mux,
		WithRequestID(),
		Logging(opts.Logger),
		Recover(opts.Logger),
		CORS(opts.AllowedOrigin),
		Timeout(opts.RequestTimeout),
		BodyLimit(opts.MaxBodyBytes),
	)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
