package todo

import (
	"fmt"

	"todo-api/internal/model"
)

type Service struct {
	repo     Repository
	exporter *Exporter
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, exporter: NewExporter(repo)}
}

func (s *Service) Create(text *string) (model.Todo, error) {
	valid, err := RequireText(text)
	if err != nil {
		return model.Todo{}, err
	}
	created, err := s.repo.Create(valid)
	if err != nil {
		return model.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return created, nil
}

func (s *Service) List() ([]model.Todo, error) {
	return s.repo.List()
}

func (s *Service) Get(id string) (model.Todo, error) {
	return s.repo.Get(id)
}

func (s *Service) Patch(id string, patch model.Patch) (model.Todo, error) {
	return s.repo.Update(id, patch)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) ClearCompleted() (int, error) {
	return s.repo.ClearCompleted()
}

func (s *Service) Stats() (model.Stats, error) {
	return s.repo.Stats()
}

func (s *Service) Export(format string) (Export, error) {
	return s.exporter.Export(format)
}
