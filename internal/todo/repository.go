package todo

import "todo-api/internal/model"

type Repository interface {
	Create(text string) (model.Todo, error)
	List() ([]model.Todo, error)
	Get(id string) (model.Todo, error)
	Update(id string, patch model.Patch) (model.Todo, error)
	Delete(id string) error
	ClearCompleted() (int, error)
	Stats() (model.Stats, error)
}
