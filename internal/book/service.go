package book

import (
	"crudapi/internal/resource"
)

// Service provides the book store operations.
type Service = resource.Store[Book]

// NewService creates a new book service over repo.
func NewService(repo Repository) *Service {
	return resource.NewStore(Kind, repo)
}
