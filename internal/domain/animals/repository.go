package animals

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("animal not found")

type Repository interface {
	ListAll(ctx context.Context) ([]Animal, error)
	ListByType(ctx context.Context, t Type) ([]Animal, error)
	GetByID(ctx context.Context, id string) (Animal, error)
}
