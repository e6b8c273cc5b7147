package memory

import (
	"context"
	"sync"

	"pet-shelter-adoption/internal/domain/animals"
)

type animalRepo struct {
	mu    sync.RWMutex
	order []animals.Animal // orden del catálogo
	byID  map[string]animals.Animal
}

// NewAnimalRepo guarda una copia del catálogo. Si hay ids repetidos gana el primero.
func NewAnimalRepo(catalog []animals.Animal) animals.Repository {
	r := &animalRepo{
		order: make([]animals.Animal, 0, len(catalog)),
		byID:  make(map[string]animals.Animal, len(catalog)),
	}
	for _, a := range catalog {
		if _, exists := r.byID[a.ID]; exists {
			continue
		}
		r.byID[a.ID] = a
		r.order = append(r.order, a)
	}
	return r
}

func (r *animalRepo) ListAll(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, len(r.order))
	copy(out, r.order)
	return out, nil
}

func (r *animalRepo) ListByType(ctx context.Context, t animals.Type) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.order {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}
