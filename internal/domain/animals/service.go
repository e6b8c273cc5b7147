package animals

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFilter: cada campo vacío/nil se ignora.
type ListFilter struct {
	Type         *Type
	Sex          string
	Size         *Size
	Breed        string
	MaxAgeMonths *int
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Animal, error) {
	var (
		items []Animal
		err   error
	)
	if f.Type != nil {
		if !f.Type.Valid() {
			return nil, ErrInvalidInput
		}
		items, err = s.repo.ListByType(ctx, *f.Type)
	} else {
		items, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if f.Size != nil && !f.Size.Valid() {
		return nil, ErrInvalidInput
	}
	if f.MaxAgeMonths != nil && *f.MaxAgeMonths < 0 {
		return nil, ErrInvalidInput
	}

	out := make([]Animal, 0, len(items))
	for _, a := range items {
		if f.matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f ListFilter) matches(a Animal) bool {
	if s := strings.TrimSpace(f.Sex); s != "" && a.Sex != s {
		return false
	}
	if f.Size != nil && a.Size != *f.Size {
		return false
	}
	if b := strings.TrimSpace(f.Breed); b != "" && a.Breed != b {
		return false
	}
	if f.MaxAgeMonths != nil {
		// edad desconocida no pasa un filtro de edad
		if a.AgeMonths == nil || *a.AgeMonths > *f.MaxAgeMonths {
			return false
		}
	}
	return true
}

// Breeds devuelve las razas distintas (ordenadas) para la especie dada.
func (s *Service) Breeds(ctx context.Context, t Type) ([]string, error) {
	if !t.Valid() {
		return nil, ErrInvalidInput
	}
	items, err := s.repo.ListByType(ctx, t)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, a := range items {
		if _, ok := seen[a.Breed]; ok {
			continue
		}
		seen[a.Breed] = struct{}{}
		out = append(out, a.Breed)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Detail es la vista de ficha: descripción limpia + links de video.
type Detail struct {
	Animal           Animal
	CleanDescription string
	VideoLinks       []string
}

func (s *Service) Detail(ctx context.Context, id string) (Detail, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return Detail{
		Animal:           a,
		CleanDescription: CleanDescription(a.Description),
		VideoLinks:       VideoLinks(a),
	}, nil
}

// ListAll expone el catálogo completo (lo consume el motor de matching).
func (s *Service) ListAll(ctx context.Context) ([]Animal, error) {
	return s.repo.ListAll(ctx)
}
