package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-shelter-adoption/internal/domain/animals"
)

// AnimalsRepo lee el catálogo desde la tabla animals (ver migrations/).
type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, animal_type, size,
	name, sex, breed, age_months,
	description, images, videos, source_url,
	friendly, good_with_animals, good_with_humans,
	leash_trained, reactive, special_needs,
	energy, shy, activity, trainability,
	daily_activity_requirement`

func (r *AnimalsRepo) ListAll(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+animalColumns+`
		FROM animals
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnimals(rows)
}

func (r *AnimalsRepo) ListByType(ctx context.Context, t animals.Type) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+animalColumns+`
		FROM animals
		WHERE animal_type = $1
		ORDER BY position ASC, id ASC
	`, string(t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnimals(rows)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimals(rows *sql.Rows) ([]animals.Animal, error) {
	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a              animals.Animal
		animalType     string
		size           string
		age            sql.NullInt64
		images, videos []byte
	)
	if err := s.Scan(
		&a.ID,
		&animalType,
		&size,
		&a.Name,
		&a.Sex,
		&a.Breed,
		&age,
		&a.Description,
		&images,
		&videos,
		&a.SourceURL,
		&a.Scores.Friendly,
		&a.Scores.GoodWithAnimals,
		&a.Scores.GoodWithHumans,
		&a.Scores.LeashTrained,
		&a.Scores.Reactive,
		&a.Scores.SpecialNeeds,
		&a.Scores.Energy,
		&a.Scores.Shy,
		&a.Scores.Activity,
		&a.Scores.Trainability,
		&a.Scores.DailyActivityRequirement,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Type = animals.Type(animalType)
	a.Size = animals.Size(size)
	if age.Valid {
		n := int(age.Int64)
		a.AgeMonths = &n
	}

	var err error
	if a.Images, err = decodeStrings(images); err != nil {
		return animals.Animal{}, fmt.Errorf("animal %s images: %w", a.ID, err)
	}
	if a.Videos, err = decodeStrings(videos); err != nil {
		return animals.Animal{}, fmt.Errorf("animal %s videos: %w", a.ID, err)
	}
	return a, nil
}

// images y videos son JSONB (arrays de strings); NULL = lista vacía
func decodeStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
