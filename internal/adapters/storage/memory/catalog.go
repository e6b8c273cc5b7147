package memory

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pet-shelter-adoption/internal/domain/animals"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed seed/animals.json
var seedCatalog []byte

// catalogRecord es el formato del JSON que genera el scraper del refugio.
// Campos desconocidos se ignoran.
type catalogRecord struct {
	ID          string        `json:"id"`
	AnimalType  string        `json:"animal_type"`
	Name        string        `json:"name"`
	Sex         string        `json:"sex"`
	Breed       string        `json:"breed"`
	Size        string        `json:"size"`
	AgeMonths   *int          `json:"age_months"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	Videos      []string      `json:"videos"`
	SourceURL   string        `json:"source_url"`
	Scores      catalogScores `json:"scores"`
}

type catalogScores struct {
	Friendly                 int `json:"friendly"`
	GoodWithAnimals          int `json:"good_with_animals"`
	LeashTrained             int `json:"leash_trained"`
	Reactive                 int `json:"reactive"`
	SpecialNeeds             int `json:"special_needs"`
	Energy                   int `json:"energy"`
	GoodWithHumans           int `json:"good_with_humans"`
	Shy                      int `json:"shy"`
	Activity                 int `json:"activity"`
	Trainability             int `json:"trainability"`
	DailyActivityRequirement int `json:"daily_activity_requirement"`
}

// LoadCatalog decodifica un catálogo JSON (array de animales).
func LoadCatalog(r io.Reader) ([]animals.Animal, error) {
	var records []catalogRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]struct{}, len(records))
	out := make([]animals.Animal, 0, len(records))
	for i, rec := range records {
		a, err := rec.toAnimal()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, a.ID)
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out, nil
}

func LoadCatalogFile(path string) ([]animals.Animal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// SeedCatalog es el catálogo embebido que usa el modo dev.
func SeedCatalog() ([]animals.Animal, error) {
	return LoadCatalog(bytes.NewReader(seedCatalog))
}

func (rec catalogRecord) toAnimal() (animals.Animal, error) {
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		return animals.Animal{}, errors.New("id required")
	}
	t := animals.Type(strings.ToLower(strings.TrimSpace(rec.AnimalType)))
	if !t.Valid() {
		return animals.Animal{}, fmt.Errorf("unknown animal_type %q", rec.AnimalType)
	}
	size := animals.Size(strings.ToLower(strings.TrimSpace(rec.Size)))
	if !size.Valid() {
		return animals.Animal{}, fmt.Errorf("unknown size %q", rec.Size)
	}

	return animals.Animal{
		ID:          id,
		Type:        t,
		Size:        size,
		Name:        rec.Name,
		Sex:         rec.Sex,
		Breed:       rec.Breed,
		AgeMonths:   rec.AgeMonths,
		Description: rec.Description,
		Images:      rec.Images,
		Videos:      rec.Videos,
		SourceURL:   rec.SourceURL,
		Scores: animals.Scores{
			Friendly:                 rec.Scores.Friendly,
			GoodWithAnimals:          rec.Scores.GoodWithAnimals,
			GoodWithHumans:           rec.Scores.GoodWithHumans,
			LeashTrained:             rec.Scores.LeashTrained,
			Reactive:                 rec.Scores.Reactive,
			SpecialNeeds:             rec.Scores.SpecialNeeds,
			Energy:                   rec.Scores.Energy,
			Shy:                      rec.Scores.Shy,
			Activity:                 rec.Scores.Activity,
			Trainability:             rec.Scores.Trainability,
			DailyActivityRequirement: rec.Scores.DailyActivityRequirement,
		},
	}, nil
}
