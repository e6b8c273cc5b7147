package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))

		// antes de /{animalID} para que "breeds" no se tome como id
		ar.Get("/breeds", listBreedsHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

type scoresResponse struct {
	Friendly                 int `json:"friendly"`
	GoodWithAnimals          int `json:"good_with_animals"`
	GoodWithHumans           int `json:"good_with_humans"`
	LeashTrained             int `json:"leash_trained"`
	Reactive                 int `json:"reactive"`
	SpecialNeeds             int `json:"special_needs"`
	Energy                   int `json:"energy"`
	Shy                      int `json:"shy"`
	Activity                 int `json:"activity"`
	Trainability             int `json:"trainability"`
	DailyActivityRequirement int `json:"daily_activity_requirement"`
}

// AnimalResponse es la forma JSON de un animal (la reutiliza matching).
type AnimalResponse struct {
	ID          string         `json:"id"`
	AnimalType  Type           `json:"animal_type"`
	Name        string         `json:"name"`
	Sex         string         `json:"sex"`
	Breed       string         `json:"breed"`
	Size        Size           `json:"size"`
	AgeMonths   *int           `json:"age_months,omitempty"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Videos      []string       `json:"videos"`
	SourceURL   string         `json:"source_url"`
	Scores      scoresResponse `json:"scores"`
}

type detailResponse struct {
	Animal           AnimalResponse `json:"animal"`
	CleanDescription string         `json:"clean_description"`
	VideoLinks       []string       `json:"video_links"`
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]AnimalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, ToAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := Type(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))))
		if !t.Valid() {
			http.Error(w, "type must be dog or cat", http.StatusBadRequest)
			return
		}

		breeds, err := svc.Breeds(r.Context(), t)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, breeds)
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Detail(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, detailResponse{
			Animal:           ToAnimalResponse(d.Animal),
			CleanDescription: d.CleanDescription,
			VideoLinks:       d.VideoLinks,
		})
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var f ListFilter

	if v := strings.ToLower(strings.TrimSpace(q.Get("type"))); v != "" {
		t := Type(v)
		if !t.Valid() {
			return ListFilter{}, errors.New("type must be dog or cat")
		}
		f.Type = &t
	}
	if v := strings.ToLower(strings.TrimSpace(q.Get("size"))); v != "" {
		s := Size(v)
		if !s.Valid() {
			return ListFilter{}, errors.New("size must be small, medium, large or extra_large")
		}
		f.Size = &s
	}
	if v := strings.TrimSpace(q.Get("max_age_months")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return ListFilter{}, errors.New("max_age_months must be a non-negative integer")
		}
		f.MaxAgeMonths = &n
	}
	f.Sex = strings.TrimSpace(q.Get("sex"))
	f.Breed = strings.TrimSpace(q.Get("breed"))

	return f, nil
}

func ToAnimalResponse(a Animal) AnimalResponse {
	images := a.Images
	if images == nil {
		images = []string{}
	}
	videos := a.Videos
	if videos == nil {
		videos = []string{}
	}

	return AnimalResponse{
		ID:          a.ID,
		AnimalType:  a.Type,
		Name:        a.Name,
		Sex:         a.Sex,
		Breed:       a.Breed,
		Size:        a.Size,
		AgeMonths:   a.AgeMonths,
		Description: a.Description,
		Images:      images,
		Videos:      videos,
		SourceURL:   a.SourceURL,
		Scores: scoresResponse{
			Friendly:                 a.Scores.Friendly,
			GoodWithAnimals:          a.Scores.GoodWithAnimals,
			GoodWithHumans:           a.Scores.GoodWithHumans,
			LeashTrained:             a.Scores.LeashTrained,
			Reactive:                 a.Scores.Reactive,
			SpecialNeeds:             a.Scores.SpecialNeeds,
			Energy:                   a.Scores.Energy,
			Shy:                      a.Scores.Shy,
			Activity:                 a.Scores.Activity,
			Trainability:             a.Scores.Trainability,
			DailyActivityRequirement: a.Scores.DailyActivityRequirement,
		},
	}
}

// writeJSON está duplicado en handlers de distintos módulos (animals/matching)
// para no crear un paquete de helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
