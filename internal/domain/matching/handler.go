package matching

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-shelter-adoption/internal/domain/animals"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/matches", matchHandler(svc))
}

type factorResponse struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Weight    int       `json:"weight"`
}

type matchResponse struct {
	Animal          animals.AnimalResponse `json:"animal"`
	MatchPercentage int                    `json:"match_percentage"`
	Factors         []factorResponse       `json:"factors,omitempty"`
}

type runResponse struct {
	RunID          string          `json:"run_id"`
	ComputedAt     time.Time       `json:"computed_at"`
	Answered       int             `json:"answered"`
	TotalQuestions int             `json:"total_questions"`
	Complete       bool            `json:"complete"`
	Count          int             `json:"count"` // candidatos totales (antes de limit)
	Matches        []matchResponse `json:"matches"`
}

type schemaErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

func matchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}
		explain, _ := strconv.ParseBool(r.URL.Query().Get("explain"))

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		// body vacío = ninguna respuesta (todos los candidatos quedan en 50)
		if len(bytes.TrimSpace(body)) == 0 {
			body = []byte("{}")
		}

		problems, err := validateAnswersJSON(body)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if len(problems) > 0 {
			writeJSON(w, http.StatusBadRequest, schemaErrorResponse{
				Error:   "invalid answers",
				Details: problems,
			})
			return
		}

		var in AnswerInput
		if err := json.Unmarshal(body, &in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		answers, err := in.AnswerSet()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		run, err := svc.Match(r.Context(), answers)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toRunResponse(run, limit, explain))
	}
}

func toRunResponse(run Run, limit int, explain bool) runResponse {
	matches := run.Matches
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		mr := matchResponse{
			Animal:          animals.ToAnimalResponse(m.Animal),
			MatchPercentage: m.MatchPercentage,
		}
		if explain {
			ev := Explain(run.Answers, m.Animal)
			mr.Factors = make([]factorResponse, 0, len(ev.Components))
			for _, c := range ev.Components {
				mr.Factors = append(mr.Factors, factorResponse{
					Dimension: c.Dimension,
					Score:     c.Score,
					Weight:    c.Weight,
				})
			}
		}
		out = append(out, mr)
	}

	return runResponse{
		RunID:          run.ID,
		ComputedAt:     run.ComputedAt,
		Answered:       run.Answers.AnsweredCount(),
		TotalQuestions: run.Answers.TotalQuestions(),
		Complete:       run.Answers.IsComplete(),
		Count:          len(run.Matches),
		Matches:        out,
	}
}

// writeJSON está duplicado en handlers de distintos módulos (animals/matching)
// para no crear un paquete de helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
