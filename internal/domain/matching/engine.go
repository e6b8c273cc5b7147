package matching

import (
	"math"
	"sort"

	"pet-shelter-adoption/internal/domain/animals"
)

// NeutralPercentage es el puntaje cuando ninguna dimensión aplica.
const NeutralPercentage = 50

// Dimension identifica una pregunta que aporta al puntaje.
type Dimension string

const (
	DimensionWalkTime      Dimension = "walk_time"
	DimensionAloneTime     Dimension = "alone_time"
	DimensionActivityLevel Dimension = "activity_level"
	DimensionAffection     Dimension = "affection"
	DimensionOtherAnimals  Dimension = "other_animals"
	DimensionKids          Dimension = "kids"
	DimensionTeachTricks   Dimension = "teach_tricks"
	DimensionSpecialNeeds  Dimension = "special_needs"
)

// Pesos por dimensión.
const (
	weightWalkTime      = 15
	weightAloneTime     = 12
	weightActivityLevel = 15
	weightAffection     = 12
	weightOtherAnimals  = 12
	weightKids          = 12
	weightTeachTricks   = 10
	weightSpecialNeeds  = 12
)

// ScoredMatch es un candidato con su porcentaje de afinidad (0..100).
type ScoredMatch struct {
	Animal          animals.Animal
	MatchPercentage int
}

// Component es el aporte de una dimensión: Score en [0,1] y su peso.
type Component struct {
	Dimension Dimension
	Score     float64
	Weight    int
}

// Evaluation es el puntaje de un animal junto con sus componentes.
type Evaluation struct {
	Percentage int
	Components []Component
}

// ComputeMatches filtra, puntúa y ordena el catálogo.
// Es una función pura: no muta sus entradas y nunca falla.
// Empates: se conserva el orden del catálogo (sort estable).
func ComputeMatches(answers AnswerSet, catalog []animals.Animal) []ScoredMatch {
	out := make([]ScoredMatch, 0, len(catalog))
	for _, a := range catalog {
		if !PassesHardFilters(answers, a) {
			continue
		}
		out = append(out, ScoredMatch{
			Animal:          a,
			MatchPercentage: ComputeScore(answers, a),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

// PassesHardFilters aplica especie y tamaño. Un filtro sin respuesta no excluye.
func PassesHardFilters(answers AnswerSet, a animals.Animal) bool {
	if answers.AnimalType != nil {
		switch *answers.AnimalType {
		case PreferDog:
			if a.Type != animals.TypeDog {
				return false
			}
		case PreferCat:
			if a.Type != animals.TypeCat {
				return false
			}
		}
	}

	if answers.Size != nil {
		switch *answers.Size {
		case SizeSmall:
			if a.Size != animals.SizeSmall {
				return false
			}
		case SizeMedium:
			if a.Size != animals.SizeMedium {
				return false
			}
		case SizeLarge:
			if a.Size != animals.SizeLarge && a.Size != animals.SizeExtraLarge {
				return false
			}
		}
	}

	return true
}

// ComputeScore devuelve el porcentaje de afinidad (0..100) de un animal.
func ComputeScore(answers AnswerSet, a animals.Animal) int {
	return Explain(answers, a).Percentage
}

// Explain calcula el porcentaje y devuelve qué dimensiones aportaron.
// Valores de enum desconocidos se tratan como "sin responder".
func Explain(answers AnswerSet, a animals.Animal) Evaluation {
	s := a.Scores
	comps := make([]Component, 0, 8)

	add := func(d Dimension, raw float64, weight int) {
		comps = append(comps, Component{Dimension: d, Score: clamp(raw) / 10, Weight: weight})
	}

	// Paseo: solo perros.
	if a.IsDog() && answers.WalkTime != nil {
		if target, ok := walkTarget(*answers.WalkTime); ok {
			add(DimensionWalkTime, 10-math.Abs(target-float64(s.DailyActivityRequirement)), weightWalkTime)
		}
	}

	if answers.AloneTime != nil {
		energy := float64(s.Energy)
		switch *answers.AloneTime {
		case AloneFullDay:
			add(DimensionAloneTime, 10-energy, weightAloneTime)
		case AloneHalfDay:
			add(DimensionAloneTime, 10-math.Abs(5-energy), weightAloneTime)
		case AloneFewHours:
			add(DimensionAloneTime, energy, weightAloneTime)
		}
	}

	if answers.ActivityLevel != nil {
		if target, ok := activityTarget(*answers.ActivityLevel); ok {
			avg := float64(s.Energy+s.Activity) / 2
			add(DimensionActivityLevel, 10-math.Abs(target-avg), weightActivityLevel)
		}
	}

	if answers.Affection != nil {
		switch *answers.Affection {
		case AffectionAffectionate:
			add(DimensionAffection, float64(s.Friendly), weightAffection)
		case AffectionShy:
			add(DimensionAffection, float64(s.Shy), weightAffection)
		case AffectionBalanced:
			add(DimensionAffection, float64(s.Friendly+s.Shy)/2, weightAffection)
		}
	}

	// "No" en las preguntas de convivencia vale 10: no se penaliza la indiferencia.
	if answers.HasOtherAnimals != nil {
		raw := 10.0
		if *answers.HasOtherAnimals {
			raw = float64(s.GoodWithAnimals)
		}
		add(DimensionOtherAnimals, raw, weightOtherAnimals)
	}

	if answers.HasKids != nil {
		raw := 10.0
		if *answers.HasKids {
			raw = float64(s.GoodWithHumans+s.Friendly) / 2
		}
		add(DimensionKids, raw, weightKids)
	}

	if answers.WantsToTeachTricks != nil {
		raw := 10.0
		if *answers.WantsToTeachTricks {
			raw = float64(s.Trainability)
		}
		add(DimensionTeachTricks, raw, weightTeachTricks)
	}

	if answers.SpecialNeeds != nil {
		switch *answers.SpecialNeeds {
		case SpecialNeedsYes:
			add(DimensionSpecialNeeds, 10, weightSpecialNeeds)
		case SpecialNeedsMaybe:
			add(DimensionSpecialNeeds, 10-float64(s.SpecialNeeds)/2, weightSpecialNeeds)
		case SpecialNeedsNo:
			add(DimensionSpecialNeeds, 10-float64(s.SpecialNeeds), weightSpecialNeeds)
		}
	}

	return Evaluation{Percentage: aggregate(comps), Components: comps}
}

func aggregate(comps []Component) int {
	if len(comps) == 0 {
		return NeutralPercentage
	}

	totalWeight := 0
	weightedSum := 0.0
	for _, c := range comps {
		totalWeight += c.Weight
		weightedSum += c.Score * float64(c.Weight)
	}

	pct := int(math.Round(weightedSum / float64(totalWeight) * 100))
	return min(100, max(0, pct))
}

func walkTarget(p WalkTimePreference) (float64, bool) {
	switch p {
	case WalkShort:
		return 3, true
	case WalkModerate:
		return 5, true
	case WalkLong:
		return 8, true
	default:
		return 0, false
	}
}

func activityTarget(l ActivityLevel) (float64, bool) {
	switch l {
	case ActivityLow:
		return 3, true
	case ActivityModerate:
		return 5.5, true
	case ActivityHigh:
		return 8.5, true
	default:
		return 0, false
	}
}

func clamp(x float64) float64 {
	return math.Min(10, math.Max(0, x))
}
