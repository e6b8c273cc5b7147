package matching

import (
	"math/rand"
	"testing"

	"pet-shelter-adoption/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func dog(id string, size animals.Size, s animals.Scores) animals.Animal {
	return animals.Animal{ID: id, Type: animals.TypeDog, Size: size, Scores: s}
}

func cat(id string, size animals.Size, s animals.Scores) animals.Animal {
	return animals.Animal{ID: id, Type: animals.TypeCat, Size: size, Scores: s}
}

func ids(ms []ScoredMatch) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Animal.ID)
	}
	return out
}

func TestComputeMatches_SpeciesFilter(t *testing.T) {
	catalog := []animals.Animal{
		cat("c1", animals.SizeSmall, animals.Scores{}),
		dog("d1", animals.SizeSmall, animals.Scores{}),
	}

	got := ComputeMatches(AnswerSet{AnimalType: ptr(PreferDog)}, catalog)
	assert.Equal(t, []string{"d1"}, ids(got))

	got = ComputeMatches(AnswerSet{AnimalType: ptr(PreferCat)}, catalog)
	assert.Equal(t, []string{"c1"}, ids(got))

	got = ComputeMatches(AnswerSet{AnimalType: ptr(PreferEither)}, catalog)
	assert.Len(t, got, 2)
}

func TestComputeMatches_LargeIncludesExtraLarge(t *testing.T) {
	catalog := []animals.Animal{
		dog("small", animals.SizeSmall, animals.Scores{}),
		dog("large", animals.SizeLarge, animals.Scores{}),
		dog("xl", animals.SizeExtraLarge, animals.Scores{}),
	}

	got := ComputeMatches(AnswerSet{Size: ptr(SizeLarge)}, catalog)
	assert.ElementsMatch(t, []string{"large", "xl"}, ids(got))
}

func TestPassesHardFilters(t *testing.T) {
	sizes := []animals.Size{animals.SizeSmall, animals.SizeMedium, animals.SizeLarge, animals.SizeExtraLarge}
	prefs := map[SizePreference][]animals.Size{
		SizeSmall:  {animals.SizeSmall},
		SizeMedium: {animals.SizeMedium},
		SizeLarge:  {animals.SizeLarge, animals.SizeExtraLarge},
		SizeAny:    sizes,
	}

	for pref, allowed := range prefs {
		for _, s := range sizes {
			want := false
			for _, a := range allowed {
				if a == s {
					want = true
				}
			}
			got := PassesHardFilters(AnswerSet{Size: ptr(pref)}, dog("x", s, animals.Scores{}))
			assert.Equal(t, want, got, "pref=%s size=%s", pref, s)
		}
	}

	// sin respuestas nadie queda afuera
	assert.True(t, PassesHardFilters(AnswerSet{}, cat("c", animals.SizeExtraLarge, animals.Scores{})))
}

func TestComputeScore_NeutralWhenNothingApplies(t *testing.T) {
	assert.Equal(t, 50, ComputeScore(AnswerSet{}, dog("d", animals.SizeSmall, animals.Scores{Energy: 10})))

	// solo paseo respondido y el animal es gato: ninguna dimensión aplica
	assert.Equal(t, 50, ComputeScore(AnswerSet{WalkTime: ptr(WalkLong)}, cat("c", animals.SizeSmall, animals.Scores{DailyActivityRequirement: 0})))

	// filtros duros respondidos no puntúan
	answers := AnswerSet{AnimalType: ptr(PreferDog), Size: ptr(SizeAny)}
	assert.Equal(t, 50, ComputeScore(answers, dog("d", animals.SizeSmall, animals.Scores{})))
}

func TestExplain_WalkTimeOnlyForDogs(t *testing.T) {
	answers := AnswerSet{WalkTime: ptr(WalkLong), HasKids: ptr(false)}
	s := animals.Scores{DailyActivityRequirement: 9}

	for _, c := range Explain(answers, cat("c", animals.SizeSmall, s)).Components {
		assert.NotEqual(t, DimensionWalkTime, c.Dimension)
	}

	ev := Explain(answers, dog("d", animals.SizeSmall, s))
	require.Len(t, ev.Components, 2)
	assert.Equal(t, DimensionWalkTime, ev.Components[0].Dimension)
}

func TestExplain_WalkTimeLong(t *testing.T) {
	ev := Explain(AnswerSet{WalkTime: ptr(WalkLong)}, dog("d", animals.SizeLarge, animals.Scores{DailyActivityRequirement: 9}))

	require.Len(t, ev.Components, 1)
	assert.InDelta(t, 0.9, ev.Components[0].Score, 1e-9)
	assert.Equal(t, 15, ev.Components[0].Weight)
	assert.Equal(t, 90, ev.Percentage)
}

func TestExplain_NoOtherAnimalsIsFullScore(t *testing.T) {
	for _, gwa := range []int{0, 3, 10} {
		ev := Explain(AnswerSet{HasOtherAnimals: ptr(false)}, dog("d", animals.SizeSmall, animals.Scores{GoodWithAnimals: gwa}))
		require.Len(t, ev.Components, 1)
		assert.Equal(t, 1.0, ev.Components[0].Score)
		assert.Equal(t, 100, ev.Percentage)
	}

	ev := Explain(AnswerSet{HasOtherAnimals: ptr(true)}, dog("d", animals.SizeSmall, animals.Scores{GoodWithAnimals: 3}))
	assert.Equal(t, 30, ev.Percentage)
}

func TestExplain_Formulas(t *testing.T) {
	s := animals.Scores{
		Friendly:                 8,
		GoodWithAnimals:          6,
		GoodWithHumans:           6,
		SpecialNeeds:             4,
		Energy:                   7,
		Shy:                      2,
		Activity:                 5,
		Trainability:             9,
		DailyActivityRequirement: 4,
	}
	d := dog("d", animals.SizeMedium, s)

	cases := []struct {
		name    string
		answers AnswerSet
		score   float64
	}{
		{"walk short", AnswerSet{WalkTime: ptr(WalkShort)}, 0.9},
		{"walk moderate", AnswerSet{WalkTime: ptr(WalkModerate)}, 0.9},
		{"alone full day", AnswerSet{AloneTime: ptr(AloneFullDay)}, 0.3},
		{"alone half day", AnswerSet{AloneTime: ptr(AloneHalfDay)}, 0.8},
		{"alone few hours", AnswerSet{AloneTime: ptr(AloneFewHours)}, 0.7},
		{"activity low", AnswerSet{ActivityLevel: ptr(ActivityLow)}, 0.7},
		{"activity moderate", AnswerSet{ActivityLevel: ptr(ActivityModerate)}, 0.95},
		{"activity high", AnswerSet{ActivityLevel: ptr(ActivityHigh)}, 0.75},
		{"affectionate", AnswerSet{Affection: ptr(AffectionAffectionate)}, 0.8},
		{"shy", AnswerSet{Affection: ptr(AffectionShy)}, 0.2},
		{"balanced", AnswerSet{Affection: ptr(AffectionBalanced)}, 0.5},
		{"kids yes", AnswerSet{HasKids: ptr(true)}, 0.7},
		{"kids no", AnswerSet{HasKids: ptr(false)}, 1},
		{"tricks yes", AnswerSet{WantsToTeachTricks: ptr(true)}, 0.9},
		{"tricks no", AnswerSet{WantsToTeachTricks: ptr(false)}, 1},
		{"special needs yes", AnswerSet{SpecialNeeds: ptr(SpecialNeedsYes)}, 1},
		{"special needs maybe", AnswerSet{SpecialNeeds: ptr(SpecialNeedsMaybe)}, 0.8},
		{"special needs no", AnswerSet{SpecialNeeds: ptr(SpecialNeedsNo)}, 0.6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := Explain(tc.answers, d)
			require.Len(t, ev.Components, 1)
			assert.InDelta(t, tc.score, ev.Components[0].Score, 1e-9)
		})
	}
}

func TestExplain_WeightedBlend(t *testing.T) {
	// walk: 10-|8-9| = 9 (w15); kids no: 10 (w12); affection shy: 2 (w12)
	// (0.9*15 + 1*12 + 0.2*12) / 39 = 27.9/39 = 0.7154 -> 72
	answers := AnswerSet{
		WalkTime:  ptr(WalkLong),
		HasKids:   ptr(false),
		Affection: ptr(AffectionShy),
	}
	d := dog("d", animals.SizeLarge, animals.Scores{DailyActivityRequirement: 9, Shy: 2})

	assert.Equal(t, 72, ComputeScore(answers, d))
}

func TestExplain_ClampsOutOfRangeScores(t *testing.T) {
	wild := dog("d", animals.SizeSmall, animals.Scores{
		Energy:          25,
		Friendly:        -4,
		GoodWithAnimals: 40,
		SpecialNeeds:    -10,
	})

	ev := Explain(AnswerSet{
		AloneTime:       ptr(AloneFewHours),
		Affection:       ptr(AffectionAffectionate),
		HasOtherAnimals: ptr(true),
		SpecialNeeds:    ptr(SpecialNeedsNo),
	}, wild)

	for _, c := range ev.Components {
		assert.GreaterOrEqual(t, c.Score, 0.0, c.Dimension)
		assert.LessOrEqual(t, c.Score, 1.0, c.Dimension)
	}
	// 1*12 + 0*12 + 1*12 + 1*12 = 36/48 = 75
	assert.Equal(t, 75, ev.Percentage)
}

func TestExplain_UnknownEnumIsUnset(t *testing.T) {
	answers := AnswerSet{
		WalkTime:      ptr(WalkTimePreference("forever")),
		AloneTime:     ptr(AloneTimePreference("never")),
		ActivityLevel: ptr(ActivityLevel("extreme")),
		Affection:     ptr(AffectionPreference("cold")),
		SpecialNeeds:  ptr(SpecialNeedsPreference("?")),
	}
	ev := Explain(answers, dog("d", animals.SizeSmall, animals.Scores{}))
	assert.Empty(t, ev.Components)
	assert.Equal(t, 50, ev.Percentage)
}

func TestComputeMatches_EmptyCatalog(t *testing.T) {
	got := ComputeMatches(AnswerSet{AnimalType: ptr(PreferDog), HasKids: ptr(true)}, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeMatches_SortedWithStableTies(t *testing.T) {
	catalog := []animals.Animal{
		dog("a", animals.SizeSmall, animals.Scores{Trainability: 3}),
		dog("b", animals.SizeSmall, animals.Scores{Trainability: 9}),
		dog("c", animals.SizeSmall, animals.Scores{Trainability: 3}),
		dog("d", animals.SizeSmall, animals.Scores{Trainability: 9}),
	}

	got := ComputeMatches(AnswerSet{WantsToTeachTricks: ptr(true)}, catalog)
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(got))
	assert.Equal(t, 90, got[0].MatchPercentage)
	assert.Equal(t, 30, got[3].MatchPercentage)
}

func TestComputeMatches_DoesNotMutateCatalog(t *testing.T) {
	catalog := []animals.Animal{
		dog("low", animals.SizeSmall, animals.Scores{Trainability: 1}),
		dog("high", animals.SizeSmall, animals.Scores{Trainability: 9}),
	}
	_ = ComputeMatches(AnswerSet{WantsToTeachTricks: ptr(true)}, catalog)
	assert.Equal(t, "low", catalog[0].ID)
}

// Propiedades sobre entradas aleatorias (semilla fija).
func TestComputeMatches_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	types := []animals.Type{animals.TypeDog, animals.TypeCat}
	sizes := []animals.Size{animals.SizeSmall, animals.SizeMedium, animals.SizeLarge, animals.SizeExtraLarge}
	score := func() int { return rng.Intn(21) - 5 } // incluye valores fuera de 0..10

	randomAnswers := func() AnswerSet {
		var a AnswerSet
		maybe := func() bool { return rng.Intn(2) == 0 }
		if maybe() {
			a.AnimalType = ptr([]AnimalTypePreference{PreferDog, PreferCat, PreferEither}[rng.Intn(3)])
		}
		if maybe() {
			a.Size = ptr([]SizePreference{SizeSmall, SizeMedium, SizeLarge, SizeAny}[rng.Intn(4)])
		}
		if maybe() {
			a.WalkTime = ptr([]WalkTimePreference{WalkShort, WalkModerate, WalkLong}[rng.Intn(3)])
		}
		if maybe() {
			a.AloneTime = ptr([]AloneTimePreference{AloneFewHours, AloneHalfDay, AloneFullDay}[rng.Intn(3)])
		}
		if maybe() {
			a.ActivityLevel = ptr([]ActivityLevel{ActivityLow, ActivityModerate, ActivityHigh}[rng.Intn(3)])
		}
		if maybe() {
			a.Affection = ptr([]AffectionPreference{AffectionShy, AffectionBalanced, AffectionAffectionate}[rng.Intn(3)])
		}
		if maybe() {
			a.HasOtherAnimals = ptr(maybe())
		}
		if maybe() {
			a.HasKids = ptr(maybe())
		}
		if maybe() {
			a.WantsToTeachTricks = ptr(maybe())
		}
		if maybe() {
			a.SpecialNeeds = ptr([]SpecialNeedsPreference{SpecialNeedsYes, SpecialNeedsMaybe, SpecialNeedsNo}[rng.Intn(3)])
		}
		return a
	}

	for i := 0; i < 200; i++ {
		answers := randomAnswers()

		catalog := make([]animals.Animal, rng.Intn(15))
		for j := range catalog {
			catalog[j] = animals.Animal{
				ID:   string(rune('a' + j)),
				Type: types[rng.Intn(2)],
				Size: sizes[rng.Intn(4)],
				Scores: animals.Scores{
					Friendly: score(), GoodWithAnimals: score(), GoodWithHumans: score(),
					SpecialNeeds: score(), Energy: score(), Shy: score(), Activity: score(),
					Trainability: score(), DailyActivityRequirement: score(),
				},
			}
		}

		passing := 0
		for _, a := range catalog {
			if PassesHardFilters(answers, a) {
				passing++
			}
		}

		got := ComputeMatches(answers, catalog)
		require.Len(t, got, passing)

		for k, m := range got {
			assert.GreaterOrEqual(t, m.MatchPercentage, 0)
			assert.LessOrEqual(t, m.MatchPercentage, 100)
			if k > 0 {
				assert.GreaterOrEqual(t, got[k-1].MatchPercentage, m.MatchPercentage)
			}
			if m.Animal.Type == animals.TypeCat {
				for _, c := range Explain(answers, m.Animal).Components {
					assert.NotEqual(t, DimensionWalkTime, c.Dimension)
				}
			}
		}

		assert.Equal(t, got, ComputeMatches(answers, catalog))
	}
}
