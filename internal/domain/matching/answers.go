package matching

// AnimalTypePreference: qué especie busca el adoptante.
// @Enum dog, cat, either
type AnimalTypePreference string

const (
	PreferDog    AnimalTypePreference = "dog"
	PreferCat    AnimalTypePreference = "cat"
	PreferEither AnimalTypePreference = "either"
)

// SizePreference no tiene "extra_large": large lo incluye.
type SizePreference string

const (
	SizeSmall  SizePreference = "small"
	SizeMedium SizePreference = "medium"
	SizeLarge  SizePreference = "large"
	SizeAny    SizePreference = "any"
)

// WalkTimePreference solo aplica a perros.
type WalkTimePreference string

const (
	WalkShort    WalkTimePreference = "short"
	WalkModerate WalkTimePreference = "moderate"
	WalkLong     WalkTimePreference = "long"
)

type AloneTimePreference string

const (
	AloneFewHours AloneTimePreference = "few_hours"
	AloneHalfDay  AloneTimePreference = "half_day"
	AloneFullDay  AloneTimePreference = "full_day"
)

type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

type AffectionPreference string

const (
	AffectionShy          AffectionPreference = "shy"
	AffectionBalanced     AffectionPreference = "balanced"
	AffectionAffectionate AffectionPreference = "affectionate"
)

type SpecialNeedsPreference string

const (
	SpecialNeedsYes   SpecialNeedsPreference = "yes"
	SpecialNeedsMaybe SpecialNeedsPreference = "maybe"
	SpecialNeedsNo    SpecialNeedsPreference = "no"
)

// AnswerSet son las respuestas del cuestionario.
// Cada campo es opcional: nil = todavía sin responder.
type AnswerSet struct {
	AnimalType         *AnimalTypePreference
	Size               *SizePreference
	WalkTime           *WalkTimePreference
	AloneTime          *AloneTimePreference
	ActivityLevel      *ActivityLevel
	Affection          *AffectionPreference
	HasOtherAnimals    *bool
	HasKids            *bool
	WantsToTeachTricks *bool
	SpecialNeeds       *SpecialNeedsPreference
}

func (a AnswerSet) walkTimeApplies() bool {
	return a.AnimalType == nil || *a.AnimalType != PreferCat
}

// WithAnimalType devuelve una copia con la especie elegida.
// Si es gato, limpia el tiempo de paseo (la pregunta deja de existir).
func (a AnswerSet) WithAnimalType(p AnimalTypePreference) AnswerSet {
	a.AnimalType = &p
	if p == PreferCat {
		a.WalkTime = nil
	}
	return a
}

// TotalQuestions: 9 si busca gato (sin paseo), 10 en otro caso.
func (a AnswerSet) TotalQuestions() int {
	if !a.walkTimeApplies() {
		return 9
	}
	return 10
}

func (a AnswerSet) AnsweredCount() int {
	n := 0
	count := func(set bool) {
		if set {
			n++
		}
	}
	count(a.AnimalType != nil)
	count(a.Size != nil)
	count(a.walkTimeApplies() && a.WalkTime != nil)
	count(a.AloneTime != nil)
	count(a.ActivityLevel != nil)
	count(a.Affection != nil)
	count(a.HasOtherAnimals != nil)
	count(a.HasKids != nil)
	count(a.WantsToTeachTricks != nil)
	count(a.SpecialNeeds != nil)
	return n
}

// IsComplete es informativo: el motor nunca exige respuestas completas.
func (a AnswerSet) IsComplete() bool {
	return a.AnimalType != nil &&
		a.Size != nil &&
		(!a.walkTimeApplies() || a.WalkTime != nil) &&
		a.AloneTime != nil &&
		a.ActivityLevel != nil &&
		a.Affection != nil &&
		a.HasOtherAnimals != nil &&
		a.HasKids != nil &&
		a.WantsToTeachTricks != nil &&
		a.SpecialNeeds != nil
}
