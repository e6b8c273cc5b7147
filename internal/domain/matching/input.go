package matching

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAnswer = errors.New("invalid answer")

// AnswerInput es la forma "de cable" de las respuestas (HTTP y archivos del CLI).
// Punteros: nil = pregunta sin responder.
type AnswerInput struct {
	AnimalPreference       *string `json:"animal_preference,omitempty" yaml:"animal_preference,omitempty"`
	SizePreference         *string `json:"size_preference,omitempty" yaml:"size_preference,omitempty"`
	WalkTime               *string `json:"walk_time,omitempty" yaml:"walk_time,omitempty"`
	AloneTime              *string `json:"alone_time,omitempty" yaml:"alone_time,omitempty"`
	ActivityLevel          *string `json:"activity_level,omitempty" yaml:"activity_level,omitempty"`
	AffectionPreference    *string `json:"affection_preference,omitempty" yaml:"affection_preference,omitempty"`
	HasOtherAnimals        *bool   `json:"has_other_animals,omitempty" yaml:"has_other_animals,omitempty"`
	HasKids                *bool   `json:"has_kids,omitempty" yaml:"has_kids,omitempty"`
	WantsToTeachTricks     *bool   `json:"wants_to_teach_tricks,omitempty" yaml:"wants_to_teach_tricks,omitempty"`
	SpecialNeedsPreference *string `json:"special_needs_preference,omitempty" yaml:"special_needs_preference,omitempty"`
}

// Valores aceptados por campo (también alimentan el JSON Schema del handler).
var (
	animalPreferenceValues = []string{string(PreferDog), string(PreferCat), string(PreferEither)}
	sizePreferenceValues   = []string{string(SizeSmall), string(SizeMedium), string(SizeLarge), string(SizeAny)}
	walkTimeValues         = []string{string(WalkShort), string(WalkModerate), string(WalkLong)}
	aloneTimeValues        = []string{string(AloneFewHours), string(AloneHalfDay), string(AloneFullDay)}
	activityLevelValues    = []string{string(ActivityLow), string(ActivityModerate), string(ActivityHigh)}
	affectionValues        = []string{string(AffectionShy), string(AffectionBalanced), string(AffectionAffectionate)}
	specialNeedsValues     = []string{string(SpecialNeedsYes), string(SpecialNeedsMaybe), string(SpecialNeedsNo)}
)

// AnswerSet valida los enums y arma el AnswerSet del motor.
func (in AnswerInput) AnswerSet() (AnswerSet, error) {
	var out AnswerSet
	var err error

	if out.AnimalType, err = parseEnum[AnimalTypePreference]("animal_preference", in.AnimalPreference, animalPreferenceValues); err != nil {
		return AnswerSet{}, err
	}
	if out.Size, err = parseEnum[SizePreference]("size_preference", in.SizePreference, sizePreferenceValues); err != nil {
		return AnswerSet{}, err
	}
	if out.WalkTime, err = parseEnum[WalkTimePreference]("walk_time", in.WalkTime, walkTimeValues); err != nil {
		return AnswerSet{}, err
	}
	if out.AloneTime, err = parseEnum[AloneTimePreference]("alone_time", in.AloneTime, aloneTimeValues); err != nil {
		return AnswerSet{}, err
	}
	if out.ActivityLevel, err = parseEnum[ActivityLevel]("activity_level", in.ActivityLevel, activityLevelValues); err != nil {
		return AnswerSet{}, err
	}
	if out.Affection, err = parseEnum[AffectionPreference]("affection_preference", in.AffectionPreference, affectionValues); err != nil {
		return AnswerSet{}, err
	}
	if out.SpecialNeeds, err = parseEnum[SpecialNeedsPreference]("special_needs_preference", in.SpecialNeedsPreference, specialNeedsValues); err != nil {
		return AnswerSet{}, err
	}

	out.HasOtherAnimals = in.HasOtherAnimals
	out.HasKids = in.HasKids
	out.WantsToTeachTricks = in.WantsToTeachTricks

	return out, nil
}

func parseEnum[T ~string](field string, v *string, allowed []string) (*T, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.ToLower(strings.TrimSpace(*v))
	for _, a := range allowed {
		if s == a {
			t := T(s)
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s must be one of %s", ErrInvalidAnswer, field, strings.Join(allowed, ", "))
}
