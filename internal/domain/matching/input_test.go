package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAnswerInput_AnswerSet(t *testing.T) {
	in := AnswerInput{
		AnimalPreference:       ptr(" Dog "),
		SizePreference:         ptr("LARGE"),
		WalkTime:               ptr("long"),
		HasKids:                ptr(true),
		SpecialNeedsPreference: ptr("maybe"),
	}

	a, err := in.AnswerSet()
	require.NoError(t, err)
	assert.Equal(t, PreferDog, *a.AnimalType)
	assert.Equal(t, SizeLarge, *a.Size)
	assert.Equal(t, WalkLong, *a.WalkTime)
	assert.True(t, *a.HasKids)
	assert.Equal(t, SpecialNeedsMaybe, *a.SpecialNeeds)
	assert.Nil(t, a.AloneTime)
	assert.Nil(t, a.HasOtherAnimals)
}

func TestAnswerInput_InvalidEnum(t *testing.T) {
	_, err := AnswerInput{ActivityLevel: ptr("extreme")}.AnswerSet()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	assert.Contains(t, err.Error(), "activity_level")
}

func TestAnswerInput_YAML(t *testing.T) {
	raw := "animal_preference: cat\nalone_time: full_day\nhas_other_animals: false\n"

	var in AnswerInput
	require.NoError(t, yaml.Unmarshal([]byte(raw), &in))

	a, err := in.AnswerSet()
	require.NoError(t, err)
	assert.Equal(t, PreferCat, *a.AnimalType)
	assert.Equal(t, AloneFullDay, *a.AloneTime)
	require.NotNil(t, a.HasOtherAnimals)
	assert.False(t, *a.HasOtherAnimals)
}

func TestValidateAnswersJSON(t *testing.T) {
	problems, err := validateAnswersJSON([]byte(`{"animal_preference":"dog","has_kids":null}`))
	require.NoError(t, err)
	assert.Empty(t, problems)

	problems, err = validateAnswersJSON([]byte(`{"walk_time":"forever","has_kids":"yes","extra":1}`))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(problems), 3)

	_, err = validateAnswersJSON([]byte(`{`))
	assert.Error(t, err)
}
