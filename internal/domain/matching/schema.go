package matching

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// answersSchema valida el body de POST /matches antes de decodificarlo.
// null equivale a "sin responder".
var answersSchema = gojsonschema.NewGoLoader(map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"animal_preference":        enumProp(animalPreferenceValues),
		"size_preference":          enumProp(sizePreferenceValues),
		"walk_time":                enumProp(walkTimeValues),
		"alone_time":               enumProp(aloneTimeValues),
		"activity_level":           enumProp(activityLevelValues),
		"affection_preference":     enumProp(affectionValues),
		"has_other_animals":        boolProp(),
		"has_kids":                 boolProp(),
		"wants_to_teach_tricks":    boolProp(),
		"special_needs_preference": enumProp(specialNeedsValues),
	},
})

func enumProp(values []string) map[string]any {
	enum := make([]any, 0, len(values)+1)
	for _, v := range values {
		enum = append(enum, v)
	}
	enum = append(enum, nil)
	return map[string]any{
		"type": []string{"string", "null"},
		"enum": enum,
	}
}

func boolProp() map[string]any {
	return map[string]any{"type": []string{"boolean", "null"}}
}

// validateAnswersJSON devuelve los errores de schema (vacío = válido).
// err != nil solo si el body no es JSON.
func validateAnswersJSON(body []byte) ([]string, error) {
	res, err := gojsonschema.Validate(answersSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("validate answers: %w", err)
	}
	if res.Valid() {
		return nil, nil
	}

	out := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		out = append(out, e.String())
	}
	return out, nil
}
