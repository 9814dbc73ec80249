package analyze

import "encoding/json"

// instruction is the fixed task description sent with every image. It is a
// static string, never user input.
const instruction = `Analyze this photo of an Indian/Bengali meal.
Identify all items (e.g., Rice, Dal, Bhaja, Macher Jhol, Luchi, Mishti, etc.).
Provide precise nutritional estimation based on standard Bengali household cooking styles.
For every text field return an object with translations keyed "en" (English), "bn" (Bengali), "hi" (Hindi) and "as" (Assamese).
Classify each item's nutritional soundness as PASS, WARNING or FAIL.
If the photo contains no edible food, return an empty items array.
Return the result in JSON format.`

// Instruction returns the static task description.
func Instruction() string { return instruction }

// localizedTextSchema describes one translated string in the response
// schema dialect Gemini accepts.
var localizedTextSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"en": map[string]any{"type": "STRING"},
		"bn": map[string]any{"type": "STRING"},
		"hi": map[string]any{"type": "STRING"},
		"as": map[string]any{"type": "STRING"},
	},
	"required": []string{"en", "bn", "hi", "as"},
}

func number(description string) map[string]any {
	s := map[string]any{"type": "NUMBER"}
	if description != "" {
		s["description"] = description
	}
	return s
}

// ResponseSchema returns the structured-output schema for a nutrition
// analysis. The service is expected to return exactly this shape; any
// deviation is repaired by normalization, not trusted.
func ResponseSchema() json.RawMessage {
	schema := map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"name":     localizedTextSchema,
						"portion":  localizedTextSchema,
						"calories": number("Calories in kcal."),
						"protein":  number("Protein in grams."),
						"carbs":    number("Carbohydrates in grams."),
						"fats":     number("Fats in grams."),
						"notes":    localizedTextSchema,
						"status": map[string]any{
							"type": "STRING",
							"enum": []string{"PASS", "WARNING", "FAIL"},
						},
					},
					"required": []string{"name", "portion", "calories", "protein", "carbs", "fats", "notes", "status"},
				},
			},
			"totalCalories": number(""),
			"totalProtein":  number(""),
			"totalCarbs":    number(""),
			"totalFats":     number(""),
			"healthRating":  number("A score from 1-10 on how balanced this meal is."),
			"advice":        localizedTextSchema,
		},
		"required": []string{"items", "totalCalories", "totalProtein", "totalCarbs", "totalFats", "healthRating", "advice"},
	}
	data, err := json.Marshal(schema)
	if err != nil {
		// The schema is a compile-time constant; this cannot fail.
		panic(err)
	}
	return data
}
