package nutrition

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports a payload that is not parseable JSON. Callers should
// surface it as a service failure, never as an empty result.
var ErrMalformed = fmt.Errorf("malformed analysis response")

// rawResult mirrors the wire schema with every leaf left unparsed, since
// none of it can be trusted: numbers arrive as strings, localized text
// arrives as bare strings, fields go missing entirely.
type rawResult struct {
	Items         []rawItem       `json:"items"`
	TotalCalories json.RawMessage `json:"totalCalories"`
	TotalProtein  json.RawMessage `json:"totalProtein"`
	TotalCarbs    json.RawMessage `json:"totalCarbs"`
	TotalFats     json.RawMessage `json:"totalFats"`
	HealthRating  json.RawMessage `json:"healthRating"`
	Advice        json.RawMessage `json:"advice"`
}

type rawItem struct {
	Name     json.RawMessage `json:"name"`
	Portion  json.RawMessage `json:"portion"`
	Calories json.RawMessage `json:"calories"`
	Protein  json.RawMessage `json:"protein"`
	Carbs    json.RawMessage `json:"carbs"`
	Fats     json.RawMessage `json:"fats"`
	Notes    json.RawMessage `json:"notes"`
	Status   json.RawMessage `json:"status"`
}

// Normalize parses a raw model response and repairs it into a fully
// conforming AnalysisResult. It is idempotent: normalizing an already
// normalized result is a no-op.
func Normalize(raw []byte) (*AnalysisResult, error) {
	content := stripFences(string(raw))

	var r rawResult
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	result := &AnalysisResult{
		Items:         make([]FoodItem, 0, len(r.Items)),
		TotalCalories: coerceNumber(r.TotalCalories),
		TotalProtein:  coerceNumber(r.TotalProtein),
		TotalCarbs:    coerceNumber(r.TotalCarbs),
		TotalFats:     coerceNumber(r.TotalFats),
		HealthRating:  coerceNumber(r.HealthRating),
		Advice:        coerceText(r.Advice),
	}

	for _, ri := range r.Items {
		result.Items = append(result.Items, FoodItem{
			Name:     coerceText(ri.Name),
			Portion:  coerceText(ri.Portion),
			Calories: coerceNumber(ri.Calories),
			Protein:  coerceNumber(ri.Protein),
			Carbs:    coerceNumber(ri.Carbs),
			Fats:     coerceNumber(ri.Fats),
			Notes:    coerceText(ri.Notes),
			Status:   coerceStatus(ri.Status),
		})
	}

	// Empty plate: the model sometimes emits plausible totals or advice
	// alongside an empty item list. None of it is trusted.
	if len(result.Items) == 0 {
		result.TotalCalories = 0
		result.TotalProtein = 0
		result.TotalCarbs = 0
		result.TotalFats = 0
		result.HealthRating = 0
		result.Advice = RefusalAdvice()
	}

	return result, nil
}

// stripFences removes a surrounding markdown code fence, which models emit
// even when asked for raw JSON.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return content
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.Join(lines[1:end], "\n")
}

// coerceNumber accepts a JSON number or a numeric string; anything else,
// including a missing field or a negative value, becomes 0.
func coerceNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		n = parsed
	}
	if n < 0 {
		return 0
	}
	return n
}

// coerceText accepts either a language-keyed object or a bare string (older
// model revisions return single-language strings, which become the English
// value). Missing languages are filled from English, then from any present
// value.
func coerceText(raw json.RawMessage) LocalizedText {
	text := LocalizedText{}
	if len(raw) > 0 {
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err == nil {
			for _, lang := range Languages() {
				if s := strings.TrimSpace(m[string(lang)]); s != "" {
					text[lang] = s
				}
			}
		} else {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				if s = strings.TrimSpace(s); s != "" {
					text[LangEnglish] = s
				}
			}
		}
	}

	fallback := text[LangEnglish]
	if fallback == "" {
		for _, lang := range Languages() {
			if text[lang] != "" {
				fallback = text[lang]
				break
			}
		}
	}
	for _, lang := range Languages() {
		if text[lang] == "" {
			text[lang] = fallback
		}
	}
	return text
}

func coerceStatus(raw json.RawMessage) VerifyStatus {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return StatusWarning
	}
	switch VerifyStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPass:
		return StatusPass
	case StatusFail:
		return StatusFail
	default:
		// Unknown verification must not pass silently.
		return StatusWarning
	}
}
