package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdutta9/mealscan/internal/nutrition"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, result *nutrition.AnalysisResult, lang nutrition.Lang) error {
	ew := &errWriter{w: w}

	ew.println("Mealscan Analysis")
	ew.println(strings.Repeat("─", 60))

	if len(result.Items) == 0 {
		ew.println("\nNo food detected in this image.")
		if advice := result.Advice.Get(lang); advice != "" {
			ew.println("")
			for _, line := range wrapText(advice, 70) {
				ew.printf("  %s\n", line)
			}
		}
		return ew.err
	}

	for _, item := range result.Items {
		ew.printf("\n%s %s", statusIcon(item.Status), item.Name.Get(lang))
		if portion := item.Portion.Get(lang); portion != "" {
			ew.printf(" (%s)", portion)
		}
		ew.println("")
		ew.printf("  %.0f kcal | protein %.1fg | carbs %.1fg | fats %.1fg\n",
			item.Calories, item.Protein, item.Carbs, item.Fats)
		if notes := item.Notes.Get(lang); notes != "" {
			for _, line := range wrapText(notes, 70) {
				ew.printf("  %s\n", line)
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Total: %.0f kcal | protein %.1fg | carbs %.1fg | fats %.1fg\n",
		result.TotalCalories, result.TotalProtein, result.TotalCarbs, result.TotalFats)
	ew.printf("Health rating: %.0f/10\n", result.HealthRating)

	if advice := result.Advice.Get(lang); advice != "" {
		ew.println("\nAdvice:")
		for _, line := range wrapText(advice, 70) {
			ew.printf("  %s\n", line)
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func statusIcon(s nutrition.VerifyStatus) string {
	switch s {
	case nutrition.StatusPass:
		return "[ok]"
	case nutrition.StatusWarning:
		return "[?]"
	case nutrition.StatusFail:
		return "[!]"
	default:
		return "[?]"
	}
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
