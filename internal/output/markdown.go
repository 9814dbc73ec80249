package output

import (
	"fmt"
	"io"

	"github.com/sdutta9/mealscan/internal/nutrition"
)

// MarkdownWriter outputs a shareable markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *nutrition.AnalysisResult, lang nutrition.Lang) error {
	fmt.Fprintf(w, "## Mealscan Analysis\n\n")

	if len(result.Items) == 0 {
		fmt.Fprintln(w, "No food detected in this image.")
		if advice := result.Advice.Get(lang); advice != "" {
			fmt.Fprintf(w, "\n> %s\n", advice)
		}
		return nil
	}

	fmt.Fprintf(w, "| Item | Portion | Calories | Protein | Carbs | Fats | Status |\n")
	fmt.Fprintf(w, "|------|---------|----------|---------|-------|------|--------|\n")
	for _, item := range result.Items {
		fmt.Fprintf(w, "| %s | %s | %.0f | %.1fg | %.1fg | %.1fg | %s %s |\n",
			item.Name.Get(lang), item.Portion.Get(lang),
			item.Calories, item.Protein, item.Carbs, item.Fats,
			mdStatusIcon(item.Status), item.Status)
	}
	fmt.Fprintf(w, "| **Total** | | **%.0f** | **%.1fg** | **%.1fg** | **%.1fg** | |\n\n",
		result.TotalCalories, result.TotalProtein, result.TotalCarbs, result.TotalFats)

	fmt.Fprintf(w, "**Health rating:** %.0f/10\n\n", result.HealthRating)

	if advice := result.Advice.Get(lang); advice != "" {
		fmt.Fprintf(w, "> %s\n\n", advice)
	}

	for _, item := range result.Items {
		if notes := item.Notes.Get(lang); notes != "" {
			fmt.Fprintf(w, "- **%s**: %s\n", item.Name.Get(lang), notes)
		}
	}

	return nil
}

func mdStatusIcon(s nutrition.VerifyStatus) string {
	switch s {
	case nutrition.StatusPass:
		return ":white_check_mark:"
	case nutrition.StatusWarning:
		return ":warning:"
	case nutrition.StatusFail:
		return ":x:"
	default:
		return ":grey_question:"
	}
}
