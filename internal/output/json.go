package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sdutta9/mealscan/internal/nutrition"
)

// JSONWriter outputs the full result as JSON. All languages are included;
// the lang argument is ignored.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, result *nutrition.AnalysisResult, _ nutrition.Lang) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
