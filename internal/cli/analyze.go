package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdutta9/mealscan/internal/analyze"
	"github.com/sdutta9/mealscan/internal/config"
	"github.com/sdutta9/mealscan/internal/nutrition"
	"github.com/sdutta9/mealscan/internal/output"
	"github.com/sdutta9/mealscan/internal/providers"
)

// buildOverrides drops empty values so unset flags never clobber config.
func buildOverrides(pairs map[string]string) map[string]string {
	m := make(map[string]string, len(pairs))
	for k, v := range pairs {
		if v != "" {
			m[k] = v
		}
	}
	return m
}

var analyzeOpts struct {
	provider string
	model    string
	language string
	format   string
	out      string
	noCache  bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image|->",
	Short: "Analyze a meal photo",
	Long:  "Analyze a meal photo from a file path, or from stdin when the argument is \"-\".",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides(map[string]string{
			"provider": analyzeOpts.provider,
			"model":    analyzeOpts.model,
			"language": analyzeOpts.language,
			"format":   analyzeOpts.format,
		}))
		if err != nil {
			return err
		}
		if analyzeOpts.noCache {
			cfg.Cache.Enabled = false
		}

		lang, ok := nutrition.ParseLang(cfg.Language)
		if !ok {
			return fmt.Errorf("unsupported language: %q (supported: en, bn, hi, as)", cfg.Language)
		}

		var image []byte
		if args[0] == "-" {
			image, err = io.ReadAll(os.Stdin)
		} else {
			image, err = os.ReadFile(args[0])
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
			exitCode = ExitRuntimeErr
			return nil
		}

		engine, err := buildEngine(cfg, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if providers.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeErr
			}
			return nil
		}

		result, err := engine.Analyze(context.Background(), image, lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			switch analyze.KindOf(err) {
			case analyze.KindConfiguration:
				exitCode = ExitAuthError
			case analyze.KindRateLimited:
				exitCode = ExitRateLimited
			default:
				exitCode = ExitRuntimeErr
			}
			return nil
		}

		if err := output.WriteResult(result, lang, cfg.Format, analyzeOpts.out); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeErr
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOpts.provider, "provider", "", "Inference provider (gemini, openai, ollama)")
	analyzeCmd.Flags().StringVar(&analyzeOpts.model, "model", "", "Model name")
	analyzeCmd.Flags().StringVar(&analyzeOpts.language, "language", "", "Display language (en, bn, hi, as)")
	analyzeCmd.Flags().StringVar(&analyzeOpts.format, "format", "", "Output format (text, json, markdown)")
	analyzeCmd.Flags().StringVar(&analyzeOpts.out, "out", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.noCache, "no-cache", false, "Bypass the result cache")
}
