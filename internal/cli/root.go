package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes.
const (
	ExitSuccess     = 0
	ExitUsageError  = 2
	ExitAuthError   = 3
	ExitRuntimeErr  = 4
	ExitRateLimited = 5
)

var rootCmd = &cobra.Command{
	Use:   "mealscan",
	Short: "Meal photo nutrition estimator",
	Long:  "Mealscan analyzes meal photos with a vision model and reports per-item nutrition in English, Bengali, Hindi, and Assamese.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	// Keys like GEMINI_API_KEY commonly live in a local .env.
	_ = godotenv.Load()

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print mealscan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "mealscan version %s\n", version)
	},
}
