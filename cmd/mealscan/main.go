package main

import (
	"os"

	"github.com/sdutta9/mealscan/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
