// brandpal generates deterministic, accessible brand colour palettes.
//
// Settings may be supplied through BRANDPAL_* environment variables or a
// .env file in the working directory.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/brandpal/internal/cli"
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
