// cmd/arc-cli/main.go
package main

import (
	"os"

	"arch-rule-checker/internal/cli"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	// ARC_SOURCE / ARC_CONFIG may come from a .env file in the working directory.
	_ = godotenv.Load()

	cli.Version = version
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
