package main

import (
	"checktidy/internal/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// CHECKTIDY_* overrides may live in a local .env; it is optional.
	_ = godotenv.Load()

	cmd.Execute()
}
