package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Ge0m/matchbuilder/internal/app"
)

func main() {
	// Optional .env for MATCHBUILDER_ROOT and friends.
	_ = godotenv.Load()
	os.Exit(app.RunWithOptions(app.Options{Args: os.Args[1:]}))
}
