package main

import (
	"os"

	"ayat-atlas/internal/api"

	"github.com/joho/godotenv"
)

type Environment struct {
	DatasetPath string
	APIBase     string
	Debug       bool
}

// LoadEnvironment reads optional overrides from a .env file and the
// process environment. Everything has a default; nothing is required.
func LoadEnvironment() Environment {
	_ = godotenv.Load()

	env := Environment{
		DatasetPath: os.Getenv("AYAT_DATASET"),
		APIBase:     os.Getenv("AYAT_API_BASE"),
		Debug:       os.Getenv("AYAT_DEBUG") == "1",
	}
	if env.DatasetPath == "" {
		env.DatasetPath = "data/verses.csv"
	}
	if env.APIBase == "" {
		env.APIBase = api.DefaultBaseURL
	}
	return env
}
