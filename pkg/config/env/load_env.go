package env

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultPath is where a checker deployment may drop its override file.
const DefaultPath = ".env"

// LoadDotEnv loads environment variables from a .env file. The path comes
// from CHECKER_ENV_PATH, falling back to DefaultPath. A missing file at
// the fallback path is fine; a missing or broken file at an explicitly
// configured path is an error. Nothing is logged here: on the success
// path the checker must keep the error channel silent.
func LoadDotEnv() error {
	path := os.Getenv("CHECKER_ENV_PATH")
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			return nil
		}
		path = DefaultPath
	}
	return godotenv.Load(path)
}
