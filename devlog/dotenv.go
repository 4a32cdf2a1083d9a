package devlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when LoadDotenv is called without paths.
const DefaultEnvFile = ".env"

// LoadDotenv reads KEY=VALUE files into the process environment. Variables
// that are already set keep their values and missing files are skipped.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// ReadDotenv parses env files without touching the process environment.
// Later files override earlier ones; missing files are skipped.
func ReadDotenv(paths ...string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	return vars, nil
}

// MapSource serves lookups from vars, falling back to the process
// environment when fallback is true.
func MapSource(vars map[string]string, fallback bool) EnvSource {
	return func(key string) (string, bool) {
		if v, ok := vars[key]; ok {
			return v, true
		}
		if fallback {
			return os.LookupEnv(key)
		}
		return "", false
	}
}
