package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles fills unset or empty variables from the given .env files, in order.
// Missing files are skipped; variables already in the environment win.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("env file %s ignored: %v", path, err)
			}
			continue
		}
		for key, val := range values {
			if os.Getenv(key) == "" {
				_ = os.Setenv(key, val)
			}
		}
	}
}
