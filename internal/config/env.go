// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envFileVar names the variable that points to an alternative .env file.
const envFileVar = "ENV_FILE"

// parseEnv populates cfg from environment variables through caarlos0/env.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads the .env file (or the file named by ENV_FILE) into the
// process environment. Variables already set are kept. A missing file is not
// an error.
func loadDotEnv() error {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
