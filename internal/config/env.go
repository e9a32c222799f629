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

// dotEnvFile is read from the working directory when present. Real
// environment variables override its entries.
const dotEnvFile = ".env"

func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, dotEnvFile)
}

// parseEnvFrom populates cfg through the `env` and `envPrefix` tags of
// [StructuredConfig], reading the process environment layered over the
// dotenv file at path.
func parseEnvFrom(cfg any, path string) error {
	environ, err := environment(path)
	if err != nil {
		return err
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func processEnv() map[string]string {
	return env.ToMap(os.Environ())
}

func environment(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		vars = make(map[string]string)
	case err != nil:
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	for k, v := range processEnv() {
		vars[k] = v
	}

	return vars, nil
}
