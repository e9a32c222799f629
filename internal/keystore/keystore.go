// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keystore provisions process-wide key material from a durable
// configuration source of named string values.
package keystore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Source reads and writes named string values that survive restarts.
type Source interface {
	// Get returns the value of name and whether it is present.
	Get(ctx context.Context, name string) (string, bool, error)
	// Set durably stores value under name.
	Set(ctx context.Context, name, value string) error
}

// Guard reports whether data sealed under a previous key may exist. When it
// returns true, Ensure refuses to generate a replacement key.
type Guard func(ctx context.Context) (bool, error)

// NoGuard allows generation unconditionally. It suits keys whose loss only
// invalidates short-lived data, such as the token signing key.
func NoGuard(context.Context) (bool, error) { return false, nil }

// Ensure returns the value of name from src. When absent, it generates a
// value, persists it to src and returns it. Once persisted, later calls
// return the same value, so the generate path runs at most once per source.
//
// If guard reports that data sealed under an earlier key exists, Ensure
// fails with ErrKeyMissing instead of generating a second key.
func Ensure(ctx context.Context, src Source, name string, generate func() (string, error), guard Guard) (value string, generated bool, err error) {
	value, ok, err := src.Get(ctx, name)
	if err != nil {
		return "", false, fmt.Errorf("%w: read %s: %w", ErrSourceUnavailable, name, err)
	}
	if ok && value != "" {
		return value, false, nil
	}

	if guard != nil {
		sealed, err := guard(ctx)
		if err != nil {
			return "", false, fmt.Errorf("checking for sealed data before generating %s: %w", name, err)
		}
		if sealed {
			return "", false, fmt.Errorf("%w: %s", ErrKeyMissing, name)
		}
	}

	value, err = generate()
	if err != nil {
		return "", false, fmt.Errorf("generate %s: %w", name, err)
	}

	if err := src.Set(ctx, name, value); err != nil {
		return "", false, fmt.Errorf("%w: persist %s: %w", ErrSourceUnavailable, name, err)
	}

	return value, true, nil
}

// FileSource is a dotenv file used as the configuration source.
type FileSource struct {
	mu   sync.Mutex
	path string
}

// NewFileSource returns a source backed by the dotenv file at path. The file
// is created on the first Set.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Get implements [Source].
func (s *FileSource) Get(_ context.Context, name string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}

	value, ok := values[name]
	return value, ok, nil
}

// Set implements [Source]. Other entries of the file are preserved and the
// file is written with owner-only permissions.
func (s *FileSource) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[name] = value

	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}

func (s *FileSource) read() (map[string]string, error) {
	values, err := godotenv.Read(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return values, nil
}

// EnvSource layers process configuration over a durable source: a non-empty
// preset wins, otherwise the durable source is consulted. Writes go to the
// durable source.
type EnvSource struct {
	presets map[string]string
	next    Source
}

// NewEnvSource returns a source that serves presets before next.
func NewEnvSource(presets map[string]string, next Source) *EnvSource {
	return &EnvSource{presets: presets, next: next}
}

// Get implements [Source].
func (s *EnvSource) Get(ctx context.Context, name string) (string, bool, error) {
	if v := s.presets[name]; v != "" {
		return v, true, nil
	}
	return s.next.Get(ctx, name)
}

// Set implements [Source].
func (s *EnvSource) Set(ctx context.Context, name, value string) error {
	return s.next.Set(ctx, name, value)
}
