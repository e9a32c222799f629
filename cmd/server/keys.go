package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-god/internal/config"
	"github.com/MKhiriev/go-pass-god/internal/crypto"
	"github.com/MKhiriev/go-pass-god/internal/keystore"
	"github.com/MKhiriev/go-pass-god/internal/logger"
)

type processKeys struct {
	encryption crypto.EncryptionKey
	signing    []byte
}

// provisionKeys resolves both keys from config, then the key file, and
// generates any that are missing. A missing encryption key is fatal once
// ciphertext exists in the database.
func provisionKeys(ctx context.Context, cfg config.App, sealed keystore.Guard, log *logger.Logger) (processKeys, error) {
	src := keystore.NewEnvSource(map[string]string{
		keystore.EncryptionKeyName: cfg.EncryptionKey,
		keystore.SigningKeyName:    cfg.TokenSignKey,
	}, keystore.NewFileSource(cfg.KeyFile))

	encoded, generated, err := keystore.Ensure(ctx, src, keystore.EncryptionKeyName, crypto.GenerateEncryptionKey, sealed)
	if err != nil {
		return processKeys{}, fmt.Errorf("error provisioning encryption key: %w", err)
	}
	if generated {
		log.Warn().Str("key_file", cfg.KeyFile).Msg("generated new encryption key; back up the key file")
	}

	encryption, err := crypto.ParseEncryptionKey(encoded)
	if err != nil {
		return processKeys{}, fmt.Errorf("error parsing encryption key: %w", err)
	}

	signing, generated, err := keystore.Ensure(ctx, src, keystore.SigningKeyName, crypto.GenerateSigningKey, keystore.NoGuard)
	if err != nil {
		return processKeys{}, fmt.Errorf("error provisioning token sign key: %w", err)
	}
	if generated {
		log.Info().Str("key_file", cfg.KeyFile).Msg("generated new token sign key")
	}

	return processKeys{encryption: encryption, signing: []byte(signing)}, nil
}
