// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/logger"
)

// ClientStorages groups the client-side storage.
type ClientStorages struct {
	// ActivationRepository keeps the last activated generation.
	ActivationRepository ActivationRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, migrates it
// and wires the activation repository. An empty DSN disables persistence:
// the client then starts from the bundled defaults every time.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("activation persistence disabled (empty DSN)")
		return &ClientStorages{ActivationRepository: NewNopActivationRepository()}, nil
	}

	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ActivationRepository: NewActivationRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the database, if one was opened.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
