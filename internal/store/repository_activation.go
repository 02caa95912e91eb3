// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/models"
	"github.com/sethvargo/go-retry"
)

// Saves that fail with a retryable driver error are attempted up to
// maxSaveAttempts times on a Fibonacci backoff starting at saveRetryDelay.
const (
	maxSaveAttempts = 3
	saveRetryDelay  = 50 * time.Millisecond
)

type activationRepository struct {
	*DB
	retryDelay time.Duration
	logger     *logger.Logger
}

// NewActivationRepository returns a SQLite-backed [ActivationRepository].
func NewActivationRepository(db *DB, logger *logger.Logger) ActivationRepository {
	return &activationRepository{
		DB:         db,
		retryDelay: saveRetryDelay,
		logger:     logger,
	}
}

func (r *activationRepository) SaveActivation(ctx context.Context, a models.Activation) error {
	var (
		attempt int
		lastErr error
	)
	backoff := retry.WithMaxRetries(maxSaveAttempts-1, retry.NewFibonacci(r.retryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		lastErr = r.saveActivation(ctx, a)
		if lastErr == nil || ClassifySQLiteError(lastErr) != Retryable {
			return lastErr
		}

		if attempt < maxSaveAttempts {
			logger.FromContext(ctx).Warn().Err(lastErr).Int("attempt", attempt).Msg("database is busy, retrying activation save")
		}
		return retry.RetryableError(lastErr)
	})

	// cancelled while waiting: keep the driver error next to ctx.Err()
	if err != nil && lastErr != nil && err != lastErr {
		return errors.Join(lastErr, err)
	}
	return err
}

func (r *activationRepository) saveActivation(ctx context.Context, a models.Activation) (err error) {
	log := logger.FromContext(ctx)

	upsertQuery, upsertArgs, err := buildUpsertActivationQuery(a.Generation, a.TemplateVersion, a.ActivatedAt)
	if err != nil {
		return err
	}
	deleteQuery, deleteArgs, err := buildDeleteActivatedValuesQuery()
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "activationRepository.SaveActivation").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		log.Err(err).Str("func", "activationRepository.SaveActivation").Msg("failed to upsert activation row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "activationRepository.SaveActivation").Msg("failed to clear activated values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(a.Values) > 0 {
		insertQuery, insertArgs, buildErr := buildInsertActivatedValuesQuery(models.ValuesToEntries(a.Values))
		if buildErr != nil {
			err = buildErr
			return err
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "activationRepository.SaveActivation").
				Int("values", len(a.Values)).
				Msg("failed to insert activated values")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "activationRepository.SaveActivation").Msg("failed to commit activation")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *activationRepository) LoadActivation(ctx context.Context) (models.Activation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActivationQuery()
	if err != nil {
		return models.Activation{}, err
	}

	var a models.Activation
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&a.Generation, &a.TemplateVersion, &a.ActivatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Activation{}, ErrNoActivation
	}
	if err != nil {
		log.Err(err).Str("func", "activationRepository.LoadActivation").Msg("failed to scan activation row")
		return models.Activation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err = buildSelectActivatedValuesQuery()
	if err != nil {
		return models.Activation{}, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "activationRepository.LoadActivation").Msg("failed to query activated values")
		return models.Activation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err = rows.Scan(&e.Key, &e.Type, &e.Value); err != nil {
			log.Err(err).Str("func", "activationRepository.LoadActivation").Msg("failed to scan activated value")
			return models.Activation{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return models.Activation{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	a.Values, err = models.EntriesToValues(entries)
	if err != nil {
		log.Err(err).Str("func", "activationRepository.LoadActivation").Msg("persisted activation does not decode")
		return models.Activation{}, fmt.Errorf("%w: %w", ErrCorruptActivation, err)
	}

	return a, nil
}

// nopActivationRepository is used when persistence is disabled.
type nopActivationRepository struct{}

// NewNopActivationRepository returns a repository that stores nothing and
// always reports [ErrNoActivation].
func NewNopActivationRepository() ActivationRepository {
	return nopActivationRepository{}
}

func (nopActivationRepository) SaveActivation(context.Context, models.Activation) error {
	return nil
}

func (nopActivationRepository) LoadActivation(context.Context) (models.Activation, error) {
	return models.Activation{}, ErrNoActivation
}
