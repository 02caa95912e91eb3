// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-remote-config/models"
)

const (
	activationTable     = "activation"
	activatedValueTable = "activated_values"

	// activationRowID pins the single row of the activation table.
	activationRowID = 1
)

func buildUpsertActivationQuery(generation uint64, templateVersion int64, at time.Time) (string, []any, error) {
	query, args, err := sq.Insert(activationTable).
		Columns("id", "generation", "template_version", "activated_at").
		Values(activationRowID, generation, templateVersion, at).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			generation = excluded.generation,
			template_version = excluded.template_version,
			activated_at = excluded.activated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteActivatedValuesQuery() (string, []any, error) {
	query, args, err := sq.Delete(activatedValueTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertActivatedValuesQuery inserts all entries in one statement.
// Callers must not pass an empty slice.
func buildInsertActivatedValuesQuery(entries []models.Entry) (string, []any, error) {
	b := sq.Insert(activatedValueTable).Columns("key", "value_type", "value")
	for _, e := range entries {
		b = b.Values(e.Key, e.Type, e.Value)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectActivationQuery() (string, []any, error) {
	query, args, err := sq.Select("generation", "template_version", "activated_at").
		From(activationTable).
		Where(sq.Eq{"id": activationRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectActivatedValuesQuery() (string, []any, error) {
	query, args, err := sq.Select("key", "value_type", "value").
		From(activatedValueTable).
		OrderBy("key").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
