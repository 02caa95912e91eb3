// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-remote-config/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ActivationRepository persists the latest activated generation locally.
type ActivationRepository interface {
	// SaveActivation replaces the stored activation with a.
	SaveActivation(ctx context.Context, a models.Activation) error

	// LoadActivation returns the stored activation or [ErrNoActivation].
	LoadActivation(ctx context.Context) (models.Activation, error)
}
