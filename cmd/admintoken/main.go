// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command admintoken prints a bearer token allowed to publish templates.
// The subject is taken from ADMIN_SUBJECT; signing settings are shared with
// the server configuration.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/service"
	"github.com/caarlos0/env/v11"
)

type tokenRequest struct {
	Subject string `env:"ADMIN_SUBJECT" envDefault:"admin"`
}

func main() {
	log := logger.NewLogger("remote-config-admintoken")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	req, err := env.ParseAs[tokenRequest]()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing token request")
	}

	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), req.Subject)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Fprintln(os.Stdout, token.SignedString)
}
