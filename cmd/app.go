/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/allbin/provision"
	"github.com/allbin/provision/internal/config"
	"github.com/allbin/provision/internal/logging"
)

// app holds the components every command is built from
type app struct {
	ctx        context.Context
	cfg        config.Config
	logger     *slog.Logger
	detector   *provision.Detector
	resolver   provision.PortResolver
	controller *provision.Controller
}

// newApp loads configuration and wires the provisioning pipeline. Log
// records go to logOut.
func newApp(logOut io.Writer) (*app, error) {
	if err := config.ReadFile(v, cfgFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logOut, cfg.LogLevel)

	lister, err := cfg.Lister()
	if err != nil {
		return nil, err
	}
	detector := provision.NewDetector(lister, logger, cfg.Markers...)

	var resolver provision.PortResolver = detector
	if cfg.Port != "" {
		logger.Info("using configured port, detection disabled", "port", cfg.Port)
		resolver = provision.FixedPort(cfg.Port)
	}

	opener := provision.SerialOpener(cfg.SerialOptions()...)
	sender := provision.NewTransmitter(opener, cfg.WriteTimeout, logger)

	return &app{
		ctx:        context.Background(),
		cfg:        cfg,
		logger:     logger,
		detector:   detector,
		resolver:   resolver,
		controller: provision.NewController(resolver, sender, logger),
	}, nil
}
