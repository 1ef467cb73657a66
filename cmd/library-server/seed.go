package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/features/command/registeradmin"
	"github.com/AntonStoeckl/school-library-go/library/gateway"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell/config"
)

// adminNamespace derives a stable admin id from the email, so restarts find the seeded admin
// and the registration is idempotent.
var adminNamespace = uuid.MustParse("6f1d8a52-3c1b-4f0e-9d7a-2b4c5e6f7a81")

func seedDefaultAdmin(ctx context.Context, handlers gateway.Handlers, cfg config.DefaultAdmin, logger *slog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Email))
	if email == "" {
		return nil
	}

	hash, err := gateway.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	adminID := uuid.NewSHA1(adminNamespace, []byte(email))

	result, err := handlers.RegisterAdmin.Handle(
		eventstore.WithStrongConsistency(ctx),
		registeradmin.BuildCommand(
			adminID,
			email,
			core.PersonName{FirstName: cfg.FirstName, LastName: cfg.LastName},
			registeradmin.DefaultRole,
			hash,
			time.Now(),
		),
	)
	if errors.Is(err, core.ErrConflict) {
		logger.Info("default admin email is held by another admin, skipping seed", "email", email)
		return nil
	}

	if err != nil {
		return err
	}

	if !result.Idempotent {
		logger.Info("default admin created", "email", email, "admin_id", adminID.String())
	}

	return nil
}
