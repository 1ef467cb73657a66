package registeradmin

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const (
	commandType = "RegisterAdmin"

	DefaultRole = "librarian"
)

type Command struct {
	AdminID      uuid.UUID
	Email        core.EmailString
	Name         core.PersonName
	Role         string
	PasswordHash string
	OccurredAt   core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand normalizes the email and falls back to DefaultRole.
func BuildCommand(
	adminID uuid.UUID,
	email string,
	name core.PersonName,
	role string,
	passwordHash string,
	occurredAt time.Time,
) Command {

	if role == "" {
		role = DefaultRole
	}

	return Command{
		AdminID:      adminID,
		Email:        core.NormalizeEmail(email),
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
