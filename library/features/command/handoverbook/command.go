package handoverbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "HandOverBook"

type Command struct {
	LoanID     uuid.UUID
	AdminID    uuid.UUID
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(loanID uuid.UUID, adminID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		AdminID:    adminID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
