package changemembership

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const (
	commandTypeActivate   = "ActivateMembership"
	commandTypeDeactivate = "DeactivateMembership"
)

type Command struct {
	StudentID  uuid.UUID
	AdminID    uuid.UUID
	Activate   bool
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	if c.Activate {
		return commandTypeActivate
	}

	return commandTypeDeactivate
}

func BuildCommand(studentID uuid.UUID, adminID uuid.UUID, activate bool, occurredAt time.Time) Command {
	return Command{
		StudentID:  studentID,
		AdminID:    adminID,
		Activate:   activate,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
