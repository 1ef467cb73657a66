package removestudent

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "RemoveStudent"

type Command struct {
	StudentID  uuid.UUID
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(studentID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		StudentID:  studentID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
