package registerstudent

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "RegisterStudent"

// Command carries an already hashed password. Hashing belongs to the gateway.
type Command struct {
	StudentID  uuid.UUID
	Profile    core.StudentProfile
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(studentID uuid.UUID, profile core.StudentProfile, occurredAt time.Time) Command {
	profile.Email = core.NormalizeEmail(profile.Email)

	return Command{
		StudentID:  studentID,
		Profile:    profile,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
