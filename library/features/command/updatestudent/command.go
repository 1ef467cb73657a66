package updatestudent

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "UpdateStudent"

// Changes holds the fields to update. Nil fields keep their current value.
type Changes struct {
	Email        *string
	FirstName    *string
	MiddleName   *string
	LastName     *string
	GradeLevelID *string
	PasswordHash *string
}

type Command struct {
	StudentID  uuid.UUID
	Changes    Changes
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(studentID uuid.UUID, changes Changes, occurredAt time.Time) Command {
	if changes.Email != nil {
		email := core.NormalizeEmail(*changes.Email)
		changes.Email = &email
	}

	return Command{
		StudentID:  studentID,
		Changes:    changes,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// ApplyTo returns profile with the changes applied.
func (c Changes) ApplyTo(profile core.StudentProfile) core.StudentProfile {
	set(&profile.Email, c.Email)
	set(&profile.FirstName, c.FirstName)
	set(&profile.MiddleName, c.MiddleName)
	set(&profile.LastName, c.LastName)
	set(&profile.GradeLevelID, c.GradeLevelID)
	set(&profile.PasswordHash, c.PasswordHash)

	return profile
}

func set(field *string, value *string) {
	if value != nil {
		*field = *value
	}
}
