package addgradelevel

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "AddGradeLevel"

type Command struct {
	GradeLevelID uuid.UUID
	Name         string
	OccurredAt   core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(gradeLevelID uuid.UUID, name string, occurredAt time.Time) Command {
	return Command{
		GradeLevelID: gradeLevelID,
		Name:         strings.TrimSpace(name),
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
