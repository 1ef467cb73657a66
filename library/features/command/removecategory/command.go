package removecategory

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "RemoveCategory"

type Command struct {
	CategoryID uuid.UUID
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(categoryID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		CategoryID: categoryID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
