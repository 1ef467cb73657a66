package addcategory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "AddCategory"

type Command struct {
	CategoryID uuid.UUID
	Name       string
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(categoryID uuid.UUID, name string, occurredAt time.Time) Command {
	return Command{
		CategoryID: categoryID,
		Name:       strings.TrimSpace(name),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
