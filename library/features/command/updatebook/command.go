package updatebook

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "UpdateBook"

// Changes holds the fields to update. Nil fields keep their current value.
type Changes struct {
	ISBN            *string
	Title           *string
	Author          *string
	Publisher       *string
	PublicationYear *uint
	CategoryID      *string
	TotalCopies     *int
}

type Command struct {
	BookID     uuid.UUID
	Changes    Changes
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(bookID uuid.UUID, changes Changes, occurredAt time.Time) Command {
	if changes.ISBN != nil {
		isbn := strings.TrimSpace(*changes.ISBN)
		changes.ISBN = &isbn
	}

	return Command{
		BookID:     bookID,
		Changes:    changes,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

// ApplyTo returns details with the changes applied.
func (c Changes) ApplyTo(details core.BookDetails) core.BookDetails {
	set(&details.ISBN, c.ISBN)
	set(&details.Title, c.Title)
	set(&details.Author, c.Author)
	set(&details.Publisher, c.Publisher)
	set(&details.PublicationYear, c.PublicationYear)
	set(&details.CategoryID, c.CategoryID)

	return details
}

func set[T any](field *T, value *T) {
	if value != nil {
		*field = *value
	}
}

func deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}

	return *value
}
