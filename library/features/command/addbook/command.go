package addbook

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const (
	commandType = "AddBook"

	// DefaultTotalCopies is used when the caller does not say how many copies the library owns.
	DefaultTotalCopies = 1
)

// Command represents the intent to add a book to the catalog.
type Command struct {
	BookID      uuid.UUID
	Details     core.BookDetails
	TotalCopies int
	OccurredAt  core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

// BuildCommand trims the ISBN so it can serve as a unique key.
func BuildCommand(bookID uuid.UUID, details core.BookDetails, totalCopies int, occurredAt time.Time) Command {
	details.ISBN = strings.TrimSpace(details.ISBN)

	return Command{
		BookID:      bookID,
		Details:     details,
		TotalCopies: totalCopies,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
