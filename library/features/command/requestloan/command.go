package requestloan

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const commandType = "RequestLoan"

type Command struct {
	LoanID     uuid.UUID
	BookID     uuid.UUID
	StudentID  uuid.UUID
	OccurredAt core.OccurredAt
}

func (c Command) CommandType() string {
	return commandType
}

func BuildCommand(loanID uuid.UUID, bookID uuid.UUID, studentID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		BookID:     bookID,
		StudentID:  studentID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}

func (c Command) loanRef() core.LoanRef {
	return core.LoanRef{
		LoanID:    c.LoanID.String(),
		BookID:    c.BookID.String(),
		StudentID: c.StudentID.String(),
	}
}
