package studentloans

import (
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// Project lists the loans of query.StudentID, newest request first.
//
//	ERROR: NotFound if the student was never registered
//
// A removed student still has a history.
func Project(history core.DomainEvents, query Query, maxSequence eventstore.MaxSequenceNumberUint) (StudentLoans, error) {
	studentID := query.StudentID.String()

	if student := core.ProjectStudent(history, studentID); !student.Exists && !student.Removed {
		return StudentLoans{}, core.Violate(core.ErrNotFound, core.ReasonStudentNotFound)
	}

	titles := make(map[string]string)
	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			titles[e.BookID] = e.Title
		case core.BookDetailsUpdated:
			titles[e.BookID] = e.Title
		}
	}

	records := core.ProjectLoans(history)
	views := make([]LoanView, 0, len(records))

	for i := len(records) - 1; i >= 0; i-- {
		loan := records[i]
		if loan.StudentID != studentID {
			continue
		}

		views = append(views, LoanView{
			LoanID:      loan.LoanID,
			BookID:      loan.BookID,
			BookTitle:   titles[loan.BookID],
			Status:      loan.EffectiveStatus(query.Now).String(),
			RequestedAt: loan.RequestedAt,
			ApprovedAt:  optional(loan.ApprovedAt),
			DueDate:     optional(loan.DueDate),
			ReturnedAt:  optional(loan.ReturnedAt),
		})
	}

	return StudentLoans{StudentID: studentID, Loans: views, Count: len(views), SequenceNumber: maxSequence}, nil
}

func BuildEventFilter(query Query) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentRemovedEventType,
			core.LoanRequestedEventType,
			core.LoanApprovedEventType,
			core.LoanRejectedEventType,
			core.BookHandedOverEventType,
			core.LoanReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("StudentID", query.StudentID.String())).
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsUpdatedEventType,
		).
		Finalize()
}

func optional(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
