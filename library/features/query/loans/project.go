package loans

import (
	"strings"
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// Project lists loans in request order with their effective status at query.Now.
//
//	INCLUDES: loans whose effective status equals query.Status, or all loans if it is empty
//
// Titles and names come from the latest catalog and student events, they are kept after a removal.
func Project(history core.DomainEvents, query Query, maxSequence eventstore.MaxSequenceNumberUint) Loans {
	titles := make(map[string]string)
	names := make(map[string]string)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			titles[e.BookID] = e.Title
		case core.BookDetailsUpdated:
			titles[e.BookID] = e.Title
		case core.StudentRegistered:
			names[e.StudentID] = fullName(e.PersonName)
		case core.StudentDetailsUpdated:
			names[e.StudentID] = fullName(e.PersonName)
		}
	}

	views := make([]LoanView, 0)

	for _, loan := range core.ProjectLoans(history) {
		status := loan.EffectiveStatus(query.Now)
		if query.Status != core.LoanStatusNone && status != query.Status {
			continue
		}

		views = append(views, LoanView{
			LoanID:      loan.LoanID,
			BookID:      loan.BookID,
			BookTitle:   titles[loan.BookID],
			StudentID:   loan.StudentID,
			StudentName: names[loan.StudentID],
			Status:      status.String(),
			RequestedAt: loan.RequestedAt,
			ApprovedAt:  optional(loan.ApprovedAt),
			DueDate:     optional(loan.DueDate),
			ReturnedAt:  optional(loan.ReturnedAt),
			AdminID:     loan.AdminID,
		})
	}

	return Loans{Loans: views, Count: len(views), SequenceNumber: maxSequence}
}

func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.LoanRequestedEventType,
			core.LoanApprovedEventType,
			core.LoanRejectedEventType,
			core.BookHandedOverEventType,
			core.LoanReturnedEventType,
			core.BookAddedToCatalogEventType,
			core.BookDetailsUpdatedEventType,
			core.StudentRegisteredEventType,
			core.StudentDetailsUpdatedEventType,
		).
		Finalize()
}

func fullName(name core.PersonName) string {
	return strings.Join(strings.Fields(name.FirstName+" "+name.MiddleName+" "+name.LastName), " ")
}

func optional(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
