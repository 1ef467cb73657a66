package dashboard

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

var reportedStatuses = []core.LoanStatus{
	core.LoanStatusPending,
	core.LoanStatusApproved,
	core.LoanStatusBorrowed,
	core.LoanStatusOverdue,
	core.LoanStatusRejected,
	core.LoanStatusReturned,
}

// Project counts what is in the library now. Every status is reported, unused ones with 0.
func Project(history core.DomainEvents, query Query, maxSequence eventstore.MaxSequenceNumberUint) Dashboard {
	result := Dashboard{
		Categories:     len(core.ProjectCategories(history)),
		LoansByStatus:  make(map[string]int, len(reportedStatuses)),
		SequenceNumber: maxSequence,
	}

	for _, book := range core.ProjectCatalog(history) {
		if book.Exists {
			result.Books++
			result.TotalCopies += book.TotalCopies
			result.AvailableCopies += book.AvailableCopies
		}
	}

	for _, student := range core.ProjectStudents(history) {
		if !student.Exists {
			continue
		}

		result.Students++
		if student.Active {
			result.ActiveMemberships++
		}
	}

	for _, status := range reportedStatuses {
		result.LoansByStatus[status.String()] = 0
	}

	for _, loan := range core.ProjectLoans(history) {
		result.LoansByStatus[loan.EffectiveStatus(query.Now).String()]++
	}

	return result
}

func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BookDetailsUpdatedEventType,
			core.BookRemovedFromCatalogEventType,
			core.BookCopiesResizedEventType,
			core.BookCopyReservedEventType,
			core.BookCopyReleasedEventType,
			core.CategoryAddedEventType,
			core.CategoryRenamedEventType,
			core.CategoryRemovedEventType,
			core.StudentRegisteredEventType,
			core.StudentRemovedEventType,
			core.MembershipActivatedEventType,
			core.MembershipDeactivatedEventType,
			core.LoanRequestedEventType,
			core.LoanApprovedEventType,
			core.LoanRejectedEventType,
			core.BookHandedOverEventType,
			core.LoanReturnedEventType,
		).
		Finalize()
}
