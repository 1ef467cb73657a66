package categories

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

func Project(history core.DomainEvents, _ Query, maxSequence eventstore.MaxSequenceNumberUint) Categories {
	records := core.ProjectCategories(history)
	views := make([]CategoryView, 0, len(records))

	for _, record := range records {
		views = append(views, CategoryView{CategoryID: record.CategoryID, Name: record.Name})
	}

	return Categories{Categories: views, Count: len(views), SequenceNumber: maxSequence}
}

func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.CategoryAddedEventType,
			core.CategoryRenamedEventType,
			core.CategoryRemovedEventType,
		).
		Finalize()
}
