package gradelevels

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

func Project(history core.DomainEvents, _ Query, maxSequence eventstore.MaxSequenceNumberUint) GradeLevels {
	records := core.ProjectGradeLevels(history)
	views := make([]GradeLevelView, 0, len(records))

	for _, record := range records {
		views = append(views, GradeLevelView{GradeLevelID: record.GradeLevelID, Name: record.Name})
	}

	return GradeLevels{GradeLevels: views, Count: len(views), SequenceNumber: maxSequence}
}

func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.GradeLevelAddedEventType).
		Finalize()
}
