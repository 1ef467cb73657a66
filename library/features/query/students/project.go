package students

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

// Project lists registered students that were not removed, in registration order.
func Project(history core.DomainEvents, _ Query, maxSequence eventstore.MaxSequenceNumberUint) Students {
	gradeLevels := make(map[string]string)
	for _, gradeLevel := range core.ProjectGradeLevels(history) {
		gradeLevels[gradeLevel.GradeLevelID] = gradeLevel.Name
	}

	views := make([]StudentView, 0)

	for _, student := range core.ProjectStudents(history) {
		if !student.Exists {
			continue
		}

		views = append(views, StudentView{
			StudentID:        student.StudentID,
			Email:            student.Email,
			FirstName:        student.FirstName,
			MiddleName:       student.MiddleName,
			LastName:         student.LastName,
			GradeLevelID:     student.GradeLevelID,
			GradeLevel:       gradeLevels[student.GradeLevelID],
			MembershipActive: student.Active,
			RegisteredAt:     student.RegisteredAt,
		})
	}

	return Students{Students: views, Count: len(views), SequenceNumber: maxSequence}
}

func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.StudentRegisteredEventType,
			core.StudentDetailsUpdatedEventType,
			core.StudentRemovedEventType,
			core.MembershipActivatedEventType,
			core.MembershipDeactivatedEventType,
			core.GradeLevelAddedEventType,
		).
		Finalize()
}
