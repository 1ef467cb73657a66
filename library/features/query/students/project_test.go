package students_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/query/students"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Project(t *testing.T) {
	// arrange
	now := time.Now()
	gradeLevelID := helper.GivenUniqueID(t).String()
	janeID := helper.GivenUniqueID(t).String()
	johnID := helper.GivenUniqueID(t).String()
	removedID := helper.GivenUniqueID(t).String()

	jane := helper.GivenStudentRegistered(janeID, "jane@example.com", now)
	jane.GradeLevelID = gradeLevelID

	history := core.DomainEvents{
		core.BuildGradeLevelAdded(gradeLevelID, "Grade 7", now),
		jane,
		helper.GivenStudentRegistered(johnID, "john@example.com", now),
		helper.GivenStudentRegistered(removedID, "gone@example.com", now),
		core.BuildMembershipDeactivated(johnID, helper.GivenUniqueID(t).String(), now),
		core.BuildStudentRemoved(removedID, "gone@example.com", now),
	}

	// act
	result := students.Project(history, students.BuildQuery(), 6)

	// assert
	require.Equal(t, 2, result.Count)
	assert.Equal(t, janeID, result.Students[0].StudentID)
	assert.Equal(t, "Grade 7", result.Students[0].GradeLevel)
	assert.True(t, result.Students[0].MembershipActive)
	assert.Equal(t, johnID, result.Students[1].StudentID)
	assert.False(t, result.Students[1].MembershipActive)
}
