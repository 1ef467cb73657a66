package credentials_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/query/credentials"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

//nolint:funlen
func Test_Project(t *testing.T) {
	now := time.Now()
	studentID := helper.GivenUniqueID(t).String()
	adminID := helper.GivenUniqueID(t).String()

	renamed := core.StudentProfile{
		Email:        "jane.doe@example.com",
		PersonName:   core.PersonName{FirstName: "Jane", LastName: "Doe"},
		PasswordHash: "new-hash",
	}

	history := core.DomainEvents{
		helper.GivenStudentRegistered(studentID, "jane@example.com", now),
		core.BuildAdminRegistered(adminID, "admin@example.com", core.PersonName{FirstName: "Ada"}, "librarian", "admin-hash", now),
	}

	t.Run("student", func(t *testing.T) {
		// act
		result, err := credentials.Project(history, credentials.BuildQuery(credentials.AccountStudent, " Jane@Example.com "))

		// assert
		require.NoError(t, err)
		assert.Equal(t, studentID, result.AccountID)
		assert.Equal(t, "student", result.Role)
		assert.Equal(t, "hash", result.PasswordHash)
	})

	t.Run("admin", func(t *testing.T) {
		// act
		result, err := credentials.Project(history, credentials.BuildQuery(credentials.AccountAdmin, "admin@example.com"))

		// assert
		require.NoError(t, err)
		assert.Equal(t, adminID, result.AccountID)
		assert.Equal(t, "librarian", result.Role)
	})

	t.Run("kinds are separate", func(t *testing.T) {
		// act
		_, err := credentials.Project(history, credentials.BuildQuery(credentials.AccountAdmin, "jane@example.com"))

		// assert
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("changed email", func(t *testing.T) {
		// arrange
		changed := append(history[:1:1], core.BuildStudentDetailsUpdated(studentID, renamed, "jane@example.com", now))

		// act
		_, oldErr := credentials.Project(changed, credentials.BuildQuery(credentials.AccountStudent, "jane@example.com"))
		result, err := credentials.Project(changed, credentials.BuildQuery(credentials.AccountStudent, "jane.doe@example.com"))

		// assert
		assert.ErrorIs(t, oldErr, core.ErrNotFound)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", result.PasswordHash)
	})

	t.Run("changed email without the registration in the history", func(t *testing.T) {
		// arrange
		onlyUpdate := core.DomainEvents{core.BuildStudentDetailsUpdated(studentID, renamed, "jane@example.com", now)}

		// act
		result, err := credentials.Project(onlyUpdate, credentials.BuildQuery(credentials.AccountStudent, "jane.doe@example.com"))

		// assert
		require.NoError(t, err)
		assert.Equal(t, studentID, result.AccountID)
		assert.Equal(t, "jane.doe@example.com", result.Email)
		assert.Equal(t, "new-hash", result.PasswordHash)
	})

	t.Run("removed student", func(t *testing.T) {
		// arrange
		removed := append(history[:1:1], core.BuildStudentRemoved(studentID, "jane@example.com", now))

		// act
		_, err := credentials.Project(removed, credentials.BuildQuery(credentials.AccountStudent, "jane@example.com"))

		// assert
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}
