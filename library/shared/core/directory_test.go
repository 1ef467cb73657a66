package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

//nolint:funlen
func Test_ISBNOwner(t *testing.T) {
	now := time.Now()
	otherBookID := "0199a1b2-0000-7000-8000-000000000002"
	isbn := "978-0-13-468599-1"
	details := core.BookDetails{ISBN: "978-1-4919-4603-6", Title: "Concurrency in Go"}

	testCases := []struct {
		name          string
		history       core.DomainEvents
		expectedOwner string
	}{
		{
			name:          "nobody holds an unknown isbn",
			history:       core.DomainEvents{},
			expectedOwner: "",
		},
		{
			name:          "added book holds its isbn",
			history:       core.DomainEvents{givenBookWithCopies(1, now)},
			expectedOwner: bookID,
		},
		{
			name: "update to another isbn releases the old one",
			history: core.DomainEvents{
				givenBookWithCopies(1, now),
				core.BuildBookDetailsUpdated(bookID, details, isbn, now),
			},
			expectedOwner: "",
		},
		{
			name: "removed book releases its isbn",
			history: core.DomainEvents{
				givenBookWithCopies(1, now),
				core.BuildBookRemovedFromCatalog(bookID, isbn, now),
			},
			expectedOwner: "",
		},
		{
			name: "isbn released by one book can be taken by another",
			history: core.DomainEvents{
				givenBookWithCopies(1, now),
				core.BuildBookDetailsUpdated(bookID, details, isbn, now),
				core.BuildBookAddedToCatalog(otherBookID, core.BookDetails{ISBN: isbn}, 1, now),
			},
			expectedOwner: otherBookID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedOwner, core.ISBNOwner(tc.history, isbn))
		})
	}
}

func Test_StudentEmailOwner_FollowsRenames(t *testing.T) {
	// arrange
	now := time.Now()
	studentID := "0199a1b2-0000-7000-8000-0000000000aa"
	profile := core.StudentProfile{Email: "jane@school.test"}
	renamed := core.StudentProfile{Email: "jane.doe@school.test"}

	history := core.DomainEvents{
		core.BuildStudentRegistered(studentID, profile, now),
		core.BuildStudentDetailsUpdated(studentID, renamed, profile.Email, now),
	}

	// act & assert
	assert.Empty(t, core.StudentEmailOwner(history, profile.Email))
	assert.Equal(t, studentID, core.StudentEmailOwner(history, renamed.Email))
	assert.Empty(t, core.AdminEmailOwner(history, renamed.Email))
}

func Test_ProjectStudent_Membership(t *testing.T) {
	// arrange
	now := time.Now()
	studentID := "0199a1b2-0000-7000-8000-0000000000aa"
	adminID := "0199a1b2-0000-7000-8000-0000000000ff"

	history := core.DomainEvents{
		core.BuildStudentRegistered(studentID, core.StudentProfile{Email: "jane@school.test"}, now),
		core.BuildMembershipDeactivated(studentID, adminID, now),
	}

	// act
	deactivated := core.ProjectStudent(history, studentID)
	reactivated := core.ProjectStudent(append(history, core.BuildMembershipActivated(studentID, adminID, now)), studentID)
	removed := core.ProjectStudent(append(history, core.BuildStudentRemoved(studentID, "jane@school.test", now)), studentID)

	// assert
	assert.True(t, deactivated.Exists)
	assert.False(t, deactivated.Active)
	assert.True(t, reactivated.Active)
	assert.False(t, removed.Exists)
	assert.True(t, removed.Removed)
}

func Test_ProjectCategory(t *testing.T) {
	// arrange
	now := time.Now()
	categoryID := "0199a1b2-0000-7000-8000-0000000000c1"

	history := core.DomainEvents{
		core.BuildCategoryAdded(categoryID, "Science", now),
		core.BuildCategoryRenamed(categoryID, "Natural Science", "Science", now),
	}

	// act
	category := core.ProjectCategory(history, categoryID)

	// assert
	assert.True(t, category.Exists)
	assert.Equal(t, "Natural Science", category.Name)
	assert.Equal(t, categoryID, core.CategoryNameOwner(history, "Natural Science"))
	assert.Empty(t, core.CategoryNameOwner(history, "Science"))
}

func Test_CountOpenLoans(t *testing.T) {
	// arrange
	now := time.Now()
	open := core.LoanRef{LoanID: "loan-1", BookID: bookID, StudentID: "student-1"}
	closed := core.LoanRef{LoanID: "loan-2", BookID: bookID, StudentID: "student-1"}

	history := core.DomainEvents{
		core.BuildLoanRequested(open, now),
		core.BuildLoanRequested(closed, now),
		core.BuildLoanRejected(closed, "admin", now),
	}

	// act
	count := core.CountOpenLoans(history, func(l core.LoanRecord) bool { return l.StudentID == "student-1" })

	// assert
	assert.Equal(t, 1, count)
}

func Test_NormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@school.example", core.NormalizeEmail("  Jane.Doe@School.Example\t"))
	assert.Empty(t, core.NormalizeEmail("   "))
}
