package studentloans_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/query/studentloans"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// arrange
	now := time.Now()
	bookID := helper.GivenUniqueID(t).String()
	studentID := helper.GivenUniqueID(t)
	otherStudentID := helper.GivenUniqueID(t).String()
	adminID := helper.GivenUniqueID(t).String()

	first := core.LoanRef{LoanID: helper.GivenUniqueID(t).String(), BookID: bookID, StudentID: studentID.String()}
	second := core.LoanRef{LoanID: helper.GivenUniqueID(t).String(), BookID: bookID, StudentID: studentID.String()}
	foreign := core.LoanRef{LoanID: helper.GivenUniqueID(t).String(), BookID: bookID, StudentID: otherStudentID}

	es := helper.GivenEventStoreWith(t,
		helper.GivenBookAdded(bookID, "978-0-13-468599-1", 3, now),
		helper.GivenStudentRegistered(studentID.String(), "jane@example.com", now),
		helper.GivenStudentRegistered(otherStudentID, "john@example.com", now),
		core.BuildLoanRequested(first, now),
		core.BuildLoanApproved(first, adminID, now.Add(-time.Hour), now.Add(-2*time.Hour)),
		core.BuildLoanRequested(foreign, now),
		core.BuildLoanRequested(second, now),
	)

	handler := studentloans.NewQueryHandler(es)

	// act
	result, err := handler.Handle(context.Background(), studentloans.BuildQuery(studentID, now))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, second.LoanID, result.Loans[0].LoanID)
	assert.Equal(t, "pending", result.Loans[0].Status)
	assert.Equal(t, first.LoanID, result.Loans[1].LoanID)
	assert.Equal(t, "overdue", result.Loans[1].Status)
	assert.Equal(t, "Learning Domain-Driven Design", result.Loans[1].BookTitle)
}

func Test_QueryHandler_Handle_UnknownStudent(t *testing.T) {
	// arrange
	handler := studentloans.NewQueryHandler(helper.GivenEventStoreWith(t))

	// act
	_, err := handler.Handle(context.Background(), studentloans.BuildQuery(helper.GivenUniqueID(t), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}
