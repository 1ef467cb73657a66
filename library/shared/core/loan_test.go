package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

func Test_CanTransition(t *testing.T) {
	allowed := map[[2]core.LoanStatus]bool{
		{core.LoanStatusNone, core.LoanStatusPending}:      true,
		{core.LoanStatusPending, core.LoanStatusApproved}:  true,
		{core.LoanStatusPending, core.LoanStatusRejected}:  true,
		{core.LoanStatusApproved, core.LoanStatusBorrowed}: true,
		{core.LoanStatusApproved, core.LoanStatusReturned}: true,
		{core.LoanStatusBorrowed, core.LoanStatusReturned}: true,
	}

	all := []core.LoanStatus{
		core.LoanStatusNone,
		core.LoanStatusPending,
		core.LoanStatusApproved,
		core.LoanStatusBorrowed,
		core.LoanStatusRejected,
		core.LoanStatusReturned,
		core.LoanStatusOverdue,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]core.LoanStatus{from, to}], core.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func Test_ProjectLoan_Lifecycle(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ref := core.LoanRef{LoanID: "loan-1", BookID: bookID, StudentID: "student-1"}
	due := now.Add(14 * 24 * time.Hour)

	history := core.DomainEvents{
		core.BuildLoanRequested(ref, now),
		core.BuildLoanRequested(core.LoanRef{LoanID: "loan-2", BookID: bookID, StudentID: "student-2"}, now),
		core.BuildLoanApproved(ref, "admin-1", due, now.Add(time.Hour)),
		core.BuildBookHandedOver(ref, "admin-1", now.Add(2*time.Hour)),
	}

	// act
	record := core.ProjectLoan(history, "loan-1")

	// assert
	assert.Equal(t, ref, record.LoanRef)
	assert.Equal(t, core.LoanStatusBorrowed, record.Status)
	assert.Equal(t, due, record.DueDate)
	assert.Equal(t, "admin-1", record.AdminID)
	assert.Equal(t, core.LoanStatusBorrowed, record.EffectiveStatus(now))
	assert.Equal(t, core.LoanStatusOverdue, record.EffectiveStatus(due.Add(time.Second)))

	returned := record.Apply(core.BuildLoanReturned(ref, "admin-1", due.Add(time.Hour)))
	assert.Equal(t, core.LoanStatusReturned, returned.EffectiveStatus(due.Add(time.Hour)))
	assert.False(t, returned.Status.HoldsCopy())
}

func Test_ProjectLoans_KeepsRequestOrder(t *testing.T) {
	// arrange
	now := time.Now()
	first := core.LoanRef{LoanID: "loan-b", BookID: bookID, StudentID: "student-1"}
	second := core.LoanRef{LoanID: "loan-a", BookID: bookID, StudentID: "student-2"}

	history := core.DomainEvents{
		core.BuildLoanRequested(first, now),
		core.BuildLoanRequested(second, now),
		core.BuildLoanRejected(second, "admin-1", now),
		core.BuildLoanApproved(core.LoanRef{LoanID: "orphan"}, "admin-1", now, now),
	}

	// act
	records := core.ProjectLoans(history)

	// assert
	require.Len(t, records, 2)
	assert.Equal(t, "loan-b", records[0].LoanID)
	assert.Equal(t, core.LoanStatusPending, records[0].Status)
	assert.Equal(t, "loan-a", records[1].LoanID)
	assert.Equal(t, core.LoanStatusRejected, records[1].Status)
}

func Test_LoanRecord_Transition(t *testing.T) {
	testCases := []struct {
		name         string
		status       core.LoanStatus
		to           core.LoanStatus
		expectedKind error
	}{
		{name: "request new loan", status: core.LoanStatusNone, to: core.LoanStatusPending},
		{name: "approve missing loan", status: core.LoanStatusNone, to: core.LoanStatusApproved, expectedKind: core.ErrNotFound},
		{name: "approve twice", status: core.LoanStatusApproved, to: core.LoanStatusApproved, expectedKind: core.ErrInvalidState},
		{name: "return twice", status: core.LoanStatusReturned, to: core.LoanStatusReturned, expectedKind: core.ErrInvalidState},
		{name: "return pending", status: core.LoanStatusPending, to: core.LoanStatusReturned, expectedKind: core.ErrInvalidState},
		{name: "reject approved", status: core.LoanStatusApproved, to: core.LoanStatusRejected, expectedKind: core.ErrInvalidState},
		{name: "return borrowed", status: core.LoanStatusBorrowed, to: core.LoanStatusReturned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			record := core.LoanRecord{LoanRef: core.LoanRef{LoanID: "loan-1"}, Status: tc.status}

			// act
			err := record.Transition(tc.to)

			// assert
			if tc.expectedKind == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.expectedKind)
		})
	}
}

func Test_ParseLoanStatus(t *testing.T) {
	status, ok := core.ParseLoanStatus("overdue")
	assert.True(t, ok)
	assert.Equal(t, core.LoanStatusOverdue, status)

	_, ok = core.ParseLoanStatus("lost")
	assert.False(t, ok)
}
