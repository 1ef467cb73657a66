package requestloan_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/command/requestloan"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_CommandHandler_Handle_UnavailableRequestAppendsOnlyTheFailure(t *testing.T) {
	// arrange
	ctx := context.Background()
	f := givenFixture(t)
	es := helper.GivenEventStoreWith(t, f.bookWithCopies(0), f.student())
	handler := requestloan.NewCommandHandler(es)

	// act
	_, err := handler.Handle(ctx, f.command())

	// assert
	require.ErrorIs(t, err, core.ErrUnavailable)

	history := helper.AllDomainEvents(t, es)
	require.Len(t, history, 3)
	assert.Equal(t, "RequestingLoanFailed", history[2].EventType())
	assert.Empty(t, core.ProjectLoans(history), "no loan is created")
}

func Test_CommandHandler_Handle_ConcurrentRequestsForLastCopy(t *testing.T) {
	// arrange
	ctx := context.Background()
	f := givenFixture(t)
	es := helper.GivenEventStoreWith(t, f.bookWithCopies(1))
	handler := requestloan.NewCommandHandler(es, requestloan.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)))

	const students = 8

	commands := make([]requestloan.Command, 0, students)
	for range students {
		studentID := helper.GivenUniqueID(t)
		helper.GivenEventsAppended(t, es, helper.GivenStudentRegistered(studentID.String(), studentID.String()+"@school.test", f.now))
		commands = append(commands, requestloan.BuildCommand(helper.GivenUniqueID(t), f.bookID, studentID, f.now))
	}

	errs := make([]error, students)

	var wg sync.WaitGroup

	// act
	for i, command := range commands {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = handler.Handle(ctx, command)
		}()
	}

	wg.Wait()

	// assert
	succeeded := 0

	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}

		assert.ErrorIs(t, err, core.ErrUnavailable)
	}

	assert.Equal(t, 1, succeeded)

	inventory := core.ProjectBookInventory(helper.AllDomainEvents(t, es), f.bookID.String())
	assert.Equal(t, 0, inventory.AvailableCopies)
	assert.True(t, inventory.Valid())
}
