package changemembership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/changemembership"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide(t *testing.T) {
	studentID := helper.GivenUniqueID(t)
	adminID := helper.GivenUniqueID(t)
	now := time.Now()
	active := core.DomainEvents{helper.GivenStudentRegistered(studentID.String(), "jane@school.test", now)}
	inactive := append(active, core.BuildMembershipDeactivated(studentID.String(), adminID.String(), now))

	t.Run("deactivate an active membership", func(t *testing.T) {
		command := changemembership.BuildCommand(studentID, adminID, false, now)

		result := changemembership.Decide(active, command)

		helper.AssertSuccessDecision(t, result, core.MembershipDeactivatedEventType)
		assert.Equal(t, "DeactivateMembership", command.CommandType())
	})

	t.Run("activate an inactive membership", func(t *testing.T) {
		result := changemembership.Decide(inactive, changemembership.BuildCommand(studentID, adminID, true, now))

		helper.AssertSuccessDecision(t, result, core.MembershipActivatedEventType)
	})

	t.Run("activating an active membership is a no-op", func(t *testing.T) {
		result := changemembership.Decide(active, changemembership.BuildCommand(studentID, adminID, true, now))

		helper.AssertIdempotentDecision(t, result)
	})

	t.Run("unknown student", func(t *testing.T) {
		result := changemembership.Decide(nil, changemembership.BuildCommand(studentID, adminID, true, now))

		helper.AssertErrorDecision(t, result, "ChangingMembershipFailed", core.ErrNotFound, core.ReasonStudentNotFound)
	})
}
