package addgradelevel_test

import (
	"testing"
	"time"

	"github.com/AntonStoeckl/school-library-go/library/features/command/addgradelevel"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide(t *testing.T) {
	gradeLevelID := helper.GivenUniqueID(t)
	now := time.Now()
	command := addgradelevel.BuildCommand(gradeLevelID, "Grade 7", now)

	t.Run("new name", func(t *testing.T) {
		helper.AssertSuccessDecision(t, addgradelevel.Decide(nil, command), core.GradeLevelAddedEventType)
	})

	t.Run("same id again", func(t *testing.T) {
		history := core.DomainEvents{core.BuildGradeLevelAdded(gradeLevelID.String(), "Grade 7", now)}

		helper.AssertIdempotentDecision(t, addgradelevel.Decide(history, command))
	})

	t.Run("name held by another grade level", func(t *testing.T) {
		history := core.DomainEvents{core.BuildGradeLevelAdded(helper.GivenUniqueID(t).String(), "Grade 7", now)}

		result := addgradelevel.Decide(history, command)

		helper.AssertErrorDecision(t, result, "AddingGradeLevelFailed", core.ErrConflict, core.ReasonGradeLevelNameTaken)
	})

	t.Run("blank name", func(t *testing.T) {
		result := addgradelevel.Decide(nil, addgradelevel.BuildCommand(helper.GivenUniqueID(t), "\t ", now))

		helper.AssertErrorDecision(t, result, "AddingGradeLevelFailed", core.ErrInvalidArgument, core.ReasonGradeLevelNameRequired)
	})
}
