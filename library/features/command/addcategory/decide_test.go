package addcategory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/addcategory"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide(t *testing.T) {
	categoryID := helper.GivenUniqueID(t)
	now := time.Now()
	command := addcategory.BuildCommand(categoryID, " Science ", now)

	t.Run("new name", func(t *testing.T) {
		events := helper.AssertSuccessDecision(t, addcategory.Decide(nil, command), core.CategoryAddedEventType)
		assert.Equal(t, "Science", events[0].(core.CategoryAdded).Name)
	})

	t.Run("same id again", func(t *testing.T) {
		history := core.DomainEvents{core.BuildCategoryAdded(categoryID.String(), "Science", now)}

		helper.AssertIdempotentDecision(t, addcategory.Decide(history, command))
	})

	t.Run("name held by another category", func(t *testing.T) {
		history := core.DomainEvents{core.BuildCategoryAdded(helper.GivenUniqueID(t).String(), "Science", now)}

		result := addcategory.Decide(history, command)

		helper.AssertErrorDecision(t, result, "AddingCategoryFailed", core.ErrConflict, core.ReasonCategoryNameTaken)
	})

	t.Run("blank name", func(t *testing.T) {
		blank := addcategory.BuildCommand(helper.GivenUniqueID(t), "   ", now)
		history := core.DomainEvents{core.BuildCategoryAdded(helper.GivenUniqueID(t).String(), "", now)}

		result := addcategory.Decide(history, blank)

		helper.AssertErrorDecision(t, result, "AddingCategoryFailed", core.ErrInvalidArgument, core.ReasonCategoryNameRequired)
	})

	t.Run("name released by a rename", func(t *testing.T) {
		otherID := helper.GivenUniqueID(t).String()
		history := core.DomainEvents{
			core.BuildCategoryAdded(otherID, "Science", now),
			core.BuildCategoryRenamed(otherID, "Natural Science", "Science", now),
		}

		helper.AssertSuccessDecision(t, addcategory.Decide(history, command), core.CategoryAddedEventType)
	})
}
