package removecategory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/removecategory"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide(t *testing.T) {
	categoryID := helper.GivenUniqueID(t)
	now := time.Now()
	added := core.BuildCategoryAdded(categoryID.String(), "Science", now)

	t.Run("existing category", func(t *testing.T) {
		result := removecategory.Decide(core.DomainEvents{added}, removecategory.BuildCommand(categoryID, now))

		events := helper.AssertSuccessDecision(t, result, core.CategoryRemovedEventType)
		assert.Equal(t, "Science", events[0].(core.CategoryRemoved).Name)
	})

	t.Run("removed twice", func(t *testing.T) {
		history := core.DomainEvents{added, core.BuildCategoryRemoved(categoryID.String(), "Science", now)}

		result := removecategory.Decide(history, removecategory.BuildCommand(categoryID, now))

		helper.AssertErrorDecision(t, result, "RemovingCategoryFailed", core.ErrNotFound, core.ReasonCategoryNotFound)
	})
}
