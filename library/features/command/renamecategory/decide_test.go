package renamecategory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/school-library-go/library/features/command/renamecategory"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_Decide(t *testing.T) {
	categoryID := helper.GivenUniqueID(t)
	now := time.Now()
	added := core.BuildCategoryAdded(categoryID.String(), "Science", now)

	t.Run("rename", func(t *testing.T) {
		result := renamecategory.Decide(core.DomainEvents{added}, renamecategory.BuildCommand(categoryID, "Natural Science", now))

		events := helper.AssertSuccessDecision(t, result, core.CategoryRenamedEventType)
		assert.Equal(t, "Science", events[0].(core.CategoryRenamed).PreviousName)
	})

	t.Run("same name", func(t *testing.T) {
		result := renamecategory.Decide(core.DomainEvents{added}, renamecategory.BuildCommand(categoryID, "Science", now))

		helper.AssertIdempotentDecision(t, result)
	})

	t.Run("name held by another category", func(t *testing.T) {
		history := core.DomainEvents{added, core.BuildCategoryAdded(helper.GivenUniqueID(t).String(), "History", now)}

		result := renamecategory.Decide(history, renamecategory.BuildCommand(categoryID, "History", now))

		helper.AssertErrorDecision(t, result, "RenamingCategoryFailed", core.ErrConflict, core.ReasonCategoryNameTaken)
	})

	t.Run("blank name", func(t *testing.T) {
		result := renamecategory.Decide(core.DomainEvents{added}, renamecategory.BuildCommand(categoryID, " ", now))

		helper.AssertErrorDecision(t, result, "RenamingCategoryFailed", core.ErrInvalidArgument, core.ReasonCategoryNameRequired)
	})

	t.Run("unknown category", func(t *testing.T) {
		result := renamecategory.Decide(nil, renamecategory.BuildCommand(categoryID, "History", now))

		helper.AssertErrorDecision(t, result, "RenamingCategoryFailed", core.ErrNotFound, core.ReasonCategoryNotFound)
	})
}
