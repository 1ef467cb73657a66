package categories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/query/categories"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// arrange
	now := time.Now()
	scienceID := helper.GivenUniqueID(t).String()
	historyID := helper.GivenUniqueID(t).String()
	es := helper.GivenEventStoreWith(t,
		core.BuildCategoryAdded(scienceID, "Science", now),
		core.BuildCategoryAdded(historyID, "History", now),
		core.BuildCategoryRenamed(scienceID, "Natural Science", "Science", now),
		core.BuildCategoryRemoved(historyID, "History", now),
	)

	// act
	result, err := categories.NewQueryHandler(es).Handle(context.Background(), categories.BuildQuery())

	// assert
	require.NoError(t, err)
	assert.Equal(t, []categories.CategoryView{{CategoryID: scienceID, Name: "Natural Science"}}, result.Categories)
	assert.Equal(t, uint(4), result.SequenceNumber)
}
