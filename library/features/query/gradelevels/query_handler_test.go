package gradelevels_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/features/query/gradelevels"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
)

func Test_QueryHandler_Handle(t *testing.T) {
	// arrange
	now := time.Now()
	es := helper.GivenEventStoreWith(t,
		core.BuildGradeLevelAdded("grade-7", "Grade 7", now),
		core.BuildCategoryAdded(helper.GivenUniqueID(t).String(), "Science", now),
		core.BuildGradeLevelAdded("grade-8", "Grade 8", now),
	)

	// act
	result, err := gradelevels.NewQueryHandler(es).Handle(context.Background(), gradelevels.BuildQuery())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "Grade 8", result.GradeLevels[1].Name)
}
