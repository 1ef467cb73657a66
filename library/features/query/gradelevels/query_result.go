package gradelevels

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
)

type GradeLevelView struct {
	GradeLevelID string `json:"id"`
	Name         string `json:"name"`
}

type GradeLevels struct {
	GradeLevels    []GradeLevelView                 `json:"grade_levels"`
	Count          int                              `json:"count"`
	SequenceNumber eventstore.MaxSequenceNumberUint `json:"-"`
}
