package students

import (
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

type StudentView struct {
	StudentID        string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	MiddleName       string    `json:"middle_name,omitempty"`
	LastName         string    `json:"last_name"`
	GradeLevelID     string    `json:"grade_level_id,omitempty"`
	GradeLevel       string    `json:"grade_level,omitempty"`
	MembershipActive bool      `json:"membership_active"`
	RegisteredAt     time.Time `json:"registered_at"`
}

type Students struct {
	Students       []StudentView                    `json:"students"`
	Count          int                              `json:"count"`
	SequenceNumber eventstore.MaxSequenceNumberUint `json:"-"`
}
