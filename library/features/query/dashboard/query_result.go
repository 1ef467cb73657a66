package dashboard

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
)

type Dashboard struct {
	Books             int                              `json:"books"`
	TotalCopies       int                              `json:"total_copies"`
	AvailableCopies   int                              `json:"available_copies"`
	Categories        int                              `json:"categories"`
	Students          int                              `json:"students"`
	ActiveMemberships int                              `json:"active_memberships"`
	LoansByStatus     map[string]int                   `json:"loans_by_status"`
	SequenceNumber    eventstore.MaxSequenceNumberUint `json:"-"`
}
