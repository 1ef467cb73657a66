package categories

import (
	"github.com/AntonStoeckl/school-library-go/eventstore"
)

type CategoryView struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
}

type Categories struct {
	Categories     []CategoryView                   `json:"categories"`
	Count          int                              `json:"count"`
	SequenceNumber eventstore.MaxSequenceNumberUint `json:"-"`
}
