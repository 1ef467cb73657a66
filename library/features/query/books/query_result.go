package books

import (
	"time"

	"github.com/AntonStoeckl/school-library-go/eventstore"
)

type BookView struct {
	BookID          string    `json:"id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Publisher       string    `json:"publisher,omitempty"`
	PublicationYear uint      `json:"publication_year,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	CategoryName    string    `json:"category,omitempty"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	AddedAt         time.Time `json:"added_at"`
}

type Books struct {
	Books          []BookView                       `json:"books"`
	Count          int                              `json:"count"`
	SequenceNumber eventstore.MaxSequenceNumberUint `json:"-"`
}
