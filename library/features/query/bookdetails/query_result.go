package bookdetails

import (
	"time"
)

type Book struct {
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
	CopiesOnLoan    int       `json:"copies_on_loan"`
	AddedAt         time.Time `json:"added_at"`
}
