package core

import (
	"time"
)

const (
	ReasonISBNTaken           = "a book with this ISBN already exists"
	ReasonEmailTaken          = "email is already registered"
	ReasonCategoryNameTaken   = "category already exists"
	ReasonGradeLevelNameTaken = "grade level already exists"
	ReasonStudentNotFound     = "student not found"
	ReasonCategoryNotFound    = "category not found"
	ReasonGradeLevelNotFound  = "grade level not found"
	ReasonMembershipInactive  = "library membership is not active"
	ReasonBookHasCopiesOnLoan = "book has copies on loan"
	ReasonStudentHasOpenLoans = "student has open loans"

	ReasonISBNRequired           = "isbn must not be blank"
	ReasonCategoryNameRequired   = "category name must not be blank"
	ReasonGradeLevelNameRequired = "grade level name must not be blank"
	ReasonBookIDReused           = "book id is already used for another isbn"
	ReasonStudentIDReused        = "student id is already used for another email"
)

// keyChange describes how one event moves a unique key. An empty key releases previous.
type keyChange struct {
	owner    string
	key      string
	previous string
}

// ownerOf returns the id currently holding key, or "" if nobody does.
func ownerOf(history DomainEvents, key string, changeOf func(DomainEvent) (keyChange, bool)) string {
	owner := ""

	for _, event := range history {
		c, ok := changeOf(event)
		if !ok {
			continue
		}

		switch {
		case c.key == key:
			owner = c.owner
		case c.previous == key && owner == c.owner:
			owner = ""
		}
	}

	return owner
}

// ISBNOwner returns the id of the catalog entry currently holding isbn.
func ISBNOwner(history DomainEvents, isbn ISBNString) BookIDString {
	return ownerOf(history, isbn, func(event DomainEvent) (keyChange, bool) {
		switch e := event.(type) {
		case BookAddedToCatalog:
			return keyChange{owner: e.BookID, key: e.ISBN}, true
		case BookDetailsUpdated:
			return keyChange{owner: e.BookID, key: e.ISBN, previous: e.PreviousISBN}, true
		case BookRemovedFromCatalog:
			return keyChange{owner: e.BookID, previous: e.ISBN}, true
		}

		return keyChange{}, false
	})
}

// StudentEmailOwner returns the id of the student currently registered with email.
func StudentEmailOwner(history DomainEvents, email EmailString) StudentIDString {
	return ownerOf(history, email, func(event DomainEvent) (keyChange, bool) {
		switch e := event.(type) {
		case StudentRegistered:
			return keyChange{owner: e.StudentID, key: e.Email}, true
		case StudentDetailsUpdated:
			return keyChange{owner: e.StudentID, key: e.Email, previous: e.PreviousEmail}, true
		case StudentRemoved:
			return keyChange{owner: e.StudentID, previous: e.Email}, true
		}

		return keyChange{}, false
	})
}

func AdminEmailOwner(history DomainEvents, email EmailString) AdminIDString {
	return ownerOf(history, email, func(event DomainEvent) (keyChange, bool) {
		if e, ok := event.(AdminRegistered); ok {
			return keyChange{owner: e.AdminID, key: e.Email}, true
		}

		return keyChange{}, false
	})
}

func CategoryNameOwner(history DomainEvents, name string) CategoryIDString {
	return ownerOf(history, name, func(event DomainEvent) (keyChange, bool) {
		switch e := event.(type) {
		case CategoryAdded:
			return keyChange{owner: e.CategoryID, key: e.Name}, true
		case CategoryRenamed:
			return keyChange{owner: e.CategoryID, key: e.Name, previous: e.PreviousName}, true
		case CategoryRemoved:
			return keyChange{owner: e.CategoryID, previous: e.Name}, true
		}

		return keyChange{}, false
	})
}

func GradeLevelNameOwner(history DomainEvents, name string) GradeLevelIDString {
	return ownerOf(history, name, func(event DomainEvent) (keyChange, bool) {
		if e, ok := event.(GradeLevelAdded); ok {
			return keyChange{owner: e.GradeLevelID, key: e.Name}, true
		}

		return keyChange{}, false
	})
}

// BookRecord is a catalog entry with its live copy counters.
type BookRecord struct {
	BookDetails
	BookInventory
	AddedAt time.Time
}

// ProjectBook folds the catalog and ledger events of bookID.
func ProjectBook(history DomainEvents, bookID BookIDString) BookRecord {
	record := BookRecord{BookInventory: ProjectBookInventory(history, bookID)}

	for _, event := range history {
		switch e := event.(type) {
		case BookAddedToCatalog:
			if e.BookID == bookID {
				record.BookDetails = e.BookDetails
				record.AddedAt = e.OccurredAt
			}

		case BookDetailsUpdated:
			if e.BookID == bookID {
				record.BookDetails = e.BookDetails
			}
		}
	}

	return record
}

// StudentRecord is a student with the state of the library membership.
type StudentRecord struct {
	StudentID StudentIDString
	StudentProfile
	Exists       bool
	Removed      bool
	Active       bool
	RegisteredAt time.Time
}

// Apply folds one event into the record. Events of other students are ignored.
func (r StudentRecord) Apply(event DomainEvent) StudentRecord {
	switch e := event.(type) {
	case StudentRegistered:
		if r.StudentID == "" || e.StudentID == r.StudentID {
			r = StudentRecord{
				StudentID:      e.StudentID,
				StudentProfile: e.StudentProfile,
				Exists:         true,
				Active:         true,
				RegisteredAt:   e.OccurredAt,
			}
		}

	case StudentDetailsUpdated:
		if e.StudentID == r.StudentID && r.Exists {
			r.StudentProfile = e.StudentProfile
		}

	case StudentRemoved:
		if e.StudentID == r.StudentID && r.Exists {
			r.Exists = false
			r.Removed = true
			r.Active = false
		}

	case MembershipActivated:
		if e.StudentID == r.StudentID && r.Exists {
			r.Active = true
		}

	case MembershipDeactivated:
		if e.StudentID == r.StudentID && r.Exists {
			r.Active = false
		}
	}

	return r
}

func ProjectStudent(history DomainEvents, studentID StudentIDString) StudentRecord {
	record := StudentRecord{StudentID: studentID}

	for _, event := range history {
		record = record.Apply(event)
	}

	return record
}

type CategoryRecord struct {
	CategoryID CategoryIDString
	Name       string
	Exists     bool
	Removed    bool
}

func ProjectCategory(history DomainEvents, categoryID CategoryIDString) CategoryRecord {
	record := CategoryRecord{CategoryID: categoryID}

	for _, event := range history {
		switch e := event.(type) {
		case CategoryAdded:
			if e.CategoryID == categoryID {
				record.Name = e.Name
				record.Exists = true
				record.Removed = false
			}

		case CategoryRenamed:
			if e.CategoryID == categoryID {
				record.Name = e.Name
			}

		case CategoryRemoved:
			if e.CategoryID == categoryID {
				record.Exists = false
				record.Removed = true
			}
		}
	}

	return record
}

func GradeLevelExists(history DomainEvents, gradeLevelID GradeLevelIDString) bool {
	for _, event := range history {
		if e, ok := event.(GradeLevelAdded); ok && e.GradeLevelID == gradeLevelID {
			return true
		}
	}

	return false
}

// CountOpenLoans counts the loans in history that still hold a copy, filtered by match.
func CountOpenLoans(history DomainEvents, match func(LoanRecord) bool) int {
	count := 0

	for _, loan := range ProjectLoans(history) {
		if loan.Status.HoldsCopy() && match(loan) {
			count++
		}
	}

	return count
}
