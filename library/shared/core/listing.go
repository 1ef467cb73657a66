package core

// ProjectCatalog returns every book ever added, in the order they were added.
// Removed books are included with Exists false.
func ProjectCatalog(history DomainEvents) []BookRecord {
	order, grouped := groupBy(history, bookIDOf)
	records := make([]BookRecord, 0, len(order))

	for _, bookID := range order {
		records = append(records, ProjectBook(grouped[bookID], bookID))
	}

	return records
}

// ProjectStudents returns every student ever registered, in registration order.
func ProjectStudents(history DomainEvents) []StudentRecord {
	order, grouped := groupBy(history, studentIDOf)
	records := make([]StudentRecord, 0, len(order))

	for _, studentID := range order {
		records = append(records, ProjectStudent(grouped[studentID], studentID))
	}

	return records
}

// ProjectCategories returns the categories that were not removed, in the order they were added.
func ProjectCategories(history DomainEvents) []CategoryRecord {
	order, grouped := groupBy(history, func(event DomainEvent) (string, bool) {
		switch e := event.(type) {
		case CategoryAdded:
			return e.CategoryID, true
		case CategoryRenamed:
			return e.CategoryID, true
		case CategoryRemoved:
			return e.CategoryID, true
		}

		return "", false
	})

	records := make([]CategoryRecord, 0, len(order))

	for _, categoryID := range order {
		if record := ProjectCategory(grouped[categoryID], categoryID); record.Exists {
			records = append(records, record)
		}
	}

	return records
}

type GradeLevelRecord struct {
	GradeLevelID GradeLevelIDString
	Name         string
}

func ProjectGradeLevels(history DomainEvents) []GradeLevelRecord {
	records := make([]GradeLevelRecord, 0)
	seen := make(map[GradeLevelIDString]bool)

	for _, event := range history {
		if e, ok := event.(GradeLevelAdded); ok && !seen[e.GradeLevelID] {
			seen[e.GradeLevelID] = true
			records = append(records, GradeLevelRecord{GradeLevelID: e.GradeLevelID, Name: e.Name})
		}
	}

	return records
}

// groupBy splits history by the id keyOf extracts. Order lists ids by first appearance.
func groupBy(history DomainEvents, keyOf func(DomainEvent) (string, bool)) ([]string, map[string]DomainEvents) {
	order := make([]string, 0)
	grouped := make(map[string]DomainEvents)

	for _, event := range history {
		key, ok := keyOf(event)
		if !ok {
			continue
		}

		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}

		grouped[key] = append(grouped[key], event)
	}

	return order, grouped
}

func bookIDOf(event DomainEvent) (BookIDString, bool) {
	switch e := event.(type) {
	case BookAddedToCatalog:
		return e.BookID, true
	case BookDetailsUpdated:
		return e.BookID, true
	case BookRemovedFromCatalog:
		return e.BookID, true
	case BookCopiesResized:
		return e.BookID, true
	case BookCopyReserved:
		return e.BookID, true
	case BookCopyReleased:
		return e.BookID, true
	}

	return "", false
}

func studentIDOf(event DomainEvent) (StudentIDString, bool) {
	switch e := event.(type) {
	case StudentRegistered:
		return e.StudentID, true
	case StudentDetailsUpdated:
		return e.StudentID, true
	case StudentRemoved:
		return e.StudentID, true
	case MembershipActivated:
		return e.StudentID, true
	case MembershipDeactivated:
		return e.StudentID, true
	}

	return "", false
}
