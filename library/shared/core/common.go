package core

import (
	"strings"
	"time"
)

type BookIDString = string
type LoanIDString = string
type StudentIDString = string
type AdminIDString = string
type CategoryIDString = string
type GradeLevelIDString = string
type ISBNString = string
type EmailString = string
type OccurredAt = time.Time

// NormalizeEmail lowercases and trims an address so it can serve as a unique key.
func NormalizeEmail(email string) EmailString {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToOccurredAt normalizes t to UTC with microsecond precision, which every engine can store losslessly.
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
