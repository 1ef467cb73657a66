package core

import (
	"time"
)

const (
	AdminRegisteredEventType = "AdminRegistered"
	CategoryAddedEventType   = "CategoryAdded"
	CategoryRenamedEventType = "CategoryRenamed"
	CategoryRemovedEventType = "CategoryRemoved"
	GradeLevelAddedEventType = "GradeLevelAdded"
)

type AdminRegistered struct {
	AdminID AdminIDString
	Email   EmailString
	PersonName
	Role         string
	PasswordHash string
	OccurredAt   OccurredAt
}

func BuildAdminRegistered(
	adminID AdminIDString,
	email EmailString,
	name PersonName,
	role string,
	passwordHash string,
	occurredAt time.Time,
) AdminRegistered {

	return AdminRegistered{
		AdminID:      adminID,
		Email:        email,
		PersonName:   name,
		Role:         role,
		PasswordHash: passwordHash,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e AdminRegistered) EventType() string {
	return AdminRegisteredEventType
}

func (e AdminRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type CategoryAdded struct {
	CategoryID CategoryIDString
	Name       string
	OccurredAt OccurredAt
}

func BuildCategoryAdded(categoryID CategoryIDString, name string, occurredAt time.Time) CategoryAdded {
	return CategoryAdded{CategoryID: categoryID, Name: name, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e CategoryAdded) EventType() string {
	return CategoryAddedEventType
}

func (e CategoryAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type CategoryRenamed struct {
	CategoryID   CategoryIDString
	Name         string
	PreviousName string
	OccurredAt   OccurredAt
}

func BuildCategoryRenamed(categoryID CategoryIDString, name string, previousName string, occurredAt time.Time) CategoryRenamed {
	return CategoryRenamed{CategoryID: categoryID, Name: name, PreviousName: previousName, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e CategoryRenamed) EventType() string {
	return CategoryRenamedEventType
}

func (e CategoryRenamed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type CategoryRemoved struct {
	CategoryID CategoryIDString
	Name       string
	OccurredAt OccurredAt
}

func BuildCategoryRemoved(categoryID CategoryIDString, name string, occurredAt time.Time) CategoryRemoved {
	return CategoryRemoved{CategoryID: categoryID, Name: name, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e CategoryRemoved) EventType() string {
	return CategoryRemovedEventType
}

func (e CategoryRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

type GradeLevelAdded struct {
	GradeLevelID GradeLevelIDString
	Name         string
	OccurredAt   OccurredAt
}

func BuildGradeLevelAdded(gradeLevelID GradeLevelIDString, name string, occurredAt time.Time) GradeLevelAdded {
	return GradeLevelAdded{GradeLevelID: gradeLevelID, Name: name, OccurredAt: ToOccurredAt(occurredAt)}
}

func (e GradeLevelAdded) EventType() string {
	return GradeLevelAddedEventType
}

func (e GradeLevelAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
