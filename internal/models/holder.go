package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what a system user is allowed to do.
type Role string

const (
	RoleAccountHolder Role = "ACCOUNT_HOLDER"
	RoleAdmin         Role = "ADMIN"
)

// UserStatus represents the lifecycle state of a system user.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// Student account eligibility bounds, in whole years of age.
const (
	minStudentAge = 18
	maxStudentAge = 24
)

// Address is a postal address attached to an account holder.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// PersonalData groups the contact details of an account holder.
type PersonalData struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// AccountHolder is the owner entity for accounts. Holders exist
// independently of accounts; an account references its holders and never
// owns them.
type AccountHolder struct {
	ID             uuid.UUID
	Name           string
	DateOfBirth    time.Time
	PersonalData   PersonalData
	PrimaryAddress Address
	MailingAddress *Address
	Role           Role
	Status         UserStatus
	CreatedAt      time.Time
}

// NewAccountHolder creates an account holder with role ACCOUNT_HOLDER and
// status ACTIVE. The date of birth must be a past calendar date.
func NewAccountHolder(
	name string,
	dateOfBirth time.Time,
	personal PersonalData,
	primaryAddress Address,
	mailingAddress *Address,
	now time.Time,
) (*AccountHolder, error) {
	if len(name) < 2 || len(name) > 50 {
		return nil, NewError(ErrCodeValidationRange, "holder name must be between 2 and 50 characters, got %d", len(name))
	}
	if dateOfBirth.IsZero() {
		return nil, NewError(ErrCodeValidationRange, "date of birth is required")
	}
	dob := dateOnly(dateOfBirth)
	if !dob.Before(dateOnly(now)) {
		return nil, NewError(ErrCodeValidationRange, "date of birth must be in the past")
	}

	return &AccountHolder{
		ID:             uuid.New(),
		Name:           name,
		DateOfBirth:    dob,
		PersonalData:   personal,
		PrimaryAddress: primaryAddress,
		MailingAddress: mailingAddress,
		Role:           RoleAccountHolder,
		Status:         UserStatusActive,
		CreatedAt:      now,
	}, nil
}

// Age returns the holder's age in whole years as of the given date.
func (h *AccountHolder) Age(today time.Time) int {
	today = dateOnly(today)
	years := today.Year() - h.DateOfBirth.Year()
	birthday := h.DateOfBirth.AddDate(years, 0, 0)
	if birthday.After(today) {
		years--
	}
	return years
}

// EligibleForStudentAccount reports whether the holder may own a student
// checking account. Holders must be at least 18 and under 24; violations
// carry an eligibility_violation code so construction can fail loudly
// instead of silently returning false.
func (h *AccountHolder) EligibleForStudentAccount(today time.Time) error {
	age := h.Age(today)
	if age < minStudentAge {
		return NewError(ErrCodeEligibilityViolation,
			"holder %q is not eligible for a student account (age %d): must be at least %d", h.Name, age, minStudentAge)
	}
	if age >= maxStudentAge {
		return NewError(ErrCodeEligibilityViolation,
			"holder %q is not eligible for a student account (age %d): must be under %d", h.Name, age, maxStudentAge)
	}
	return nil
}

// dateOnly strips the time-of-day component; all due-date comparisons
// work on calendar dates in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
