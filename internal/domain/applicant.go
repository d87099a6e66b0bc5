// Package domain holds the entity snapshots the core operates on. Callers
// supply these already deserialized; storage of the actual records lives in
// the store layers.
package domain

import (
	"time"

	id "komek/pkg/domain"
)

// DocumentType enumerates identity document kinds with known series/number
// formats. Unknown kinds pass format checks unchecked.
type DocumentType string

const (
	DocumentPassport         DocumentType = "passport"
	DocumentIDCard           DocumentType = "id_card"
	DocumentBirthCertificate DocumentType = "birth_certificate"
	DocumentMilitaryID       DocumentType = "military_id"
)

// IdentityDocument is a government-issued document attached to an applicant.
type IdentityDocument struct {
	Type             DocumentType
	Series           string
	Number           string
	IssuingAuthority string
	IssuedAt         time.Time
	ExpiresAt        time.Time
	Primary          bool
}

// Gender as recorded on the identity document.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Applicant is the person the benefit application is filed for.
// Invariant: exactly one identity document is marked primary.
type Applicant struct {
	ID          id.ApplicantID
	PIN         string // personal identification number, 14-16 digits, unique
	FullName    string
	Gender      Gender
	BirthDate   time.Time
	Citizenship string
	Documents   []IdentityDocument
	Contacts    []Contact
	Addresses   []Address
}

// ContactType labels a contact entry.
type ContactType string

const (
	ContactPhone ContactType = "phone"
	ContactEmail ContactType = "email"
)

// Contact is a phone or email entry. At most one entry per applicant carries
// Primary=true, and at least one must.
type Contact struct {
	Type    ContactType
	Value   string
	Primary bool
}

// AddressType distinguishes registered from factual residence.
type AddressType string

const (
	AddressRegistered AddressType = "REG"
	AddressFactual    AddressType = "FACT"
)

// Address is a structured residence record keyed by regional reference codes.
type Address struct {
	Type         AddressType
	RegionCode   string
	DistrictCode string
	LocalityCode string
	Street       string
	House        string
	Flat         string
}

// PrimaryDocument returns the document marked primary, or nil when the
// invariant is broken.
func (a *Applicant) PrimaryDocument() *IdentityDocument {
	for i := range a.Documents {
		if a.Documents[i].Primary {
			return &a.Documents[i]
		}
	}
	return nil
}

// AgeAt returns full years between birth and the given date.
func AgeAt(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
