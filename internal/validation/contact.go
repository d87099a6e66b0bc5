package validation

import (
	"regexp"
	"strings"

	"komek/internal/domain"
)

const (
	MsgPhoneFormat        = "phone must be +996 followed by 9 digits"
	MsgEmailFormat        = "email must be a valid address"
	MsgContactEmpty       = "contact value is required"
	MsgContactTypeUnknown = "contact type must be phone or email"
	MsgOnlyOnePrimary     = "only one contact may be marked primary"
	MsgAtLeastOnePrimary  = "contacts must have at least one primary entry"
)

var (
	phoneRe = regexp.MustCompile(`^\+996\d{9}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidatePhone checks the national mobile format: +996 then 9 digits.
func ValidatePhone(phone string) Result {
	if !phoneRe.MatchString(phone) {
		return fail(MsgPhoneFormat)
	}
	return ok()
}

// ValidateEmail checks the standard local@domain.tld shape.
func ValidateEmail(email string) Result {
	if !emailRe.MatchString(email) {
		return fail(MsgEmailFormat)
	}
	return ok()
}

// ValidateContact checks one contact entry by its type.
func ValidateContact(c domain.Contact) Result {
	if strings.TrimSpace(c.Value) == "" {
		return fail(MsgContactEmpty)
	}
	switch c.Type {
	case domain.ContactPhone:
		return ValidatePhone(c.Value)
	case domain.ContactEmail:
		return ValidateEmail(c.Value)
	default:
		return fail(MsgContactTypeUnknown)
	}
}

// ValidateContacts checks the collection rule: exactly one entry marked
// primary. Zero primaries and more than one are both errors, and every
// entry must itself be valid.
func ValidateContacts(contacts []domain.Contact) Result {
	primaries := 0
	for _, c := range contacts {
		if r := ValidateContact(c); !r.IsValid {
			return r
		}
		if c.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		return fail(MsgOnlyOnePrimary)
	}
	if primaries == 0 {
		return fail(MsgAtLeastOnePrimary)
	}
	return ok()
}
