package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"komek/internal/domain"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "national format valid", phone: "+996555123456", valid: true},
		{name: "missing plus fails", phone: "996555123456", valid: false},
		{name: "eight digits fails", phone: "+99655512345", valid: false},
		{name: "ten digits fails", phone: "+9965551234567", valid: false},
		{name: "wrong country code fails", phone: "+7955512345", valid: false},
		{name: "letters fail", phone: "+996abc123456", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePhone(tt.phone).IsValid)
		})
	}
}

func TestValidateContacts(t *testing.T) {
	phone := func(value string, primary bool) domain.Contact {
		return domain.Contact{Type: domain.ContactPhone, Value: value, Primary: primary}
	}

	t.Run("one primary passes", func(t *testing.T) {
		r := ValidateContacts([]domain.Contact{
			phone("+996555123456", true),
			{Type: domain.ContactEmail, Value: "a@example.kg", Primary: false},
		})
		assert.True(t, r.IsValid)
	})

	t.Run("two primaries fail", func(t *testing.T) {
		r := ValidateContacts([]domain.Contact{
			phone("+996555123456", true),
			phone("+996555654321", true),
		})
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgOnlyOnePrimary, r.Error)
	})

	t.Run("zero primaries fail", func(t *testing.T) {
		r := ValidateContacts([]domain.Contact{
			phone("+996555123456", false),
		})
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgAtLeastOnePrimary, r.Error)
	})

	t.Run("invalid entry reported before primary rule", func(t *testing.T) {
		r := ValidateContacts([]domain.Contact{
			{Type: domain.ContactEmail, Value: "not-an-email", Primary: true},
		})
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgEmailFormat, r.Error)
	})

	t.Run("unknown contact type fails", func(t *testing.T) {
		r := ValidateContacts([]domain.Contact{
			{Type: domain.ContactType("fax"), Value: "12345", Primary: true},
		})
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgContactTypeUnknown, r.Error)
	})
}
