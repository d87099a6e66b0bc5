package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"komek/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		valid   bool
		message string
	}{
		{name: "13 digits too short", pin: "1234567890123", valid: false, message: MsgPINLength},
		{name: "14 digits valid", pin: "12345678901234", valid: true},
		{name: "16 digits valid", pin: "1234567890123456", valid: true},
		{name: "17 digits too long", pin: "12345678901234567", valid: false, message: MsgPINLength},
		{name: "letters rejected", pin: "12345678901abc", valid: false, message: MsgPINDigits},
		{name: "empty rejected", pin: "", valid: false, message: MsgPINLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidatePIN(tt.pin)
			assert.Equal(t, tt.valid, r.IsValid)
			if !tt.valid {
				assert.Equal(t, tt.message, r.Error)
			}
		})
	}
}

func validApplicant() domain.Applicant {
	return domain.Applicant{
		PIN:         "12345678901234",
		FullName:    "Aigul Asanova",
		Gender:      domain.GenderFemale,
		BirthDate:   time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC),
		Citizenship: "KG",
		Documents: []domain.IdentityDocument{
			{
				Type:     domain.DocumentPassport,
				Series:   "AN",
				Number:   "1234567",
				IssuedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				Primary:  true,
			},
		},
	}
}

func TestValidateApplicant(t *testing.T) {
	t.Run("valid applicant passes", func(t *testing.T) {
		a := validApplicant()
		r, err := ValidateApplicant(&a, testNow)
		require.NoError(t, err)
		assert.True(t, r.IsValid)
	})

	t.Run("nil applicant is a caller error", func(t *testing.T) {
		_, err := ValidateApplicant(nil, testNow)
		require.Error(t, err)
	})

	t.Run("birth date in the future fails", func(t *testing.T) {
		a := validApplicant()
		a.BirthDate = testNow.AddDate(0, 0, 1)
		r, err := ValidateApplicant(&a, testNow)
		require.NoError(t, err)
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgBirthDateInFuture, r.Error)
	})

	t.Run("two primary documents fail", func(t *testing.T) {
		a := validApplicant()
		a.Documents = append(a.Documents, domain.IdentityDocument{
			Type:    domain.DocumentIDCard,
			Series:  "ID",
			Number:  "654321",
			Primary: true,
		})
		r, err := ValidateApplicant(&a, testNow)
		require.NoError(t, err)
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgExactlyOnePrimaryDoc, r.Error)
	})

	t.Run("zero primary documents fail", func(t *testing.T) {
		a := validApplicant()
		a.Documents[0].Primary = false
		r, err := ValidateApplicant(&a, testNow)
		require.NoError(t, err)
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgExactlyOnePrimaryDoc, r.Error)
	})
}

func TestValidateDocumentFormat(t *testing.T) {
	tests := []struct {
		name    string
		docType domain.DocumentType
		series  string
		number  string
		valid   bool
	}{
		{name: "passport 2/7 valid", docType: domain.DocumentPassport, series: "AN", number: "1234567", valid: true},
		{name: "passport short number fails", docType: domain.DocumentPassport, series: "AN", number: "123456", valid: false},
		{name: "id card 2/6 valid", docType: domain.DocumentIDCard, series: "ID", number: "123456", valid: true},
		{name: "id card 2/7 fails", docType: domain.DocumentIDCard, series: "ID", number: "1234567", valid: false},
		{name: "birth certificate 2/7 valid", docType: domain.DocumentBirthCertificate, series: "KR", number: "1234567", valid: true},
		{name: "military id 2/7 valid", docType: domain.DocumentMilitaryID, series: "VB", number: "1234567", valid: true},
		{name: "unknown type passes unchecked", docType: domain.DocumentType("residence_permit"), series: "X", number: "1", valid: true},
		{name: "wrong series length fails", docType: domain.DocumentPassport, series: "ANX", number: "1234567", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateDocumentFormat(tt.docType, tt.series, tt.number)
			assert.Equal(t, tt.valid, r.IsValid)
		})
	}
}

func TestValidateDocumentDates(t *testing.T) {
	t.Run("future issue date fails", func(t *testing.T) {
		doc := domain.IdentityDocument{
			Type:     domain.DocumentPassport,
			Series:   "AN",
			Number:   "1234567",
			IssuedAt: testNow.AddDate(0, 1, 0),
		}
		r := ValidateDocument(doc, testNow)
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgDocIssuedInFuture, r.Error)
	})

	t.Run("expired document fails", func(t *testing.T) {
		doc := domain.IdentityDocument{
			Type:      domain.DocumentPassport,
			Series:    "AN",
			Number:    "1234567",
			IssuedAt:  testNow.AddDate(-10, 0, 0),
			ExpiresAt: testNow.AddDate(0, 0, -1),
		}
		r := ValidateDocument(doc, testNow)
		assert.False(t, r.IsValid)
		assert.Equal(t, MsgDocExpired, r.Error)
	})

	t.Run("zero expiry never expires", func(t *testing.T) {
		doc := domain.IdentityDocument{
			Type:     domain.DocumentBirthCertificate,
			Series:   "KR",
			Number:   "1234567",
			IssuedAt: testNow.AddDate(-30, 0, 0),
		}
		r := ValidateDocument(doc, testNow)
		assert.True(t, r.IsValid)
	})
}
