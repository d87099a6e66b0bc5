package validation

import (
	"time"

	"komek/internal/domain"
)

const (
	MsgDocSeriesLength   = "document series has wrong length for its type"
	MsgDocNumberLength   = "document number has wrong length for its type"
	MsgDocIssuedInFuture = "document issue date must not be in the future"
	MsgDocExpired        = "document has expired"
)

// docFormat fixes series/number lengths per document type. Types not listed
// here pass format checks unchecked.
type docFormat struct {
	series int
	number int
}

var docFormats = map[domain.DocumentType]docFormat{
	domain.DocumentPassport:         {series: 2, number: 7},
	domain.DocumentIDCard:           {series: 2, number: 6},
	domain.DocumentBirthCertificate: {series: 2, number: 7},
	domain.DocumentMilitaryID:       {series: 2, number: 7},
}

// ValidateDocumentFormat checks series/number lengths against the per-type
// table. Unknown document types pass through unchecked.
func ValidateDocumentFormat(docType domain.DocumentType, series, number string) Result {
	format, known := docFormats[docType]
	if !known {
		return ok()
	}
	if len(series) != format.series {
		return fail(MsgDocSeriesLength)
	}
	if len(number) != format.number {
		return fail(MsgDocNumberLength)
	}
	return ok()
}

// ValidateDocument checks format and validity dates: issue date not in the
// future, expiry date not in the past. A zero expiry means the document does
// not expire.
func ValidateDocument(doc domain.IdentityDocument, now time.Time) Result {
	if r := ValidateDocumentFormat(doc.Type, doc.Series, doc.Number); !r.IsValid {
		return r
	}
	if doc.IssuedAt.After(now) {
		return fail(MsgDocIssuedInFuture)
	}
	if !doc.ExpiresAt.IsZero() && doc.ExpiresAt.Before(now) {
		return fail(MsgDocExpired)
	}
	return ok()
}
