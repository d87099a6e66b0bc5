package validation

import (
	"time"

	"komek/internal/domain"
)

const (
	MsgMemberNameRequired  = "family member full name is required"
	MsgMemberBirthRequired = "family member birth date is required"
	MsgMemberBirthInFuture = "family member birth date must not be in the future"
	MsgRelationUnknown     = "family member relation is not recognized"
	MsgChildTooOld         = "child must not be older than the child age limit"
)

var knownRelations = map[domain.Relation]bool{
	domain.RelationSpouse:      true,
	domain.RelationChild:       true,
	domain.RelationParent:      true,
	domain.RelationGrandparent: true,
	domain.RelationSibling:     true,
	domain.RelationOther:       true,
}

// ValidateFamilyMember checks one household member. childAgeLimit is the
// configurable threshold for the "child at application date" invariant
// (see config.ChildAgeLimit; the dependant counting limit is separate).
func ValidateFamilyMember(m domain.FamilyMember, asOf time.Time, childAgeLimit int) Result {
	if m.FullName == "" {
		return fail(MsgMemberNameRequired)
	}
	if m.BirthDate.IsZero() {
		return fail(MsgMemberBirthRequired)
	}
	if m.BirthDate.After(asOf) {
		return fail(MsgMemberBirthInFuture)
	}
	if !knownRelations[m.Relation] {
		return fail(MsgRelationUnknown)
	}
	if m.Type == domain.MemberChild && domain.AgeAt(m.BirthDate, asOf) > childAgeLimit {
		return fail(MsgChildTooOld)
	}
	return ok()
}
