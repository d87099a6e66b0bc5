package domain

import "time"

// Relation describes how a family member relates to the applicant.
type Relation string

const (
	RelationSpouse      Relation = "spouse"
	RelationChild       Relation = "child"
	RelationParent      Relation = "parent"
	RelationGrandparent Relation = "grandparent"
	RelationSibling     Relation = "sibling"
	RelationOther       Relation = "other"
)

// MemberType classifies a family member for benefit purposes.
type MemberType string

const (
	MemberAdult MemberType = "adult"
	MemberChild MemberType = "child"
)

// Education is an optional sub-record for members still in education.
type Education struct {
	Institution string
	FullTime    bool
	GraduatesAt time.Time
}

// FamilyMember is one member of the applicant's household.
type FamilyMember struct {
	FullName      string
	BirthDate     time.Time
	Gender        Gender
	Relation      Relation
	Type          MemberType
	Education     *Education
	MonthlyIncome float64 // member's own reported monthly income
}

// IsChildAt reports whether the member counts as a child at the given date
// under the supplied age limit.
func (m FamilyMember) IsChildAt(at time.Time, ageLimit int) bool {
	return m.Type == MemberChild && AgeAt(m.BirthDate, at) <= ageLimit
}
