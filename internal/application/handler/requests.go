package handler

import (
	"strings"
	"time"

	"komek/internal/domain"
	"komek/internal/workflow"
	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

// DocumentPayload is one identity document in a request body.
type DocumentPayload struct {
	Type             string    `json:"type"`
	Series           string    `json:"series"`
	Number           string    `json:"number"`
	IssuingAuthority string    `json:"issuing_authority"`
	IssuedAt         time.Time `json:"issued_at"`
	ExpiresAt        time.Time `json:"expires_at"`
	Primary          bool      `json:"primary"`
}

func (p DocumentPayload) toDomain() domain.IdentityDocument {
	return domain.IdentityDocument{
		Type:             domain.DocumentType(p.Type),
		Series:           p.Series,
		Number:           p.Number,
		IssuingAuthority: p.IssuingAuthority,
		IssuedAt:         p.IssuedAt,
		ExpiresAt:        p.ExpiresAt,
		Primary:          p.Primary,
	}
}

// ContactPayload is one contact entry in a request body.
type ContactPayload struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

func (p ContactPayload) toDomain() domain.Contact {
	return domain.Contact{
		Type:    domain.ContactType(p.Type),
		Value:   p.Value,
		Primary: p.Primary,
	}
}

// AddressPayload is one address entry in a request body.
type AddressPayload struct {
	Type         string `json:"type"`
	RegionCode   string `json:"region_code"`
	DistrictCode string `json:"district_code"`
	LocalityCode string `json:"locality_code"`
	Street       string `json:"street"`
	House        string `json:"house"`
	Flat         string `json:"flat"`
}

func (p AddressPayload) toDomain() domain.Address {
	return domain.Address{
		Type:         domain.AddressType(p.Type),
		RegionCode:   p.RegionCode,
		DistrictCode: p.DistrictCode,
		LocalityCode: p.LocalityCode,
		Street:       p.Street,
		House:        p.House,
		Flat:         p.Flat,
	}
}

// ApplicantPayload is the applicant block of a request body.
type ApplicantPayload struct {
	ID          string            `json:"id"`
	PIN         string            `json:"pin"`
	FullName    string            `json:"full_name"`
	Gender      string            `json:"gender"`
	BirthDate   time.Time         `json:"birth_date"`
	Citizenship string            `json:"citizenship"`
	Documents   []DocumentPayload `json:"documents"`
	Contacts    []ContactPayload  `json:"contacts"`
	Addresses   []AddressPayload  `json:"addresses"`
}

func (p ApplicantPayload) toDomain() (domain.Applicant, error) {
	applicantID, err := id.ParseApplicantID(p.ID)
	if err != nil {
		return domain.Applicant{}, err
	}
	applicant := domain.Applicant{
		ID:          applicantID,
		PIN:         strings.TrimSpace(p.PIN),
		FullName:    strings.TrimSpace(p.FullName),
		Gender:      domain.Gender(p.Gender),
		BirthDate:   p.BirthDate,
		Citizenship: p.Citizenship,
	}
	for _, d := range p.Documents {
		applicant.Documents = append(applicant.Documents, d.toDomain())
	}
	for _, c := range p.Contacts {
		applicant.Contacts = append(applicant.Contacts, c.toDomain())
	}
	for _, a := range p.Addresses {
		applicant.Addresses = append(applicant.Addresses, a.toDomain())
	}
	return applicant, nil
}

// FamilyMemberPayload is one household member in a request body.
type FamilyMemberPayload struct {
	FullName      string            `json:"full_name"`
	BirthDate     time.Time         `json:"birth_date"`
	Gender        string            `json:"gender"`
	Relation      string            `json:"relation"`
	Type          string            `json:"type"`
	Education     *EducationPayload `json:"education,omitempty"`
	MonthlyIncome float64           `json:"monthly_income"`
}

// EducationPayload is the optional in-education sub-record.
type EducationPayload struct {
	Institution string    `json:"institution"`
	FullTime    bool      `json:"full_time"`
	GraduatesAt time.Time `json:"graduates_at"`
}

func (p FamilyMemberPayload) toDomain() domain.FamilyMember {
	m := domain.FamilyMember{
		FullName:      p.FullName,
		BirthDate:     p.BirthDate,
		Gender:        domain.Gender(p.Gender),
		Relation:      domain.Relation(p.Relation),
		Type:          domain.MemberType(p.Type),
		MonthlyIncome: p.MonthlyIncome,
	}
	if p.Education != nil {
		m.Education = &domain.Education{
			Institution: p.Education.Institution,
			FullTime:    p.Education.FullTime,
			GraduatesAt: p.Education.GraduatesAt,
		}
	}
	return m
}

// IncomePayload is one declared income in a request body.
type IncomePayload struct {
	TypeCode    string     `json:"type_code"`
	Amount      float64    `json:"amount"`
	Periodicity string     `json:"periodicity"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
}

func (p IncomePayload) toDomain() domain.Income {
	return domain.Income{
		TypeCode:    p.TypeCode,
		Amount:      p.Amount,
		Periodicity: domain.Periodicity(p.Periodicity),
		From:        p.From,
		To:          p.To,
	}
}

// LandPlotPayload is one land holding in a request body.
type LandPlotPayload struct {
	TypeCode     string  `json:"type_code"`
	AreaHectares float64 `json:"area_hectares"`
	AnnualIncome float64 `json:"annual_income"`
}

func (p LandPlotPayload) toDomain() domain.LandPlot {
	return domain.LandPlot{
		TypeCode:     p.TypeCode,
		AreaHectares: p.AreaHectares,
		AnnualIncome: p.AnnualIncome,
	}
}

// LivestockPayload is one livestock count in a request body.
type LivestockPayload struct {
	Type         string  `json:"type"`
	Count        int     `json:"count"`
	AnnualIncome float64 `json:"annual_income"`
}

func (p LivestockPayload) toDomain() domain.Livestock {
	return domain.Livestock{
		Type:         domain.LivestockType(p.Type),
		Count:        p.Count,
		AnnualIncome: p.AnnualIncome,
	}
}

// VehiclePayload is one vehicle record in a request body.
type VehiclePayload struct {
	TypeCode        string  `json:"type_code"`
	ManufactureYear int     `json:"manufacture_year"`
	LightCar        bool    `json:"light_car"`
	AnnualIncome    float64 `json:"annual_income"`
}

func (p VehiclePayload) toDomain() domain.Vehicle {
	return domain.Vehicle{
		TypeCode:        p.TypeCode,
		ManufactureYear: p.ManufactureYear,
		LightCar:        p.LightCar,
		AnnualIncome:    p.AnnualIncome,
	}
}

// CreateApplicationRequest is the HTTP request body for POST /applications.
type CreateApplicationRequest struct {
	Applicant   ApplicantPayload      `json:"applicant"`
	Family      []FamilyMemberPayload `json:"family"`
	Incomes     []IncomePayload       `json:"incomes"`
	Land        []LandPlotPayload     `json:"land"`
	Livestock   []LivestockPayload    `json:"livestock"`
	Vehicles    []VehiclePayload      `json:"vehicles"`
	RegionCoeff float64               `json:"region_coeff"`
	AddCoeff    float64               `json:"add_coeff"`
	BorderArea  bool                  `json:"border_area"`

	parsedApplicant domain.Applicant
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CreateApplicationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	applicant, err := r.Applicant.toDomain()
	if err != nil {
		return err
	}
	if applicant.PIN == "" {
		return dErrors.New(dErrors.CodeValidation, "applicant.pin is required")
	}
	if applicant.FullName == "" {
		return dErrors.New(dErrors.CodeValidation, "applicant.full_name is required")
	}
	r.parsedApplicant = applicant
	return nil
}

// ParsedApplicant returns the validated applicant.
func (r *CreateApplicationRequest) ParsedApplicant() domain.Applicant {
	return r.parsedApplicant
}

// ChangesPayload carries replacement data for the update actions. Absent
// fields leave the stored data untouched.
type ChangesPayload struct {
	Applicant   *ApplicantPayload      `json:"applicant,omitempty"`
	Incomes     *[]IncomePayload       `json:"incomes,omitempty"`
	Family      *[]FamilyMemberPayload `json:"family,omitempty"`
	Land        *[]LandPlotPayload     `json:"land,omitempty"`
	Livestock   *[]LivestockPayload    `json:"livestock,omitempty"`
	Vehicles    *[]VehiclePayload      `json:"vehicles,omitempty"`
	RegionCoeff *float64               `json:"region_coeff,omitempty"`
	AddCoeff    *float64               `json:"add_coeff,omitempty"`
	BorderArea  *bool                  `json:"border_area,omitempty"`
}

func (p *ChangesPayload) toDomain() (*workflow.ApplicationChanges, error) {
	if p == nil {
		return nil, nil
	}
	changes := &workflow.ApplicationChanges{
		RegionCoeff: p.RegionCoeff,
		AddCoeff:    p.AddCoeff,
		BorderArea:  p.BorderArea,
	}
	if p.Applicant != nil {
		applicant, err := p.Applicant.toDomain()
		if err != nil {
			return nil, err
		}
		changes.Applicant = &applicant
	}
	if p.Incomes != nil {
		incomes := make([]domain.Income, 0, len(*p.Incomes))
		for _, in := range *p.Incomes {
			incomes = append(incomes, in.toDomain())
		}
		changes.Incomes = &incomes
	}
	if p.Family != nil {
		family := make([]domain.FamilyMember, 0, len(*p.Family))
		for _, m := range *p.Family {
			family = append(family, m.toDomain())
		}
		changes.Family = &family
	}
	if p.Land != nil {
		land := make([]domain.LandPlot, 0, len(*p.Land))
		for _, l := range *p.Land {
			land = append(land, l.toDomain())
		}
		changes.Land = &land
	}
	if p.Livestock != nil {
		livestock := make([]domain.Livestock, 0, len(*p.Livestock))
		for _, l := range *p.Livestock {
			livestock = append(livestock, l.toDomain())
		}
		changes.Livestock = &livestock
	}
	if p.Vehicles != nil {
		vehicles := make([]domain.Vehicle, 0, len(*p.Vehicles))
		for _, v := range *p.Vehicles {
			vehicles = append(vehicles, v.toDomain())
		}
		changes.Vehicles = &vehicles
	}
	return changes, nil
}

// ProtocolPayload carries the formal decision fields for director actions.
type ProtocolPayload struct {
	Responsible string `json:"responsible"`
	Position    string `json:"position"`
	Reason      string `json:"reason"`
	LegalBasis  string `json:"legal_basis"`
}

// ExecuteActionRequest is the HTTP request body for
// POST /applications/{applicationID}/actions.
type ExecuteActionRequest struct {
	Action   string           `json:"action"`
	Changes  *ChangesPayload  `json:"changes,omitempty"`
	Protocol *ProtocolPayload `json:"protocol,omitempty"`

	parsedAction  workflow.ActionType
	parsedChanges *workflow.ApplicationChanges
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ExecuteActionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Action = strings.TrimSpace(r.Action)
	if r.Action == "" {
		return dErrors.New(dErrors.CodeValidation, "action is required")
	}
	action, err := workflow.ParseActionType(r.Action)
	if err != nil {
		return err
	}
	r.parsedAction = action

	changes, err := r.Changes.toDomain()
	if err != nil {
		return err
	}
	r.parsedChanges = changes
	return nil
}

// ParsedAction returns the validated action type.
func (r *ExecuteActionRequest) ParsedAction() workflow.ActionType {
	return r.parsedAction
}

// ParsedChanges returns the validated change set, or nil.
func (r *ExecuteActionRequest) ParsedChanges() *workflow.ApplicationChanges {
	return r.parsedChanges
}

// ParsedProtocol returns the protocol details, or nil.
func (r *ExecuteActionRequest) ParsedProtocol() *workflow.ProtocolDetails {
	if r.Protocol == nil {
		return nil
	}
	return &workflow.ProtocolDetails{
		Responsible: r.Protocol.Responsible,
		Position:    r.Protocol.Position,
		Reason:      r.Protocol.Reason,
		LegalBasis:  r.Protocol.LegalBasis,
	}
}
