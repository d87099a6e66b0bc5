// Package workflow implements the role-based state machine over
// applications: who may do what, under which precondition, and with which
// effect. Every successful execution is recorded through the audit ledger
// before it counts as complete.
package workflow

import dErrors "komek/pkg/domain-errors"

// Role is an acting user's role. The role→action table below is flat; there
// is no hierarchical inheritance.
type Role string

const (
	RoleSpecialist Role = "SPECIALIST"
	RoleDirector   Role = "DIRECTOR"
	RoleAccountant Role = "ACCOUNTANT"
	RoleAdmin      Role = "ADMIN"
)

// ActionType names an operation in the workflow.
type ActionType string

const (
	ActionCreateApplication ActionType = "CREATE_APPLICATION"
	ActionUpdateApplication ActionType = "UPDATE_APPLICATION"
	ActionManageIncome      ActionType = "MANAGE_INCOME"
	ActionManageFamily      ActionType = "MANAGE_FAMILY"
	ActionManageProperty    ActionType = "MANAGE_PROPERTY"
	ActionRunCalculation    ActionType = "RUN_CALCULATION"
	ActionSubmitApplication ActionType = "SUBMIT_APPLICATION"
	ActionReturnToDraft     ActionType = "RETURN_TO_DRAFT"
	ActionSendForApproval   ActionType = "SEND_FOR_APPROVAL"

	ActionApproveApplication ActionType = "APPROVE_APPLICATION"
	ActionRejectApplication  ActionType = "REJECT_APPLICATION"
	ActionExtendBenefit      ActionType = "EXTEND_BENEFIT"
	ActionSuspendBenefit     ActionType = "SUSPEND_BENEFIT"
	ActionResumeBenefit      ActionType = "RESUME_BENEFIT"
	ActionTerminateBenefit   ActionType = "TERMINATE_BENEFIT"

	ActionActivatePayment ActionType = "ACTIVATE_PAYMENT"

	ActionViewAuditLog   ActionType = "VIEW_AUDIT_LOG"
	ActionExportAuditLog ActionType = "EXPORT_AUDIT_LOG"
)

// roleActions is the single source of truth for the permission matrix.
var roleActions = map[Role][]ActionType{
	RoleSpecialist: {
		ActionCreateApplication,
		ActionUpdateApplication,
		ActionManageIncome,
		ActionManageFamily,
		ActionManageProperty,
		ActionRunCalculation,
		ActionSubmitApplication,
		ActionReturnToDraft,
		ActionSendForApproval,
	},
	RoleDirector: {
		ActionApproveApplication,
		ActionRejectApplication,
		ActionExtendBenefit,
		ActionSuspendBenefit,
		ActionResumeBenefit,
		ActionTerminateBenefit,
	},
	RoleAccountant: {
		ActionActivatePayment,
		ActionRunCalculation,
	},
	RoleAdmin: {
		ActionViewAuditLog,
		ActionExportAuditLog,
	},
}

// ParseRole constructs a Role from external input.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, known := roleActions[r]; !known {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid role")
	}
	return r, nil
}

// ParseActionType constructs an ActionType from external input. Only
// actions the engine executes parse; the audit-log actions are checked by
// their handlers directly.
func ParseActionType(s string) (ActionType, error) {
	a := ActionType(s)
	if _, known := actionDefinitions[a]; !known {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid action type")
	}
	return a, nil
}

// CanPerform reports whether the role's action set includes the action.
func CanPerform(role Role, action ActionType) bool {
	for _, a := range roleActions[role] {
		if a == action {
			return true
		}
	}
	return false
}
