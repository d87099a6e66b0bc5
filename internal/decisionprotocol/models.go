// Package decisionprotocol records one formal protocol per application per
// decision: who decided, in what capacity, why, and on what legal basis.
// The workflow engine writes protocols for director decisions; nothing else
// creates them.
package decisionprotocol

import (
	"time"

	id "komek/pkg/domain"
	dErrors "komek/pkg/domain-errors"
)

// Decision enumerates the formal decisions that require a protocol.
type Decision string

const (
	DecisionApprove   Decision = "approve"
	DecisionReject    Decision = "reject"
	DecisionExtend    Decision = "extend"
	DecisionSuspend   Decision = "suspend"
	DecisionTerminate Decision = "terminate"
)

var validDecisions = map[Decision]bool{
	DecisionApprove:   true,
	DecisionReject:    true,
	DecisionExtend:    true,
	DecisionSuspend:   true,
	DecisionTerminate: true,
}

// IsValid checks the decision against the supported set.
func (d Decision) IsValid() bool { return validDecisions[d] }

// Protocol is the formal record of one decision on an application.
type Protocol struct {
	ID            id.ProtocolID
	ApplicationID id.ApplicationID
	Decision      Decision
	DecidedBy     id.UserID
	Responsible   string // full name of the responsible person
	Position      string
	Reason        string
	LegalBasis    string
	DecidedAt     time.Time
}

// Validate checks the protocol carries everything a formal decision needs.
func (p Protocol) Validate() error {
	if !p.Decision.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown decision kind")
	}
	if p.ApplicationID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "protocol requires an application id")
	}
	if p.Responsible == "" || p.Position == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "protocol requires responsible person and position")
	}
	if p.Reason == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "protocol requires a reason")
	}
	if p.LegalBasis == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "protocol requires a legal basis")
	}
	return nil
}
