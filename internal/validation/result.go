// Package validation implements field-level and structural checks for
// application data. Validators return a Result for expected-invalid input
// and reserve Go errors for caller-contract violations (nil entities),
// so business failures never surface as errors.
package validation

// Result carries a validator verdict. Error holds exactly one message from
// the validator's closed message set when IsValid is false.
type Result struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

func ok() Result { return Result{IsValid: true} }

func fail(msg string) Result { return Result{IsValid: false, Error: msg} }
