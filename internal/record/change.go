package record

import "fmt"

// Outcome is the terminal result of a confirmed mutation request.
type Outcome int

const (
	// OutcomeCanceled means the confirmation was declined. It is a valid
	// result, not a failure.
	OutcomeCanceled Outcome = iota
	// OutcomeChanged means the confirmation was accepted and applied.
	OutcomeChanged
)

func (o Outcome) String() string {
	if o == OutcomeChanged {
		return "changed"
	}
	return "canceled"
}

// FieldName identifies a mutable record attribute.
type FieldName string

const (
	FieldNameName   FieldName = "name"
	FieldNameSalary FieldName = "salary"
)

// label is the capitalised form used in console messages.
func (n FieldName) label() string {
	switch n {
	case FieldNameName:
		return "Name"
	case FieldNameSalary:
		return "Salary"
	default:
		return string(n)
	}
}

// Change describes one change request and how it ended.
// From and To are rendered as the console shows them.
type Change struct {
	Field    FieldName
	From     string
	To       string
	Accepted bool
}

// Outcome reports OutcomeChanged or OutcomeCanceled.
func (c Change) Outcome() Outcome {
	if c.Accepted {
		return OutcomeChanged
	}
	return OutcomeCanceled
}

// String renders the before/after console message:
//
//	Name changed from Ann to Anne
//	Salary change canceled.
func (c Change) String() string {
	if c.Accepted {
		return fmt.Sprintf("%s changed from %s to %s", c.Field.label(), c.From, c.To)
	}
	return fmt.Sprintf("%s change canceled.", c.Field.label())
}
