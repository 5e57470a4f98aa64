package record

import (
	"fmt"
	"strconv"

	"github.com/roach88/staffbook/internal/money"
)

// Confirm is a synchronous yes/no decision supplied by the caller for each
// mutating request.
type Confirm func() bool

// Record is one employee: an immutable id plus confirm-gated name and
// salary fields.
//
// A Record is owned by a single caller and is not safe for concurrent use.
type Record struct {
	id     string
	name   Field[string]
	salary Field[float64]
}

// New creates a record with both fields Unchanged.
// Inputs are taken as given; validation belongs to the caller.
func New(id, name string, salary float64) *Record {
	return &Record{
		id:     id,
		name:   NewField(name),
		salary: NewField(salary),
	}
}

// ID returns the record identifier.
func (r *Record) ID() string { return r.id }

// Name returns the current name.
func (r *Record) Name() string { return r.name.View() }

// Salary returns the current salary.
func (r *Record) Salary() float64 { return r.salary.View() }

// NameField exposes the name field state for inspection.
func (r *Record) NameField() Field[string] { return r.name }

// SalaryField exposes the salary field state for inspection.
func (r *Record) SalaryField() Field[float64] { return r.salary }

// RequestNameChange asks confirm whether the name should move from its
// current value to newName. confirm is called exactly once; a nil confirm
// counts as a refusal.
func (r *Record) RequestNameChange(newName string, confirm Confirm) Change {
	c := Change{
		Field: FieldNameName,
		From:  r.name.View(),
		To:    newName,
	}
	if !decide(confirm) {
		return c
	}
	r.name.accept(newName)
	c.Accepted = true
	return c
}

// RequestSalaryChange is RequestNameChange for the salary field.
func (r *Record) RequestSalaryChange(newSalary float64, confirm Confirm) Change {
	c := Change{
		Field: FieldNameSalary,
		From:  PlainAmount(r.salary.View()),
		To:    PlainAmount(newSalary),
	}
	if !decide(confirm) {
		return c
	}
	r.salary.accept(newSalary)
	c.Accepted = true
	return c
}

// ViewName returns the name considered authoritative for display.
func (r *Record) ViewName() string {
	if r.name.State() == Changed {
		return r.name.View()
	}
	return r.name.Previous()
}

// ViewSalary returns the authoritative salary formatted as currency,
// e.g. "$1,234.50".
func (r *Record) ViewSalary() string {
	if r.salary.State() == Changed {
		return money.Currency(r.salary.View())
	}
	return money.Currency(r.salary.Previous())
}

// Describe renders a diagnostic line:
//
//	Employee{id='E1', name='Ann', salary=50,000.00-}
func (r *Record) Describe() string {
	return fmt.Sprintf("Employee{id='%s', name='%s', salary=%s}",
		r.id, r.name.View(), money.Diagnostic(r.salary.View()))
}

// String implements fmt.Stringer via Describe.
func (r *Record) String() string {
	return r.Describe()
}

// PlainAmount renders a salary without grouping or padding, as typed at
// the prompt ("52000", "1234.5").
func PlainAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func decide(confirm Confirm) bool {
	if confirm == nil {
		return false
	}
	return confirm()
}
