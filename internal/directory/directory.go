// Package directory holds the in-memory, insertion-ordered collection of
// employee records for the lifetime of a process.
//
// The directory owns its records exclusively and is accessed sequentially
// by a single caller; it does no locking. All field mutation is delegated to
// record.Record, which runs the confirmation exchange.
package directory

import (
	"iter"
	"slices"
	"strings"

	"github.com/roach88/staffbook/internal/record"
)

// Outcome is the terminal result of a confirmed removal.
type Outcome int

const (
	// Canceled means the confirmation was declined and nothing changed.
	Canceled Outcome = iota
	// Removed means the record was deleted.
	Removed
)

func (o Outcome) String() string {
	if o == Removed {
		return "removed"
	}
	return "canceled"
}

// Row is one line of a listing, already resolved to view values.
type Row struct {
	ID     string
	Name   string
	Salary string
}

// Option configures a Directory.
type Option func(*Directory)

// WithDuplicateIDs accepts records whose id is already present. Lookups then
// act on the first match in insertion order and later duplicates cannot be
// reached by id.
func WithDuplicateIDs() Option {
	return func(d *Directory) { d.allowDuplicates = true }
}

// Directory is an ordered collection of records keyed by id.
type Directory struct {
	records         []*record.Record
	allowDuplicates bool
}

// New returns an empty directory.
func New(opts ...Option) *Directory {
	d := &Directory{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}

// Add appends r. It fails with DUPLICATE_ID when a record with the same id
// exists, unless the directory was built WithDuplicateIDs.
func (d *Directory) Add(r *record.Record) error {
	if r == nil {
		return &Error{Code: ErrCodeInvalidRecord, Message: "record is nil"}
	}
	if !d.allowDuplicates && d.indexOf(r.ID()) >= 0 {
		return newDuplicateID(r.ID())
	}
	d.records = append(d.records, r)
	return nil
}

// FindByID returns the first record with the given id.
func (d *Directory) FindByID(id string) (*record.Record, error) {
	i := d.indexOf(id)
	if i < 0 {
		return nil, newNotFound(id)
	}
	return d.records[i], nil
}

// RemoveByID deletes the record with the given id once confirm accepts.
// confirm is not called when the id is unknown.
func (d *Directory) RemoveByID(id string, confirm record.Confirm) (Outcome, error) {
	i := d.indexOf(id)
	if i < 0 {
		return Canceled, newNotFound(id)
	}
	if confirm == nil || !confirm() {
		return Canceled, nil
	}
	d.records = slices.Delete(d.records, i, i+1)
	return Removed, nil
}

// ParseField maps a user-supplied field name to a record field.
// Matching is case-insensitive.
func ParseField(field string) (record.FieldName, error) {
	switch strings.ToLower(field) {
	case string(record.FieldNameName):
		return record.FieldNameName, nil
	case string(record.FieldNameSalary):
		return record.FieldNameSalary, nil
	}
	return "", newInvalidField(field)
}

// EditField locates the record and dispatches to its confirm-gated setter.
//
// value must be a string for "name" and a float64 (or int) for "salary".
// The lookup happens first, so an unknown id reports NOT_FOUND regardless of
// the field.
func (d *Directory) EditField(id, field string, value any, confirm record.Confirm) (record.Change, error) {
	r, err := d.FindByID(id)
	if err != nil {
		return record.Change{}, err
	}
	name, err := ParseField(field)
	if err != nil {
		return record.Change{}, err
	}

	switch name {
	case record.FieldNameName:
		s, ok := value.(string)
		if !ok {
			return record.Change{}, newInvalidValue(id, field, value)
		}
		return r.RequestNameChange(s, confirm), nil
	default:
		amount, ok := toAmount(value)
		if !ok {
			return record.Change{}, newInvalidValue(id, field, value)
		}
		return r.RequestSalaryChange(amount, confirm), nil
	}
}

// ListAll returns the records as view rows in insertion order.
//
// The sequence is lazy and restartable: each range over it reads the
// directory as it is at that moment. An empty directory returns
// ErrNoRecords instead of an empty sequence.
func (d *Directory) ListAll() (iter.Seq[Row], error) {
	if len(d.records) == 0 {
		return nil, ErrNoRecords
	}
	return func(yield func(Row) bool) {
		for _, r := range d.records {
			row := Row{ID: r.ID(), Name: r.ViewName(), Salary: r.ViewSalary()}
			if !yield(row) {
				return
			}
		}
	}, nil
}

// Records yields the records themselves in insertion order, duplicates
// included. Unlike ListAll it yields nothing for an empty directory.
func (d *Directory) Records() iter.Seq[*record.Record] {
	return func(yield func(*record.Record) bool) {
		for _, r := range d.records {
			if !yield(r) {
				return
			}
		}
	}
}

func (d *Directory) indexOf(id string) int {
	return slices.IndexFunc(d.records, func(r *record.Record) bool {
		return r.ID() == id
	})
}

func toAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
