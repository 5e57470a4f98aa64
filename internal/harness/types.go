package harness

import "github.com/roach88/staffbook/internal/record"

// RecordSnapshot is the final state of one record after a scenario.
type RecordSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Salary   string `json:"salary"`
	Describe string `json:"describe"`
}

func snapshotOf(r *record.Record) RecordSnapshot {
	return RecordSnapshot{
		ID:       r.ID(),
		Name:     r.ViewName(),
		Salary:   r.ViewSalary(),
		Describe: r.Describe(),
	}
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Transcript is everything the shell wrote to its output.
	Transcript string `json:"transcript"`

	// Records is the final directory content in insertion order.
	Records []RecordSnapshot `json:"records"`

	// Log holds the session's structured log lines.
	Log string `json:"-"`

	// Errors contains assertion failure messages.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Records: []RecordSnapshot{},
		Errors:  []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// find returns the first record with id.
func (r *Result) find(id string) (RecordSnapshot, bool) {
	for _, rec := range r.Records {
		if rec.ID == id {
			return rec, true
		}
	}
	return RecordSnapshot{}, false
}
