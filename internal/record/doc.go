// Package record implements a single employee record with confirm-gated
// mutation.
//
// Each mutable attribute (name, salary) is a Field holding one of two
// states:
//
//	Unchanged{value}            initial state, never left except by an accepted change
//	Changed{value, previous}    after at least one accepted change
//
// A change request names the prospective value and a Confirm callback. The
// callback is invoked exactly once; only when it returns true does the field
// move to Changed with the old authoritative value kept as one step of
// history. A rejected request leaves the field untouched. There is no
// transition back to Unchanged.
//
// Records perform no I/O. Prompting a human is the caller's business: the
// Confirm callback is the only way a decision reaches the record.
package record
