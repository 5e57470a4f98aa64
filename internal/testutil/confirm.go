package testutil

import "sync"

// ScriptedConfirmer answers confirmation requests from a fixed script and
// records how many times it was asked.
//
// This lets tests assert both the decision path and the "invoked exactly
// once" contract of confirm-gated operations.
//
// Thread-safety: ScriptedConfirmer is safe for concurrent use via internal mutex.
type ScriptedConfirmer struct {
	mu      sync.Mutex
	answers []bool
	calls   int
}

// NewScriptedConfirmer creates a confirmer that returns answers in order.
//
// Example:
//
//	c := NewScriptedConfirmer(true, false)
//	c.Confirm() // true
//	c.Confirm() // false
//	c.Confirm() // panic: all answers exhausted
func NewScriptedConfirmer(answers ...bool) *ScriptedConfirmer {
	return &ScriptedConfirmer{answers: answers}
}

// Confirm returns the next scripted answer.
//
// Panics if the script is exhausted, which catches a test whose code path
// asks for more confirmations than expected.
func (c *ScriptedConfirmer) Confirm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.calls >= len(c.answers) {
		panic("ScriptedConfirmer: all answers exhausted")
	}
	answer := c.answers[c.calls]
	c.calls++
	return answer
}

// Calls returns how many times Confirm has been invoked.
func (c *ScriptedConfirmer) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Yes returns a confirmation callback that always accepts.
func Yes() func() bool { return func() bool { return true } }

// No returns a confirmation callback that always declines.
func No() func() bool { return func() bool { return false } }
