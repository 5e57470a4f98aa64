package harness

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/roach88/staffbook/internal/directory"
	"github.com/roach88/staffbook/internal/logging"
	"github.com/roach88/staffbook/internal/session"
	"github.com/roach88/staffbook/internal/shell"
)

// DefaultHeaderSpacing matches the interactive default.
const DefaultHeaderSpacing = 30

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh, empty directory. Execution flow:
//  1. Build the directory and a shell over the scripted input
//  2. Run the shell to completion with a debug-level logger on a buffer
//  3. Snapshot the directory
//  4. Evaluate assertions
//
// The returned error reports a failure to execute; assertion failures are
// reported through Result.Pass and Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	var opts []directory.Option
	if scenario.AllowDuplicateIDs {
		opts = append(opts, directory.WithDuplicateIDs())
	}
	dir := directory.New(opts...)

	spacing := DefaultHeaderSpacing
	if scenario.HeaderSpacing != nil {
		spacing = *scenario.HeaderSpacing
	}

	logBuf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{Level: "debug", Writer: logBuf})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	token := session.NewFixedGenerator(sessionTokens(scenario)...).Generate()
	ctx = logging.WithSession(ctx, logger.Logger, token)

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(scenario.Input, "\n") + "\n")
	sh := shell.New(in, out, dir, shell.Options{
		ConfirmToken:  scenario.ConfirmToken,
		HeaderSpacing: spacing,
	})
	if err := sh.Run(ctx); err != nil {
		return nil, fmt.Errorf("shell failed: %w", err)
	}

	result := NewResult()
	result.Transcript = out.String()
	result.Log = logBuf.String()
	result.Records = snapshot(dir)

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func sessionTokens(s *Scenario) []string {
	if s.Session == "" {
		return nil
	}
	return []string{s.Session}
}

func snapshot(dir *directory.Directory) []RecordSnapshot {
	out := []RecordSnapshot{}
	for r := range dir.Records() {
		out = append(out, snapshotOf(r))
	}
	return out
}
