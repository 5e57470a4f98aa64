package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/staffbook/internal/record"
)

type inputLine struct {
	text string
	err  error
}

// readLines feeds s.lines until the input ends or done is closed. Lines
// have no length limit. The goroutine stays blocked in the underlying
// reader until it returns, even after done is closed.
func (s *Shell) readLines(done <-chan struct{}) {
	send := func(l inputLine) bool {
		select {
		case s.lines <- l:
			return true
		case <-done:
			return false
		}
	}

	for {
		text, err := s.in.ReadString('\n')
		if text != "" {
			if !send(inputLine{text: text}) {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !send(inputLine{err: err}) {
				return
			}
			close(s.lines)
			return
		}
	}
}

// readLine returns the next input line without its line terminator,
// NFC-normalized so visually identical ids compare equal. ok is false at
// end of input, on a read error or once ctx is canceled.
func (s *Shell) readLine(ctx context.Context) (line string, ok bool) {
	select {
	case <-ctx.Done():
		return "", false
	case l, open := <-s.lines:
		if !open {
			return "", false
		}
		if l.err != nil {
			s.readErr = l.err
			return "", false
		}
		text := strings.TrimSuffix(strings.TrimSuffix(l.text, "\n"), "\r")
		return norm.NFC.String(text), true
	}
}

// ask prints prompt and reads one answer.
func (s *Shell) ask(ctx context.Context, prompt string) (string, bool) {
	s.println(prompt)
	return s.readLine(ctx)
}

// confirmer returns a callback that prints prompt and accepts only the
// configured token. End of input or cancellation counts as a refusal.
func (s *Shell) confirmer(ctx context.Context, prompt string) record.Confirm {
	return func() bool {
		answer, ok := s.ask(ctx, fmt.Sprintf("%s (%s/no)", prompt, s.opts.ConfirmToken))
		if !ok {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(answer), s.opts.ConfirmToken)
	}
}

// parseAmount parses a salary typed at the prompt. NaN and infinities are
// rejected along with malformed numbers.
func parseAmount(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
