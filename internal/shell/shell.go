// Package shell is the interactive text menu in front of the directory.
//
// The shell owns all console I/O: it prompts, reads answers, turns the
// yes/no answer into a record.Confirm callback and reports outcomes. The
// directory and records never touch the console.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/staffbook/internal/directory"
	"github.com/roach88/staffbook/internal/logging"
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceView
	choiceEdit
	choiceDelete
	choiceExit
)

// Options configures a Shell.
type Options struct {
	// ConfirmToken accepts a confirmation when typed (case-insensitive).
	// Empty means "yes".
	ConfirmToken string

	// HeaderSpacing pads the id and name columns of the listing.
	HeaderSpacing int
}

// Shell runs the menu loop over a line-oriented input and an output writer.
type Shell struct {
	in      *bufio.Reader
	lines   chan inputLine
	readErr error
	out     io.Writer
	dir     *directory.Directory
	opts    Options
	heading lipgloss.Style
}

// New creates a shell over dir. Styling is resolved against out, so writers
// that are not terminals receive plain text.
func New(in io.Reader, out io.Writer, dir *directory.Directory, opts Options) *Shell {
	if opts.ConfirmToken == "" {
		opts.ConfirmToken = "yes"
	}
	renderer := lipgloss.NewRenderer(out)
	return &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		dir:     dir,
		opts:    opts,
		heading: renderer.NewStyle().Bold(true),
	}
}

// Run shows the menu until the user exits, input ends or ctx is canceled.
// Reaching the end of input is a normal exit and returns nil. Canceling ctx
// interrupts a pending prompt and returns ctx.Err().
//
// Run must be called at most once per Shell.
func (s *Shell) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Debug().Msg("shell started")

	done := make(chan struct{})
	defer close(done)
	s.lines = make(chan inputLine)
	go s.readLines(done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, ok := s.readLine(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				log.Debug().Msg("shell canceled")
				return err
			}
			log.Debug().Msg("input closed")
			return s.readErr
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println("Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case choiceAdd:
			s.addEmployee(ctx)
		case choiceView:
			s.viewEmployees(ctx)
		case choiceEdit:
			s.editEmployee(ctx)
		case choiceDelete:
			s.deleteEmployee(ctx)
		case choiceExit:
			s.println("Exiting...")
			log.Debug().Msg("shell exited")
			return nil
		default:
			s.println("Invalid choice. Please enter a number between 1 and 5.")
		}
	}
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(s.heading.Render("Employee Management System Menu:"))
	s.println("1. Add Employee")
	s.println("2. View Employees")
	s.println("3. Edit Employee")
	s.println("4. Delete Employee")
	s.println("5. Exit")
	s.println("Enter your choice:")
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
