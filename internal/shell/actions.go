package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/staffbook/internal/directory"
	"github.com/roach88/staffbook/internal/logging"
	"github.com/roach88/staffbook/internal/record"
)

func (s *Shell) addEmployee(ctx context.Context) {
	log := logging.FromContext(ctx)

	id, ok := s.ask(ctx, "Enter employee ID:")
	if !ok {
		return
	}
	name, ok := s.ask(ctx, "Enter employee name:")
	if !ok {
		return
	}
	salaryText, ok := s.ask(ctx, "Enter employee salary:")
	if !ok {
		return
	}
	salary, ok := parseAmount(salaryText)
	if !ok {
		s.println("Invalid input for salary. Please enter a number.")
		return
	}

	if err := s.dir.Add(record.New(id, name, salary)); err != nil {
		if directory.IsDuplicateID(err) {
			s.printf("Employee with ID %s already exists.", id)
		} else {
			s.printf("Could not add employee: %v", err)
		}
		log.Warn().Err(err).Str("id", id).Msg("add rejected")
		return
	}
	s.println("Employee added successfully.")
	log.Info().Str("id", id).Str("name", name).Float64("salary", salary).Msg("employee added")
}

func (s *Shell) viewEmployees(ctx context.Context) {
	rows, err := s.dir.ListAll()
	if errors.Is(err, directory.ErrNoRecords) {
		s.println("No employees found.")
		return
	}
	RenderTable(s.out, rows, s.opts.HeaderSpacing, s.heading)
	logging.FromContext(ctx).Debug().Int("count", s.dir.Len()).Msg("employees listed")
}

func (s *Shell) editEmployee(ctx context.Context) {
	log := logging.FromContext(ctx)

	id, ok := s.ask(ctx, "Enter employee ID to edit:")
	if !ok {
		return
	}
	r, err := s.dir.FindByID(id)
	if err != nil {
		s.println("Employee not found.")
		return
	}

	choice, ok := s.ask(ctx, "What would you like to edit? Enter 'name' or 'salary':")
	if !ok {
		return
	}
	field, err := directory.ParseField(strings.TrimSpace(choice))
	if err != nil {
		s.println("Invalid choice. Please enter 'name' or 'salary'.")
		return
	}

	var (
		value  any
		prompt string
	)
	switch field {
	case record.FieldNameName:
		newName, ok := s.ask(ctx, fmt.Sprintf("Enter new name for %s:", r.Name()))
		if !ok {
			return
		}
		value = newName
		prompt = fmt.Sprintf("Are you sure you want to change the name from %s to %s?", r.Name(), newName)
	case record.FieldNameSalary:
		text, ok := s.ask(ctx, fmt.Sprintf("Enter new salary for %s:", r.Name()))
		if !ok {
			return
		}
		amount, ok := parseAmount(text)
		if !ok {
			s.println("Invalid input for salary. Please enter a number.")
			return
		}
		value = amount
		prompt = fmt.Sprintf("Are you sure you want to change the salary from %s to %s?",
			record.PlainAmount(r.Salary()), record.PlainAmount(amount))
	}

	change, err := s.dir.EditField(id, string(field), value, s.confirmer(ctx, prompt))
	if err != nil {
		s.printf("Could not edit employee: %v", err)
		log.Error().Err(err).Str("id", id).Msg("edit failed")
		return
	}

	s.println(change.String())
	if change.Accepted {
		s.printf("Employee %s updated successfully.", field)
	}
	log.Info().
		Str("id", id).
		Str("field", string(change.Field)).
		Str("from", change.From).
		Str("to", change.To).
		Str("outcome", change.Outcome().String()).
		Msg("employee edited")
}

func (s *Shell) deleteEmployee(ctx context.Context) {
	id, ok := s.ask(ctx, "Enter employee ID to delete:")
	if !ok {
		return
	}
	r, err := s.dir.FindByID(id)
	if err != nil {
		s.println("Employee not found.")
		return
	}

	prompt := fmt.Sprintf("Are you sure you want to delete %s?", r.Name())
	outcome, err := s.dir.RemoveByID(id, s.confirmer(ctx, prompt))
	if err != nil {
		s.println("Employee not found.")
		return
	}

	if outcome == directory.Removed {
		s.println("Employee deleted successfully.")
	} else {
		s.println("Deletion canceled.")
	}
	logging.FromContext(ctx).Info().Str("id", id).Str("outcome", outcome.String()).Msg("employee delete")
}
