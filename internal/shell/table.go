package shell

import (
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/staffbook/internal/directory"
)

const (
	headerID     = "Employee ID"
	headerName   = "Employee Name"
	headerSalary = "Employee Salary"
)

// RenderTable writes the employee listing. The id and name columns are
// left-aligned and padded to the widest value in the column plus spacing;
// headers do not count towards the width.
//
// rows is ranged over twice, so it must be restartable.
func RenderTable(w io.Writer, rows iter.Seq[directory.Row], spacing int, header lipgloss.Style) {
	maxID, maxName := 0, 0
	for row := range rows {
		maxID = max(maxID, utf8.RuneCountInString(row.ID))
		maxName = max(maxName, utf8.RuneCountInString(row.Name))
	}
	idWidth := maxID + spacing
	nameWidth := maxName + spacing

	fmt.Fprintln(w, header.Render(fmt.Sprintf("%-*s%-*s%-15s", idWidth, headerID, nameWidth, headerName, headerSalary)))
	for row := range rows {
		fmt.Fprintf(w, "%-*s%-*s%s\n", idWidth, row.ID, nameWidth, row.Name, row.Salary)
	}
}
