package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/roster/internal/client/coordinator"
	"github.com/dmitrijs2005/roster/internal/roster"
)

// renderTable prints the student list the way the browse view shows it.
func renderTable(w io.Writer, st coordinator.State, visible []roster.Student) {
	fmt.Fprintf(w, "Student Records (%d total)\n", len(st.Students))
	if st.Query != "" {
		fmt.Fprintf(w, "Search: %q\n", st.Query)
	}

	switch {
	case st.Loading && len(st.Students) == 0:
		fmt.Fprintln(w, "Loading students...")
		return
	case len(st.Students) == 0:
		fmt.Fprintln(w, "No students registered yet")
		fmt.Fprintln(w, "Add your first student to get started!")
		return
	case len(visible) == 0:
		fmt.Fprintln(w, "No students found")
		fmt.Fprintln(w, "Try adjusting your search criteria.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tROLL NUMBER\tEMAIL\tDEPARTMENT\tID")
	for _, s := range visible {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.FullName(), s.RollNo, s.Email, s.Department, s.ID)
	}
	_ = tw.Flush()

	if st.Loading {
		fmt.Fprintln(w, "Loading students...")
	}
}
