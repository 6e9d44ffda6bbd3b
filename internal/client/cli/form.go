package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/roster/internal/roster"
)

var fieldLabels = map[roster.Field]string{
	roster.FieldFirstName:  "First Name *",
	roster.FieldLastName:   "Last Name *",
	roster.FieldRollNumber: "Roll Number *",
	roster.FieldEmail:      "Email *",
	roster.FieldDepartment: "Department *",
}

type formAction int

const (
	actionSubmit formAction = iota
	actionCancel
)

// runForm prompts for every field, offering the current values as defaults,
// then asks whether to submit. Field errors from a previous attempt are
// printed next to the affected prompts.
func runForm(reader *bufio.Reader, w io.Writer, editing bool, f roster.Fields, errs roster.ValidationErrors) (roster.Fields, formAction, error) {
	if editing {
		fmt.Fprintln(w, "Edit Student Information")
		fmt.Fprintln(w, "Update the student's information below")
	} else {
		fmt.Fprintln(w, "Add New Student")
		fmt.Fprintln(w, "Enter the student's details to add them to the system")
	}

	text := map[roster.Field]*string{
		roster.FieldFirstName:  &f.FirstName,
		roster.FieldLastName:   &f.LastName,
		roster.FieldRollNumber: &f.RollNo,
		roster.FieldEmail:      &f.Email,
	}
	for _, field := range roster.FieldOrder {
		printFieldError(w, errs, field)
		if field == roster.FieldDepartment {
			dept, err := GetChoice(reader, fieldLabels[field], roster.Departments(), f.Department, w)
			if err != nil {
				return f, actionCancel, err
			}
			f.Department = dept
			continue
		}
		dst := text[field]
		v, err := GetTextWithDefault(reader, fieldLabels[field], *dst, w)
		if err != nil {
			return f, actionCancel, err
		}
		*dst = v
	}

	label := "Add Student"
	if editing {
		label = "Update Student"
	}
	for {
		s, err := GetSimpleText(reader, fmt.Sprintf("%s? (submit / cancel)", label), w)
		if err != nil {
			return f, actionCancel, err
		}
		switch strings.ToLower(s) {
		case "", "s", "submit":
			return f, actionSubmit, nil
		case "c", "cancel":
			return f, actionCancel, nil
		}
		fmt.Fprintln(w, "Please type submit or cancel")
	}
}

func printFieldError(w io.Writer, errs roster.ValidationErrors, field roster.Field) {
	if msg, ok := errs[field]; ok {
		fmt.Fprintf(w, "  ! %s\n", msg)
	}
}
