package roster

import "strings"

// Filter returns the students whose first name, last name, roll number, email
// or department contains query, ignoring case. The input is not modified.
func Filter(students []Student, query string) []Student {
	out := make([]Student, 0, len(students))
	if query == "" {
		return append(out, students...)
	}

	q := strings.ToLower(query)
	for _, s := range students {
		if matches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s Student, q string) bool {
	for _, v := range []string{s.FirstName, s.LastName, s.RollNo, s.Email, s.Department} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
