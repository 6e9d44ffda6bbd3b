// Package roster holds the student record, its validation rules and the
// search filter shared by the client and the server.
package roster

import "time"

// Department names in display order.
const (
	DepartmentElectronics = "Electronics and Communication"
	DepartmentComputers   = "Computers"
	DepartmentMechanical  = "Mechanical and Automation"
)

var departments = []string{
	DepartmentElectronics,
	DepartmentComputers,
	DepartmentMechanical,
}

// Departments returns a copy of the allowed department names.
func Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}

// IsDepartment reports whether s is one of the allowed departments.
func IsDepartment(s string) bool {
	for _, d := range departments {
		if d == s {
			return true
		}
	}
	return false
}

// Fields are the user-supplied attributes of a student.
type Fields struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	RollNo     string `json:"roll_no"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Student is a persisted record.
type Student struct {
	ID string `json:"id"`
	Fields
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins first and last name with a space.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
