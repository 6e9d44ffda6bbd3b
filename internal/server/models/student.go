// Package models holds the server's row types.
package models

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/roster/internal/roster"
)

// Student is a row of the "Students" table.
type Student struct {
	ID int64
	roster.Fields
	CreatedAt time.Time
}

// Roster converts the row into the shared record type. The bigint id is
// rendered as its decimal string.
func (s Student) Roster() roster.Student {
	return roster.Student{
		ID:        strconv.FormatInt(s.ID, 10),
		Fields:    s.Fields,
		CreatedAt: s.CreatedAt,
	}
}
