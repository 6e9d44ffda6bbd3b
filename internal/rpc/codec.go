package rpc

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/roster/internal/roster"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	keyID         = "id"
	keyFirstName  = "first_name"
	keyLastName   = "last_name"
	keyRollNo     = "roll_no"
	keyEmail      = "email"
	keyDepartment = "department"
	keyCreatedAt  = "created_at"
)

func fieldsMap(f roster.Fields) map[string]any {
	return map[string]any{
		keyFirstName:  f.FirstName,
		keyLastName:   f.LastName,
		keyRollNo:     f.RollNo,
		keyEmail:      f.Email,
		keyDepartment: f.Department,
	}
}

// FieldsToStruct encodes the payload of an Insert call.
func FieldsToStruct(f roster.Fields) (*structpb.Struct, error) {
	return structpb.NewStruct(fieldsMap(f))
}

// UpdateToStruct encodes the payload of an Update call. The id is sent as
// its decimal string so large bigint values survive the trip.
func UpdateToStruct(id int64, f roster.Fields) (*structpb.Struct, error) {
	m := fieldsMap(f)
	m[keyID] = fmt.Sprintf("%d", id)
	return structpb.NewStruct(m)
}

// StudentToStruct encodes a stored student.
func StudentToStruct(s roster.Student) (*structpb.Struct, error) {
	m := fieldsMap(s.Fields)
	m[keyID] = s.ID
	m[keyCreatedAt] = s.CreatedAt.UTC().Format(time.RFC3339Nano)
	return structpb.NewStruct(m)
}

// FieldsFromStruct decodes the five user fields. Missing keys decode as
// empty strings; a non-string value is an error.
func FieldsFromStruct(st *structpb.Struct) (roster.Fields, error) {
	var f roster.Fields
	for key, dst := range map[string]*string{
		keyFirstName:  &f.FirstName,
		keyLastName:   &f.LastName,
		keyRollNo:     &f.RollNo,
		keyEmail:      &f.Email,
		keyDepartment: &f.Department,
	} {
		v, err := stringField(st, key)
		if err != nil {
			return roster.Fields{}, err
		}
		*dst = v
	}
	return f, nil
}

// IDFromStruct returns the "id" member of an Update payload.
func IDFromStruct(st *structpb.Struct) (string, error) {
	return stringField(st, keyID)
}

// StudentFromStruct decodes a stored student.
func StudentFromStruct(st *structpb.Struct) (roster.Student, error) {
	f, err := FieldsFromStruct(st)
	if err != nil {
		return roster.Student{}, err
	}
	id, err := stringField(st, keyID)
	if err != nil {
		return roster.Student{}, err
	}

	s := roster.Student{ID: id, Fields: f}

	created, err := stringField(st, keyCreatedAt)
	if err != nil {
		return roster.Student{}, err
	}
	if created != "" {
		s.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return roster.Student{}, fmt.Errorf("field %s: %w", keyCreatedAt, err)
		}
	}
	return s, nil
}

// StudentsToList encodes the result of a List call.
func StudentsToList(students []roster.Student) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, 0, len(students))
	for _, s := range students {
		st, err := StudentToStruct(s)
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(st))
	}
	return &structpb.ListValue{Values: values}, nil
}

// StudentsFromList decodes the result of a List call, keeping its order.
func StudentsFromList(lv *structpb.ListValue) ([]roster.Student, error) {
	out := make([]roster.Student, 0, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		st := v.GetStructValue()
		if st == nil {
			return nil, fmt.Errorf("list item %d: not an object", i)
		}
		s, err := StudentFromStruct(st)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func stringField(st *structpb.Struct, key string) (string, error) {
	v, ok := st.GetFields()[key]
	if !ok {
		return "", nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", fmt.Errorf("field %s: expected string", key)
	}
}
