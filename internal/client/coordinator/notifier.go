package coordinator

import "context"

// Notifier shows short-lived user notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Toast texts.
const (
	MsgFixValidation = "Please fix the validation errors"
	MsgAdded         = "Student added successfully!"
	MsgUpdated       = "Student information updated successfully!"
	MsgSaveFailed    = "Failed to save student information"
	MsgDeleted       = "Student deleted successfully!"
	MsgDeleteFailed  = "Failed to delete student"
	MsgLoadFailed    = "Failed to load students"
)
