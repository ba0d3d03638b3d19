package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound    = errors.New("forum post not found")
	ErrItemNotFound    = errors.New("marketplace item not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// SchemaError means the store does not recognise a requested column or table.
type SchemaError struct {
	Table  string
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema: %s.%s not recognised: %v", e.Table, e.Column, e.Err)
	}
	return fmt.Sprintf("schema: %s not recognised: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// IsMissingColumn reports whether err is a SchemaError for table.column.
func IsMissingColumn(err error, table, column string) bool {
	var se *SchemaError
	if !errors.As(err, &se) {
		return false
	}
	return se.Table == table && se.Column == column
}

// StoreError wraps any other data-access failure. Op names the failed
// operation and doubles as the i18n key suffix for the user-facing message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ValidationError is a caller-side precondition failure, detected before any
// write. Key is an i18n message key.
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Key)
}

func NewValidationError(field, key string) *ValidationError {
	return &ValidationError{Field: field, Key: key}
}

var ErrSignInRequired = &ValidationError{Field: "session", Key: "auth.sign_in_required"}

// ParticipantError is returned when a conversation row was created but its
// participants could not be added. The conversation is left in place.
type ParticipantError struct {
	ConversationID uuid.UUID
	Err            error
}

func (e *ParticipantError) Error() string {
	return fmt.Sprintf("conversation %s created without participants: %v", e.ConversationID, e.Err)
}

func (e *ParticipantError) Unwrap() error { return e.Err }
