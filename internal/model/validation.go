package model

import "fmt"

// ValidationError describes a malformed record that reached the aggregator.
// It identifies the offending record so callers can report it instead of
// silently coercing or dropping the value.
type ValidationError struct {
	RecordType string
	RecordID   string
	Field      string
}

func (e *ValidationError) Error() string {
	if e.RecordID == "" {
		return fmt.Sprintf("invalid %s record: missing %s", e.RecordType, e.Field)
	}
	return fmt.Sprintf("invalid %s record %s: missing %s", e.RecordType, e.RecordID, e.Field)
}
