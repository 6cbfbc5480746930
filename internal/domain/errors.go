package domain

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError means the referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ValidationError means the input payload is malformed or empty. It is always
// raised before any mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidStateError means a workflow transition was attempted from a state
// that does not permit it. State carries the current state for diagnostics.
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: current state is %s", e.Op, e.State)
}

// PortalReadinessError means a publish was blocked because one or more portals
// failed validation. Failures maps each failing portal to its missing fields.
type PortalReadinessError struct {
	Failures map[PortalName][]string
}

func (e *PortalReadinessError) Error() string {
	portals := make([]string, 0, len(e.Failures))
	for portal, fields := range e.Failures {
		portals = append(portals, fmt.Sprintf("%s (missing: %s)", portal, strings.Join(fields, ", ")))
	}
	sort.Strings(portals)
	return "property is not ready for publishing: " + strings.Join(portals, "; ")
}
