package engine

import "fmt"

// ValidationKind classifies caller mistakes that must be surfaced, never
// silently fixed.
type ValidationKind string

const (
	InvalidRange     ValidationKind = "invalid_range"
	InvalidSortField ValidationKind = "invalid_sort_field"
	InvalidDimension ValidationKind = "invalid_dimension"
)

// ValidationError reports malformed or contradictory filter input.
type ValidationError struct {
	Kind   ValidationKind
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed (%s) on %q: %s", e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("validation failed (%s): %s", e.Kind, e.Detail)
}

// ExecutionKind classifies failures of the backing store.
type ExecutionKind string

const StoreUnavailable ExecutionKind = "store_unavailable"

// ExecutionError wraps a store failure. It propagates unchanged; the engine
// never retries or degrades to a partial result.
type ExecutionError struct {
	Kind ExecutionKind
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("query execution failed (%s): %v", e.Kind, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
