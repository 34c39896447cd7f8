package validated

import "strings"

// Kind identifies the validation backend that produced a failure payload.
// The error-handler registry keys its slots by kind, so each backend gets
// its own override without the pipeline knowing which backends exist.
type Kind string

const (
	// KindCustom is used for types implementing the Validatable interface.
	KindCustom Kind = "custom"
	// KindPlayground is used by the go-playground/validator backend.
	KindPlayground Kind = "playground"
	// KindOzzo is used by the ozzo-validation backend.
	KindOzzo Kind = "ozzo"
)

// ValidationError is a single field-level rule violation. Message is
// always set; Code and Params carry backend-specific structured context
// when the rule engine provides it. Values are treated as immutable once
// constructed.
type ValidationError struct {
	Field   string
	Message string
	Code    string
	Params  map[string]any
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ErrorTree maps field names to the validation failures recorded for
// them. The tree is finite and acyclic because it mirrors the structure
// of the validated type; field names within one level are unique by
// construction (map keys).
type ErrorTree map[string]Node

// Node is one entry in an ErrorTree. Exactly one of its fields is set:
// Errors for rule violations on the field itself, Fields for a
// struct-typed field, Items for a sequence-typed field keyed by element
// index. Each element of Items is itself a subtree; an element-level
// violation on a scalar element is recorded under the empty field name so
// its path stays "field[i]".
type Node struct {
	Errors []ValidationError
	Fields ErrorTree
	Items  map[int]ErrorTree
}

// Leaf builds a node holding rule violations for a single field.
func Leaf(errs ...ValidationError) Node {
	return Node{Errors: errs}
}

// Nested builds a node for a struct-typed field.
func Nested(fields ErrorTree) Node {
	return Node{Fields: fields}
}

// Indexed builds a node for a sequence-typed field.
func Indexed(items map[int]ErrorTree) Node {
	return Node{Items: items}
}

// Errors is the failure payload of one validation pass: the backend that
// produced it plus the errors in the backend's native shape. Flat-list
// backends fill List, tree-shaped backends fill Tree; both shapes feed
// the flattener. A registered error handler receives the payload as-is,
// unflattened.
type Errors struct {
	Kind Kind
	List []ValidationError
	Tree ErrorTree
}

// Flatten returns the payload as an ordered flat sequence. Tree payloads
// are walked depth-first (see Flatten); list payloads map one-to-one with
// depth 0 and the recorded field as the path.
func (e *Errors) Flatten() []FlattenedError {
	if e == nil {
		return nil
	}
	if e.Tree != nil {
		return Flatten(e.Tree)
	}
	out := make([]FlattenedError, 0, len(e.List))
	for i := range e.List {
		out = append(out, FlattenedError{Path: e.List[i].Field, Err: &e.List[i]})
	}
	return out
}

// Error implements the error interface with a single-line summary.
func (e *Errors) Error() string {
	flat := e.Flatten()
	if len(flat) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(flat))
	for _, fe := range flat {
		if fe.Path == "" {
			parts = append(parts, fe.Err.Message)
			continue
		}
		parts = append(parts, fe.Path+": "+fe.Err.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
