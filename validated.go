package validated

import "fmt"

// Validated wraps a value that has passed validation. It carries no
// behavior of its own: it exists so that handler signatures can prove, at
// compile time, that the request value went through a validation pass
// before application code touched it.
//
// The wrapper compares as its inner value (for comparable T) and prints as
// Validated(<inner value>).
type Validated[T any] struct {
	value T
}

// New wraps an already-validated value. It is intended for tests and for
// code paths that construct request values outside the extraction
// pipeline; Extract is the only place the framework itself creates one.
func New[T any](value T) Validated[T] {
	return Validated[T]{value: value}
}

// Value returns a copy of the inner value.
func (v Validated[T]) Value() T {
	return v.value
}

// Ptr returns a pointer to the inner value for reading fields without a
// copy or mutating the value in place.
func (v *Validated[T]) Ptr() *T {
	return &v.value
}

func (v Validated[T]) String() string {
	return fmt.Sprintf("Validated(%+v)", v.value)
}
