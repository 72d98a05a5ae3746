package stack

import "errors"

var (
	Underflow = errors.New("stack underflow error")
)

// Stack is a LIFO of T. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	data []T
}

// New returns an empty stack with room for size elements before it grows.
func New[T any](size int) Stack[T] {
	return Stack[T]{data: make([]T, 0, size)}
}

// Push pushes an object onto the stack
func (s *Stack[T]) Push(obj T) {
	s.data = append(s.data, obj)
}

// Pop pops the top element from the stack or returns an Underflow error if there is None
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	top := len(s.data)
	if top == 0 {
		return zero, Underflow
	}
	ret := s.data[top-1]
	// clear the slot so the popped element can be collected
	s.data[top-1] = zero
	s.data = s.data[:top-1]
	return ret, nil
}

// Top returns the top element of the stack (without popping) or returns
// an Underflow error if there is none.
func (s *Stack[T]) Top() (T, error) {
	top := len(s.data)
	if top == 0 {
		var zero T
		return zero, Underflow
	}
	return s.data[top-1], nil
}

// Len returns the number of elements in the stack
func (s *Stack[T]) Len() int {
	return len(s.data)
}

// Range calls fn on each element from the top of the stack down, stopping
// early when fn returns false.
func (s *Stack[T]) Range(fn func(T) bool) {
	for i := len(s.data) - 1; i >= 0; i-- {
		if !fn(s.data[i]) {
			return
		}
	}
}
