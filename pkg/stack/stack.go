package stack

// Stack is a LIFO of values. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	a []T
}

// Push adds an element to the top of the stack
func (s *Stack[T]) Push(elm T) {
	s.a = append(s.a, elm)
}

// Pop removes and returns the top element of the stack
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.a) == 0 {
		return zero, false
	}

	elm := s.a[len(s.a)-1]
	s.a[len(s.a)-1] = zero
	s.a = s.a[:len(s.a)-1]

	return elm, true
}

// Peek returns the top element of the stack without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.a) == 0 {
		var zero T
		return zero, false
	}

	return s.a[len(s.a)-1], true
}

// Top returns a pointer to the top element so it can be updated in place.
// It returns nil when the stack is empty.
func (s *Stack[T]) Top() *T {
	if len(s.a) == 0 {
		return nil
	}
	return &s.a[len(s.a)-1]
}

// Size returns the number of elements on the stack
func (s *Stack[T]) Size() int {
	return len(s.a)
}
