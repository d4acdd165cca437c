// Package stack provides an ordered, size-tracked LIFO container.
//
// A [Stack] keeps its elements in push order: index 0 is the bottom-most
// element and index Size()-1 is the top. Besides the usual Push, Pop and Peek
// it offers positional access via [Stack.Get] and an ordering predicate,
// [Stack.IsAscending], used to recognise a correctly stacked tower.
//
// Pop, Peek and Get on invalid positions return coded errors
// (EMPTY_STACK, INDEX_OUT_OF_RANGE) from pkg/errors. Callers are expected to
// gate these calls, so such an error signals a caller bug.
//
// A Stack is not safe for concurrent use.
package stack

import (
	"cmp"

	"github.com/matzehuels/hanoi/pkg/errors"
)

// Stack is a LIFO sequence of ordered values.
// The zero value is an empty stack ready to use.
type Stack[T cmp.Ordered] struct {
	items []T
}

// New returns a stack holding values, pushed in order (the last value ends up on top).
func New[T cmp.Ordered](values ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push appends v as the new top.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.Peek()
	if err != nil {
		return v, err
	}
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, errors.New(errors.ErrCodeEmptyStack, "stack is empty")
	}
	return s.items[len(s.items)-1], nil
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Get returns the element at index, counted from the bottom (0 = bottom-most).
func (s *Stack[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, errors.New(errors.ErrCodeIndexOutOfRange, "index %d out of range [0, %d)", index, len(s.items))
	}
	return s.items[index], nil
}

// IsAscending reports whether values strictly increase when read from the
// top down, i.e. every element is smaller than the one beneath it.
// Empty and single-element stacks are trivially ascending.
func (s *Stack[T]) IsAscending() bool {
	for i := 1; i < len(s.items); i++ {
		if s.items[i] >= s.items[i-1] {
			return false
		}
	}
	return true
}

// Values returns a copy of the elements from bottom to top.
func (s *Stack[T]) Values() []T {
	return append([]T(nil), s.items...)
}
