package interpreter

import (
	"fmt"
	"strings"
)

// Stack is the machine's integer stack. The last element is the top.
type Stack struct {
	items []int64
}

// NewStack returns a stack holding values, bottom first.
func NewStack(values ...int64) *Stack {
	return &Stack{items: append([]int64(nil), values...)}
}

func (s *Stack) Len() int {
	return len(s.items)
}

func (s *Stack) Push(v ...int64) {
	s.items = append(s.items, v...)
}

// Pop removes and returns the top value. ok is false on underflow.
func (s *Stack) Pop() (v int64, ok bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	v = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Pop2 removes the top two values, returning the top as a and the one
// below it as b. On underflow the stack is left untouched.
func (s *Stack) Pop2() (a, b int64, ok bool) {
	n := len(s.items)
	if n < 2 {
		return 0, 0, false
	}
	a, b = s.items[n-1], s.items[n-2]
	s.items = s.items[:n-2]
	return a, b, true
}

// Roll rotates the top depth values by count positions; a positive count
// buries the top value count positions deep. It reports false, changing
// nothing, when depth exceeds the stack.
func (s *Stack) Roll(depth, count int64) bool {
	if depth <= 0 || depth > int64(len(s.items)) {
		return false
	}
	count = floorMod(count, depth)
	if count == 0 {
		return true
	}
	window := s.items[int64(len(s.items))-depth:]
	rolled := make([]int64, 0, depth)
	rolled = append(rolled, window[depth-count:]...)
	rolled = append(rolled, window[:depth-count]...)
	copy(window, rolled)
	return true
}

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []int64 {
	return append([]int64{}, s.items...)
}

func (s *Stack) String() string {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
