package interpreter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

var ErrDivisionByZero = errors.New("division by zero")

// Machine is the stack machine the commands run on. It owns the stack and
// the pointer, which the pointer and switch commands modify.
type Machine struct {
	Stack   *Stack
	Pointer Pointer

	io  IO
	log *zap.Logger
}

// NewMachine returns a machine with an empty stack and the initial pointer.
// A nil logger disables tracing.
func NewMachine(io IO, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{Stack: NewStack(), Pointer: NewPointer(), io: io, log: log}
}

// Exec runs op. size is the number of codels in the block just exited and
// is the operand of push. Stack underflow and bad input leave the machine
// unchanged; only division by zero and output failures are errors, and
// those leave the stack as it was before the call.
func (m *Machine) Exec(op Opcode, size int) error {
	s := m.Stack
	switch op {
	case OpPass:
		m.log.Debug("PASS")
	case OpPush:
		s.Push(int64(size))
		m.log.Debug("PUSH", zap.Int("value", size))
	case OpPop:
		if v, ok := m.pop(); ok {
			m.log.Debug("POP", zap.Int64("value", v))
		}
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo, OpGreater:
		return m.binary(op)
	case OpNot:
		if a, ok := m.pop(); ok {
			s.Push(boolInt(a == 0))
			m.log.Debug("NOT", zap.Int64("a", a))
		}
	case OpPointer:
		if a, ok := m.pop(); ok {
			m.Pointer.Rotate(a)
			m.log.Debug("POINTER", zap.Int64("turns", a), zap.Stringer("dp", m.Pointer.DP))
		}
	case OpSwitch:
		if a, ok := m.pop(); ok {
			if a%2 != 0 {
				m.Pointer.Flip()
			}
			m.log.Debug("SWITCH", zap.Int64("value", a), zap.Stringer("cc", m.Pointer.CC))
		}
	case OpDuplicate:
		if a, ok := m.pop(); ok {
			s.Push(a, a)
			m.log.Debug("DUPLICATE", zap.Int64("value", a))
		}
	case OpRoll:
		count, depth, ok := m.pop2()
		if !ok {
			return nil
		}
		if !s.Roll(depth, count) {
			m.log.Debug("ROLL skipped", zap.Int64("depth", depth), zap.Int64("count", count), zap.Int("stack", s.Len()))
			return nil
		}
		m.log.Debug("ROLL", zap.Int64("depth", depth), zap.Int64("count", count))
	case OpInNumber:
		if n, ok := m.io.ReadNumber(); ok {
			s.Push(n)
			m.log.Debug("IN_NUMBER", zap.Int64("value", n))
		} else {
			m.log.Debug("IN_NUMBER: no valid input")
		}
	case OpInChar:
		if r, ok := m.io.ReadChar(); ok {
			s.Push(int64(r))
			m.log.Debug("IN_CHAR", zap.Int64("value", int64(r)))
		} else {
			m.log.Debug("IN_CHAR: no valid input")
		}
	case OpOutNumber:
		a, ok := m.pop()
		if !ok {
			return nil
		}
		if err := m.io.WriteNumber(a); err != nil {
			s.Push(a)
			return fmt.Errorf("out_number: %w", err)
		}
		m.log.Debug("OUT_NUMBER", zap.Int64("value", a))
	case OpOutChar:
		a, ok := m.pop()
		if !ok {
			return nil
		}
		if a < 0 || a > utf8.MaxRune || !utf8.ValidRune(rune(a)) {
			m.log.Debug("OUT_CHAR: not a character", zap.Int64("value", a))
			return nil
		}
		if err := m.io.WriteChar(rune(a)); err != nil {
			s.Push(a)
			return fmt.Errorf("out_char: %w", err)
		}
		m.log.Debug("OUT_CHAR", zap.Int64("value", a))
	default:
		return fmt.Errorf("unknown opcode %v", op)
	}
	return nil
}

// binary runs the commands that pop a then b and push one result.
func (m *Machine) binary(op Opcode) error {
	a, b, ok := m.pop2()
	if !ok {
		return nil
	}
	var r int64
	switch op {
	case OpAdd:
		r = b + a
	case OpSubtract:
		r = b - a
	case OpMultiply:
		r = b * a
	case OpDivide, OpModulo:
		if a == 0 {
			m.Stack.Push(b, a)
			return fmt.Errorf("%v %d by %d: %w", op, b, a, ErrDivisionByZero)
		}
		if op == OpDivide {
			r = floorDiv(b, a)
		} else {
			r = floorMod(b, a)
		}
	case OpGreater:
		r = boolInt(b > a)
	}
	m.Stack.Push(r)
	m.log.Debug(op.String(), zap.Int64("b", b), zap.Int64("a", a), zap.Int64("result", r))
	return nil
}

func (m *Machine) pop() (int64, bool) {
	v, ok := m.Stack.Pop()
	if !ok {
		m.log.Debug("stack underflow")
	}
	return v, ok
}

func (m *Machine) pop2() (a, b int64, ok bool) {
	a, b, ok = m.Stack.Pop2()
	if !ok {
		m.log.Debug("stack underflow", zap.Int("have", m.Stack.Len()))
	}
	return a, b, ok
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(b, a int64) int64 {
	q := b / a
	if b%a != 0 && (b < 0) != (a < 0) {
		q--
	}
	return q
}

// floorMod returns b mod a with the sign of a.
func floorMod(b, a int64) int64 {
	r := b % a
	if r != 0 && (r < 0) != (a < 0) {
		r += a
	}
	return r
}
