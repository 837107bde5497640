package interpreter

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
)

var ErrStartBlack = errors.New("program starts on a black codel")

// maxAttempts is how many blocked moves a step tolerates before the
// program is trapped.
const maxAttempts = 8

// Outcome is the result of a single step.
type Outcome int

const (
	// Advanced means the pointer moved into a new block.
	Advanced Outcome = iota + 1
	// Trapped means no exit could be found; the program has ended.
	Trapped
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Trapped:
		return "trapped"
	}
	return "none"
}

// StopReason tells why Run returned.
type StopReason int

const (
	StopTrapped StopReason = iota
	StopLimit
)

func (r StopReason) String() string {
	if r == StopLimit {
		return "steps limit reached"
	}
	return "trapped"
}

func (r StopReason) MarshalText() ([]byte, error) {
	if r == StopLimit {
		return []byte("limit"), nil
	}
	return []byte("trapped"), nil
}

// Result summarises a Run.
type Result struct {
	Steps  int
	Reason StopReason
}

// Session is one running program. It is not safe for concurrent use, but
// independent sessions share nothing.
type Session struct {
	grid    *Grid
	pos     Coord
	machine *Machine
	log     *zap.Logger

	steps   int
	trapped bool
}

// NewSession starts a program at the top-left codel of ctx.Grid.
// A nil ctx.IO reads nothing and discards all output.
func NewSession(ctx *Context) (*Session, error) {
	if ctx.Grid == nil {
		return nil, ErrEmptyGrid
	}
	if ctx.Grid.At(Coord{}) == Black {
		return nil, ErrStartBlack
	}
	rw := ctx.IO
	if rw == nil {
		rw = NewConsole(strings.NewReader(""), io.Discard)
	}
	inter, vm := ctx.loggers()
	return &Session{
		grid:    ctx.Grid,
		machine: NewMachine(rw, vm),
		log:     inter,
	}, nil
}

// Position is the codel the session currently occupies.
func (s *Session) Position() Coord { return s.pos }

// Pointer returns the current direction pointer and codel chooser.
func (s *Session) Pointer() Pointer { return s.machine.Pointer }

// Stack returns a copy of the machine stack, bottom first.
func (s *Session) Stack() []int64 { return s.machine.Stack.Values() }

// Steps is the number of steps that advanced.
func (s *Session) Steps() int { return s.steps }

// Trapped reports whether the program has ended.
func (s *Session) Trapped() bool { return s.trapped }

// Step moves the pointer into the next block and runs the command implied
// by the colour change. A step that returns an error leaves the session
// exactly as it was.
func (s *Session) Step() (Outcome, error) {
	if s.trapped {
		return Trapped, nil
	}
	s.log.Debug("step start",
		zap.Int("step", s.steps+1),
		zap.Stringer("pos", s.pos),
		zap.Stringer("dp", s.machine.Pointer.DP),
		zap.Stringer("cc", s.machine.Pointer.CC),
		zap.Stringer("stack", s.machine.Stack))

	block := s.grid.Locate(s.pos)
	size := block.Size()
	p := s.machine.Pointer
	edge := block.Edge(p)
	seenWhite := false

	for attempt := 1; attempt <= maxAttempts; {
		next := p.DP.Step(edge)
		switch {
		case !s.grid.IsOpen(next):
			attempt++
			if attempt%2 == 1 {
				p.Rotate(1)
			} else {
				p.Flip()
			}
			if s.grid.At(edge) != White {
				block = s.grid.Locate(edge)
				edge = block.Edge(p)
			}
		case s.grid.At(next) == White:
			if !seenWhite {
				seenWhite = true
				attempt = 1
			}
			edge = next
		default:
			if err := s.enter(next, p, size, seenWhite); err != nil {
				return 0, err
			}
			return Advanced, nil
		}
	}

	s.machine.Pointer = p
	s.trapped = true
	s.log.Debug("execution trapped", zap.Stringer("pos", s.pos), zap.Int("steps", s.steps))
	return Trapped, nil
}

// enter completes a step into the block at next, running a command unless
// the move slid through white.
func (s *Session) enter(next Coord, p Pointer, size int, slid bool) error {
	from, to := s.grid.At(s.pos), s.grid.At(next)
	saved := s.machine.Pointer
	s.machine.Pointer = p
	if !slid && from.IsChromatic() {
		op := Decode(from, to)
		s.log.Debug("color change", zap.Stringer("from", from), zap.Stringer("to", to), zap.Stringer("command", op))
		if err := s.machine.Exec(op, size); err != nil {
			s.machine.Pointer = saved
			return err
		}
	}
	s.pos = next
	s.steps++
	s.log.Debug("step finish",
		zap.Int("step", s.steps),
		zap.Stringer("pos", s.pos),
		zap.Stringer("dp", s.machine.Pointer.DP),
		zap.Stringer("cc", s.machine.Pointer.CC),
		zap.Stringer("stack", s.machine.Stack))
	return nil
}

// Run steps until the program is trapped or limit steps have advanced.
func (s *Session) Run(limit int) (Result, error) {
	for i := 0; i < limit; i++ {
		out, err := s.Step()
		if err != nil {
			return Result{Steps: s.steps}, err
		}
		if out == Trapped {
			return Result{Steps: s.steps, Reason: StopTrapped}, nil
		}
	}
	return Result{Steps: s.steps, Reason: StopLimit}, nil
}
