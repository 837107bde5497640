package interpreter

import "fmt"

// Direction is the direction pointer. Adding one turns clockwise.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var directionNames = [4]string{"RIGHT", "DOWN", "LEFT", "UP"}

func (d Direction) String() string {
	if d < 0 || d > DirUp {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Step returns the neighbour of c in direction d.
func (d Direction) Step(c Coord) Coord {
	switch d {
	case DirRight:
		c.X++
	case DirDown:
		c.Y++
	case DirLeft:
		c.X--
	case DirUp:
		c.Y--
	}
	return c
}

// Chooser is the codel chooser.
type Chooser int

const (
	ChooseLeft  Chooser = -1
	ChooseRight Chooser = 1
)

func (c Chooser) String() string {
	switch c {
	case ChooseLeft:
		return "LEFT"
	case ChooseRight:
		return "RIGHT"
	}
	return fmt.Sprintf("Chooser(%d)", int(c))
}

// Pointer holds the direction pointer and codel chooser of a session.
type Pointer struct {
	DP Direction
	CC Chooser
}

// NewPointer returns the initial pointer: DP right, CC left.
func NewPointer() Pointer {
	return Pointer{DP: DirRight, CC: ChooseLeft}
}

// Rotate turns the direction pointer clockwise n times. Negative n turns
// counter-clockwise.
func (p *Pointer) Rotate(n int64) {
	p.DP = Direction(floorMod(int64(p.DP)+floorMod(n, 4), 4))
}

// Flip toggles the codel chooser.
func (p *Pointer) Flip() {
	p.CC = -p.CC
}

func (p Pointer) String() string {
	return fmt.Sprintf("DP:%s, CC:%s", p.DP, p.CC)
}
