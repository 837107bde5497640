package interpreter

import "fmt"

// Opcode is a machine command, selected by the colour change between two
// blocks.
type Opcode int

const (
	OpPass      Opcode = iota // no-op
	OpPush                    // push the size of the exited block
	OpPop                     // discard the top value
	OpAdd                     // b + a
	OpSubtract                // b - a
	OpMultiply                // b * a
	OpDivide                  // b / a, rounding towards negative infinity
	OpModulo                  // b mod a, sign of a
	OpNot                     // 1 if a == 0, else 0
	OpGreater                 // 1 if b > a, else 0
	OpPointer                 // rotate DP clockwise a times
	OpSwitch                  // toggle CC if a is odd
	OpDuplicate               // push a twice
	OpRoll                    // roll the top b values a times
	OpInNumber                // read an integer
	OpInChar                  // read a character
	OpOutNumber               // write a as a decimal number
	OpOutChar                 // write a as a character
)

var opcodeNames = [...]string{
	"PASS", "PUSH", "POP",
	"ADD", "SUBTRACT", "MULTIPLY",
	"DIVIDE", "MODULO", "NOT",
	"GREATER", "POINTER", "SWITCH",
	"DUPLICATE", "ROLL", "IN_NUMBER",
	"IN_CHAR", "OUT_NUMBER", "OUT_CHAR",
}

func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodeNames) {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return opcodeNames[op]
}

// commands is indexed by hue change, then lightness change.
var commands = [hueCount][lightnessCount]Opcode{
	{OpPass, OpPush, OpPop},
	{OpAdd, OpSubtract, OpMultiply},
	{OpDivide, OpModulo, OpNot},
	{OpGreater, OpPointer, OpSwitch},
	{OpDuplicate, OpRoll, OpInNumber},
	{OpInChar, OpOutNumber, OpOutChar},
}

// Decode returns the command for moving from a block of colour from into a
// block of colour to. Both colours must be chromatic.
func Decode(from, to Color) Opcode {
	dh := floorMod(int64(to.Hue()-from.Hue()), hueCount)
	dl := floorMod(int64(to.Lightness()-from.Lightness()), lightnessCount)
	return commands[dh][dl]
}
