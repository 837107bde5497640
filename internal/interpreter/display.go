package interpreter

import (
	"bufio"
	"io"
)

// Display writes g in text grid format. When mark is not nil the codel at
// *mark is followed by an asterisk.
func (g *Grid) Display(w io.Writer, mark *Coord) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			c := Coord{X: x, Y: y}
			bw.WriteString(g.At(c).Code())
			if mark != nil && *mark == c {
				bw.WriteByte('*')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
