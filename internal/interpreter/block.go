package interpreter

import "slices"

// Block is a maximal 4-connected group of same-coloured codels.
type Block struct {
	Color Color
	// Codels are ordered by row, then column.
	Codels []Coord
}

// Size is the number of codels in the block.
func (b *Block) Size() int {
	return len(b.Codels)
}

var neighbours = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Locate returns the block containing seed. The search keeps an explicit
// queue and visited set, so block size is bounded only by the grid.
// seed must be in bounds and not black.
func (g *Grid) Locate(seed Coord) *Block {
	color := g.At(seed)
	visited := map[Coord]bool{seed: true}
	queue := []Coord{seed}
	codels := make([]Coord, 0, 1)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		codels = append(codels, cur)
		for _, d := range neighbours {
			next := d.Step(cur)
			if visited[next] || !g.IsOpen(next) || g.At(next) != color {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	slices.SortFunc(codels, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return &Block{Color: color, Codels: codels}
}

// Edge selects the codel through which the pointer leaves the block: among
// the codels furthest along DP, the one at the extreme of the perpendicular
// axis. The perpendicular extreme is the maximum when DP's axis parity
// equals CC being left, and the minimum otherwise; so with DP right, CC left
// picks the uppermost codel and CC right the lowermost.
func (b *Block) Edge(p Pointer) Coord {
	// Primary axis is the one DP travels along; secondary is perpendicular.
	primary := func(c Coord) int { return c.X }
	secondary := func(c Coord) int { return c.Y }
	if p.DP == DirDown || p.DP == DirUp {
		primary, secondary = secondary, primary
	}
	descPrimary := p.DP < DirLeft
	odd := p.DP%2 == 1
	descSecondary := odd == (p.CC == ChooseLeft)

	better := func(c, best Coord) bool {
		if pc, pb := primary(c), primary(best); pc != pb {
			return (pc > pb) == descPrimary
		}
		sc, sb := secondary(c), secondary(best)
		return sc != sb && (sc > sb) == descSecondary
	}
	edge := b.Codels[0]
	for _, c := range b.Codels[1:] {
		if better(c, edge) {
			edge = c
		}
	}
	return edge
}
