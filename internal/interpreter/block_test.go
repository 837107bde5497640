package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func mustGrid(t *testing.T, src string) *Grid {
	t.Helper()
	g, err := ParseGrid(t.Name(), src)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------- Locate

func TestLocateIsolatedCodel(t *testing.T) {
	g := mustGrid(t, `
K  K  K
K  nR K
K  K  K
`)
	b := g.Locate(Coord{1, 1})
	assert.Equal(t, []Coord{{1, 1}}, b.Codels)
	assert.Equal(t, Chromatic(Red, Normal), b.Color)
	for dp := DirRight; dp <= DirUp; dp++ {
		for _, cc := range []Chooser{ChooseLeft, ChooseRight} {
			assert.Equal(t, Coord{1, 1}, b.Edge(Pointer{DP: dp, CC: cc}))
		}
	}
}

func TestLocateConnectedOnly(t *testing.T) {
	g := mustGrid(t, `
nR nR K  nR
K  nR K  nR
nB nR nR nR
nR K  K  nG
`)
	b := g.Locate(Coord{0, 0})
	want := []Coord{{0, 0}, {1, 0}, {3, 0}, {1, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}}
	assert.Equal(t, want, b.Codels)
	assert.Equal(t, 8, b.Size())

	// (0,3) has the same colour but only touches the block diagonally.
	assert.Equal(t, []Coord{{0, 3}}, g.Locate(Coord{0, 3}).Codels)
}

func TestLocateOrderIndependent(t *testing.T) {
	g := mustGrid(t, `
lG lG lG
lG K  lG
lG lG lG
`)
	first := g.Locate(Coord{0, 0}).Codels
	assert.Len(t, first, 8)
	for _, seed := range first {
		assert.Equal(t, first, g.Locate(seed).Codels, "seed %v", seed)
	}
}

func TestLocateWhiteRegion(t *testing.T) {
	g := mustGrid(t, `
W W nR
W K W
`)
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {0, 1}}, g.Locate(Coord{0, 0}).Codels)
}

func TestLocateLargeBlock(t *testing.T) {
	const n = 400
	rows := make([][]Color, n)
	for y := range rows {
		rows[y] = make([]Color, n)
		for x := range rows[y] {
			rows[y][x] = Chromatic(Green, Dark)
		}
	}
	g, err := NewGrid(rows)
	require.NoError(t, err)
	b := g.Locate(Coord{n / 2, n / 2})
	assert.Equal(t, n*n, b.Size())
	assert.Equal(t, Coord{n - 1, 0}, b.Edge(NewPointer()))
}

// ------------------------------------------------------------------- Edge

func TestEdgeSquare(t *testing.T) {
	g := mustGrid(t, `
nY nY nY
nY nY nY
nY nY nY
`)
	b := g.Locate(Coord{1, 1})
	tests := []struct {
		dp   Direction
		cc   Chooser
		want Coord
	}{
		{DirRight, ChooseLeft, Coord{2, 0}},
		{DirRight, ChooseRight, Coord{2, 2}},
		{DirDown, ChooseLeft, Coord{2, 2}},
		{DirDown, ChooseRight, Coord{0, 2}},
		{DirLeft, ChooseLeft, Coord{0, 0}},
		{DirLeft, ChooseRight, Coord{0, 2}},
		{DirUp, ChooseLeft, Coord{2, 0}},
		{DirUp, ChooseRight, Coord{0, 0}},
	}
	for _, tt := range tests {
		got := b.Edge(Pointer{DP: tt.dp, CC: tt.cc})
		assert.Equal(t, tt.want, got, "dp %v cc %v", tt.dp, tt.cc)
	}
}

func TestEdgeSingleRow(t *testing.T) {
	g := mustGrid(t, `nC nC nC`)
	b := g.Locate(Coord{0, 0})
	left := b.Edge(Pointer{DP: DirRight, CC: ChooseLeft})
	right := b.Edge(Pointer{DP: DirRight, CC: ChooseRight})
	assert.Equal(t, Coord{2, 0}, left)
	assert.Equal(t, left, right)

	assert.Equal(t, Coord{0, 0}, b.Edge(Pointer{DP: DirLeft, CC: ChooseLeft}))
	assert.Equal(t, Coord{0, 0}, b.Edge(Pointer{DP: DirUp, CC: ChooseRight}))
	assert.Equal(t, Coord{2, 0}, b.Edge(Pointer{DP: DirUp, CC: ChooseLeft}))
}

func TestEdgeIrregular(t *testing.T) {
	g := mustGrid(t, `
K  dB K
dB dB dB
K  dB K
K  dB dB
`)
	b := g.Locate(Coord{1, 1})
	assert.Equal(t, Coord{2, 1}, b.Edge(Pointer{DP: DirRight, CC: ChooseLeft}))
	assert.Equal(t, Coord{2, 3}, b.Edge(Pointer{DP: DirRight, CC: ChooseRight}))
	assert.Equal(t, Coord{2, 3}, b.Edge(Pointer{DP: DirDown, CC: ChooseLeft}))
	assert.Equal(t, Coord{1, 3}, b.Edge(Pointer{DP: DirDown, CC: ChooseRight}))
	assert.Equal(t, Coord{0, 1}, b.Edge(Pointer{DP: DirLeft, CC: ChooseRight}))
	assert.Equal(t, Coord{1, 0}, b.Edge(Pointer{DP: DirUp, CC: ChooseLeft}))
}
