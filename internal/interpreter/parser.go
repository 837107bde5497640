package interpreter

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The text grid format has one row of codels per line:
//
//	# comment
//	nR nR lY
//	W  K  dB
//
// A chromatic codel is a lightness letter (l, n, d) followed by a hue letter
// (R, Y, G, C, B, M); W is white and K is black.

type gridFile struct {
	Rows []*gridRow `parser:"( @@ | EOL )*"`
}

type gridRow struct {
	Pos   lexer.Position
	Cells []string `parser:"@Color+"`
}

var gridLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Color", Pattern: `[lnd][RYGCBM]|[WK]`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var gridParser = participle.MustBuild[gridFile](
	participle.Lexer(gridLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseGrid reads a grid in text format. name is used in error positions.
func ParseGrid(name, src string) (*Grid, error) {
	file, err := gridParser.ParseString(name, src)
	if err != nil {
		return nil, err
	}
	if len(file.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyGrid)
	}
	rows := make([][]Color, len(file.Rows))
	width := len(file.Rows[0].Cells)
	for i, row := range file.Rows {
		if len(row.Cells) != width {
			return nil, fmt.Errorf("%s: %d codels, want %d: %w", row.Pos, len(row.Cells), width, ErrRaggedGrid)
		}
		rows[i] = make([]Color, len(row.Cells))
		for j, code := range row.Cells {
			c, err := ParseColorCode(code)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", row.Pos, err)
			}
			rows[i][j] = c
		}
	}
	return NewGrid(rows)
}
