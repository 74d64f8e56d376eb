package table

import "github.com/matzehuels/gridtable/pkg/grid"

// Style bundles a border glyph set with an optional header separator line
// drawn under the header row instead of the regular horizontal line.
type Style struct {
	Borders    grid.Borders
	HeaderLine grid.HLine
}

// Built-in styles.
var (
	// StyleASCII uses 7-bit characters only.
	StyleASCII = Style{
		Borders: grid.Borders{
			Top: '-', Bottom: '-', Left: '|', Right: '|',
			TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
			TopIntersection: '+', BottomIntersection: '+',
			LeftIntersection: '+', RightIntersection: '+',
			Horizontal: '-', Vertical: '|', Intersection: '+',
		},
	}

	// StyleModern uses single box-drawing characters.
	StyleModern = Style{
		Borders: grid.Borders{
			Top: '─', Bottom: '─', Left: '│', Right: '│',
			TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
			TopIntersection: '┬', BottomIntersection: '┴',
			LeftIntersection: '├', RightIntersection: '┤',
			Horizontal: '─', Vertical: '│', Intersection: '┼',
		},
	}

	// StyleRounded is StyleModern with rounded corners.
	StyleRounded = Style{
		Borders: grid.Borders{
			Top: '─', Bottom: '─', Left: '│', Right: '│',
			TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
			TopIntersection: '┬', BottomIntersection: '┴',
			LeftIntersection: '├', RightIntersection: '┤',
			Horizontal: '─', Vertical: '│', Intersection: '┼',
		},
	}

	// StyleThick uses heavy box-drawing characters.
	StyleThick = Style{
		Borders: grid.Borders{
			Top: '━', Bottom: '━', Left: '┃', Right: '┃',
			TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
			TopIntersection: '┳', BottomIntersection: '┻',
			LeftIntersection: '┣', RightIntersection: '┫',
			Horizontal: '━', Vertical: '┃', Intersection: '╋',
		},
	}

	// StyleDouble uses double box-drawing characters.
	StyleDouble = Style{
		Borders: grid.Borders{
			Top: '═', Bottom: '═', Left: '║', Right: '║',
			TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
			TopIntersection: '╦', BottomIntersection: '╩',
			LeftIntersection: '╠', RightIntersection: '╣',
			Horizontal: '═', Vertical: '║', Intersection: '╬',
		},
	}

	// StyleMarkdown renders GitHub-flavored markdown tables: vertical pipes,
	// a dashed line under the header, and no outer horizontal frame.
	StyleMarkdown = Style{
		Borders: grid.Borders{
			Left: '|', Right: '|', Vertical: '|',
		},
		HeaderLine: grid.HLine{Main: '-', Intersection: '|', Left: '|', Right: '|'},
	}

	// StyleBlank draws no borders at all.
	StyleBlank = Style{}
)

// styles maps the names accepted on the command line to presets.
var styles = map[string]Style{
	"ascii":    StyleASCII,
	"modern":   StyleModern,
	"rounded":  StyleRounded,
	"thick":    StyleThick,
	"double":   StyleDouble,
	"markdown": StyleMarkdown,
	"blank":    StyleBlank,
}

// StyleNames lists the built-in style names in stable order.
func StyleNames() []string {
	return []string{"ascii", "modern", "rounded", "thick", "double", "markdown", "blank"}
}

// StyleByName looks up a built-in style.
func StyleByName(name string) (Style, bool) {
	s, ok := styles[name]
	return s, ok
}
