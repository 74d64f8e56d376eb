package table

import (
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridtable/pkg/errors"
	"github.com/matzehuels/gridtable/pkg/grid"
)

// themeFile is the on-disk TOML layout of a custom border theme. Every
// field is a single character; empty or absent fields leave the facet
// undrawn.
type themeFile struct {
	Borders struct {
		Top                string `toml:"top"`
		Bottom             string `toml:"bottom"`
		Left               string `toml:"left"`
		Right              string `toml:"right"`
		TopLeft            string `toml:"top_left"`
		TopRight           string `toml:"top_right"`
		BottomLeft         string `toml:"bottom_left"`
		BottomRight        string `toml:"bottom_right"`
		TopIntersection    string `toml:"top_intersection"`
		BottomIntersection string `toml:"bottom_intersection"`
		LeftIntersection   string `toml:"left_intersection"`
		RightIntersection  string `toml:"right_intersection"`
		Horizontal         string `toml:"horizontal"`
		Vertical           string `toml:"vertical"`
		Intersection       string `toml:"intersection"`
	} `toml:"borders"`
	HeaderLine struct {
		Main         string `toml:"main"`
		Intersection string `toml:"intersection"`
		Left         string `toml:"left"`
		Right        string `toml:"right"`
	} `toml:"header_line"`
}

// LoadTheme reads a border style from a TOML file.
func LoadTheme(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Style{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme file %s", path)
		}
		return Style{}, errors.Wrap(errors.ErrCodeInternal, err, "reading theme file %s", path)
	}
	return ParseTheme(data)
}

// ParseTheme decodes a TOML border theme.
func ParseTheme(data []byte) (Style, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding theme")
	}

	var s Style
	var err error
	set := func(dst *rune, key, value string) {
		if err != nil || value == "" {
			return
		}
		r, size := utf8.DecodeRuneInString(value)
		if r == utf8.RuneError || size != len(value) {
			err = errors.New(errors.ErrCodeInvalidTheme, "%s must be a single character, got %q", key, value)
			return
		}
		*dst = r
	}

	b := f.Borders
	set(&s.Borders.Top, "borders.top", b.Top)
	set(&s.Borders.Bottom, "borders.bottom", b.Bottom)
	set(&s.Borders.Left, "borders.left", b.Left)
	set(&s.Borders.Right, "borders.right", b.Right)
	set(&s.Borders.TopLeft, "borders.top_left", b.TopLeft)
	set(&s.Borders.TopRight, "borders.top_right", b.TopRight)
	set(&s.Borders.BottomLeft, "borders.bottom_left", b.BottomLeft)
	set(&s.Borders.BottomRight, "borders.bottom_right", b.BottomRight)
	set(&s.Borders.TopIntersection, "borders.top_intersection", b.TopIntersection)
	set(&s.Borders.BottomIntersection, "borders.bottom_intersection", b.BottomIntersection)
	set(&s.Borders.LeftIntersection, "borders.left_intersection", b.LeftIntersection)
	set(&s.Borders.RightIntersection, "borders.right_intersection", b.RightIntersection)
	set(&s.Borders.Horizontal, "borders.horizontal", b.Horizontal)
	set(&s.Borders.Vertical, "borders.vertical", b.Vertical)
	set(&s.Borders.Intersection, "borders.intersection", b.Intersection)

	h := f.HeaderLine
	set(&s.HeaderLine.Main, "header_line.main", h.Main)
	set(&s.HeaderLine.Intersection, "header_line.intersection", h.Intersection)
	set(&s.HeaderLine.Left, "header_line.left", h.Left)
	set(&s.HeaderLine.Right, "header_line.right", h.Right)
	if err != nil {
		return Style{}, err
	}

	if s.Borders == (grid.Borders{}) && s.HeaderLine == (grid.HLine{}) {
		return Style{}, errors.New(errors.ErrCodeInvalidTheme, "theme defines no border characters")
	}
	return s, nil
}
