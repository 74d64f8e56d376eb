package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridtable/pkg/errors"
	"github.com/matzehuels/gridtable/pkg/grid"
	"github.com/matzehuels/gridtable/pkg/table"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"

	defaultStyle = "ascii"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format   string // input format: csv or json (inferred from extension when empty)
	style    string // built-in style name
	theme    string // path to a TOML theme file, overrides --style
	align    string // default cell alignment: left, center, right
	noHeader bool   // treat the first CSV record as data
	output   string // output file path (stdout when empty)
}

// newRenderCmd creates the render command. The input file may be "-" for
// stdin, in which case --format is required.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{style: defaultStyle, align: "left"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a CSV or JSON file as a text table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: csv, json (default: inferred from extension)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", opts.style, "border style: "+strings.Join(table.StyleNames(), ", "))
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file (overrides --style)")
	cmd.Flags().StringVar(&opts.align, "align", opts.align, "cell alignment: left, center, right")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "treat the first CSV record as data")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	data, err := readInput(path)
	if err != nil {
		return err
	}
	format, err := resolveFormat(path, opts.format)
	if err != nil {
		return err
	}
	style, err := resolveStyle(opts.style, opts.theme)
	if err != nil {
		return err
	}
	align, err := parseAlignment(opts.align)
	if err != nil {
		return err
	}
	logger.Debug("rendering", "format", format, "style", opts.style, "bytes", len(data))

	tbl, err := buildTable(data, format, !opts.noHeader)
	if err != nil {
		return err
	}
	tbl.SetStyle(style).SetAlignment(align)

	out := tbl.String() + "\n"
	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", opts.output)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	prog.done(fmt.Sprintf("Rendered %d columns", tbl.ColumnCount()))
	return nil
}

// buildTable parses data in the given format. It is shared by the render
// command and the HTTP service.
func buildTable(data []byte, format string, hasHeader bool) (*table.Table, error) {
	switch format {
	case formatCSV:
		return table.FromCSV(bytes.NewReader(data), hasHeader)
	case formatJSON:
		return table.FromJSON(bytes.NewReader(data))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

// readInput reads the file at path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}
	return data, nil
}

// resolveFormat returns the explicit format, or infers it from the file
// extension.
func resolveFormat(path, explicit string) (string, error) {
	if explicit != "" {
		if explicit != formatCSV && explicit != formatJSON {
			return "", errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", explicit)
		}
		return explicit, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return formatCSV, nil
	case ".json":
		return formatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format of %s, use --format", path)
}

// resolveStyle returns the theme when one is given, otherwise the named
// built-in style.
func resolveStyle(name, themePath string) (table.Style, error) {
	if themePath != "" {
		return table.LoadTheme(themePath)
	}
	style, ok := table.StyleByName(name)
	if !ok {
		return table.Style{}, errors.New(errors.ErrCodeInvalidStyle,
			"unknown style %q, available: %s", name, strings.Join(table.StyleNames(), ", "))
	}
	return style, nil
}

func parseAlignment(name string) (grid.Alignment, error) {
	switch name {
	case "left", "":
		return grid.AlignLeft, nil
	case "center":
		return grid.AlignCenter, nil
	case "right":
		return grid.AlignRight, nil
	}
	return grid.AlignLeft, errors.New(errors.ErrCodeInvalidInput, "unknown alignment %q", name)
}
