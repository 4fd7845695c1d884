// SPDX-License-Identifier: Unlicense OR MIT

// Command polyui-grid lays out a grid description and renders the
// result to the terminal, to an image, or as a list of transforms.
package main

import (
	"fmt"
	imgcolor "image/color"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"polyui.org/internal/config"
	"polyui.org/internal/logging"
	"polyui.org/internal/termsize"
	"polyui.org/layout"
	"polyui.org/paint/raster"
	"polyui.org/paint/term"
	"polyui.org/widget"
)

// demo is laid out when no grid description is given.
const demo = `
name: window
columns:
  - max: 24
  - stretch: 3
rows:
  - max: 3
  - stretch: 1
  - max: 3
cells:
  - {name: toolbar, column: 0, row: 0}
  - {name: sidebar, column: 0, row: 1}
  - name: content
    column: 1
    row: 1
    grid:
      columns:
        - stretch: 2
        - stretch: 1
      cells:
        - {name: editor, column: 0, row: 0}
        - {name: preview, column: 1, row: 0}
  - {name: status, column: 0, row: 2}
`

type options struct {
	width, height uint32
	format        string
	output        string
	colorMode     string
	logLevel      string
	file          string
}

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	handleError(os.Stderr, err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{format: "text", colorMode: "auto", logLevel: "info"}
	cmd := &cobra.Command{
		Use:   "polyui-grid [FILE]",
		Short: "Lay out a grid of widgets and render it",
		Long: `polyui-grid reads a YAML or JSON grid description, solves the sizes of its
columns and rows for the requested size and renders the widgets.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindEnv(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			return run(cmd, opts)
		},
	}
	fs := cmd.Flags()
	fs.Uint32VarP(&opts.width, "width", "W", 0, "Width in cells or pixels (defaults to the terminal width, or 800 for images)")
	fs.Uint32VarP(&opts.height, "height", "H", 0, "Height in cells or pixels (defaults to the terminal height, or 600 for images)")
	fs.StringVarP(&opts.format, "format", "f", opts.format, "Output format (text, transforms, png, bmp, tiff)")
	fs.StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")
	fs.StringVar(&opts.colorMode, "color", opts.colorMode, "Color text output (auto, always, never)")
	fs.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (trace, debug, info, warn, error)")
	cmd.Example = `  # Render the demo layout to the terminal
  polyui-grid

  # Render a grid description to a PNG image
  polyui-grid layout.yaml --format png -W 1024 -H 768 -o layout.png`
	return cmd
}

// bindEnv fills flags not set on the command line from POLYUI_*
// environment variables.
func bindEnv(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("POLYUI")
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || err != nil {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if val := fmt.Sprintf("%v", v.Get(f.Name)); val != "" {
			err = errors.Wrapf(f.Value.Set(val), "flag --%s", f.Name)
		}
	})
	return err
}

func run(cmd *cobra.Command, opts *options) error {
	log, err := logging.New(opts.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	var desc *config.Grid
	if opts.file != "" {
		desc, err = config.Load(opts.file)
	} else {
		desc, err = config.Decode(strings.NewReader(demo), ".yaml")
	}
	if err != nil {
		return err
	}
	tree := widget.NewTree(widget.WithLogger(log))
	root, err := config.Build(tree, desc)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.output != "" && opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	log.V(1).Info("rendering", "format", opts.format, "widgets", tree.Len())

	switch opts.format {
	case "text", "transforms":
		size := opts.size(termsize.OrFallback(os.Stdout.Fd()))
		s := term.NewScreen(size)
		if err := tree.Paint(root, s.Painter()); err != nil {
			return err
		}
		if opts.format == "transforms" {
			return writeTransforms(out, tree, root, log)
		}
		colored, err := useColor(opts.colorMode)
		if err != nil {
			return err
		}
		return s.Render(out, colored)
	case string(raster.PNG), string(raster.BMP), string(raster.TIFF):
		p := raster.New(opts.size(layout.Pt(800, 600)), imgcolor.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		if err := tree.Paint(root, p); err != nil {
			return err
		}
		return p.Encode(out, raster.Format(opts.format))
	default:
		return errors.Errorf("unknown format %q (expected text, transforms, png, bmp, or tiff)", opts.format)
	}
}

// size returns the requested size, with unset dimensions taken from
// def.
func (o *options) size(def layout.Size) layout.Size {
	sz := layout.Pt(o.width, o.height)
	if sz.W == 0 {
		sz.W = def.W
	}
	if sz.H == 0 {
		sz.H = def.H
	}
	return sz
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return !color.NoColor, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, errors.Errorf("unknown color mode %q (expected auto, always, or never)", mode)
	}
}

// writeTransforms lists every widget below root with its rectangle,
// top to bottom and left to right.
func writeTransforms(w io.Writer, tree *widget.Tree, root widget.ID, log logr.Logger) error {
	tfs, err := tree.Transforms(root)
	if err != nil {
		return err
	}
	ids := make([]widget.ID, 0, len(tfs))
	for id := range tfs {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(x, y widget.ID) int {
		a, b := tfs[x].Pos, tfs[y].Pos
		switch {
		case a.Y != b.Y:
			return a.Y - b.Y
		case a.X != b.X:
			return a.X - b.X
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
	names := make([]string, len(ids))
	width := 0
	for i, id := range ids {
		n, err := tree.Name(id)
		if err != nil {
			return err
		}
		names[i] = n
		if sw := runewidth.StringWidth(n); sw > width {
			width = sw
		}
	}
	for i, id := range ids {
		k, _ := tree.Kind(id)
		if _, err := fmt.Fprintf(w, "%s  %-6s %v\n", runewidth.FillRight(names[i], width), k, tfs[id].Rect()); err != nil {
			return err
		}
	}
	log.V(1).Info("wrote transforms", "count", len(ids))
	return nil
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	switch {
	case errors.Is(err, layout.ErrInvalidConstraints):
		message = fmt.Sprintf("%s\nHint: the maximum sizes of the columns or rows do not cover the requested size; raise a max or lower --width/--height.", err)
	case errors.Is(err, layout.ErrDuplicateAssignment):
		message = fmt.Sprintf("%s\nHint: two cells of the grid description share a column and row.", err)
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}
