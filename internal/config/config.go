// SPDX-License-Identifier: Unlicense OR MIT

// Package config reads grid descriptions and builds widget trees
// from them.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"polyui.org/layout"
	"polyui.org/widget"
)

// Grid describes a grid container, its tracks and the widgets in
// its cells.
type Grid struct {
	Name    string  `yaml:"name" json:"name"`
	Columns []Track `yaml:"columns" json:"columns"`
	Rows    []Track `yaml:"rows" json:"rows"`
	Cells   []Cell  `yaml:"cells" json:"cells"`
}

// Track sets the constraints of one column or row. Unset fields
// keep their defaults: stretch 1, no minimum, no maximum.
type Track struct {
	Stretch *uint32 `yaml:"stretch" json:"stretch"`
	Min     uint32  `yaml:"min" json:"min"`
	Max     *uint32 `yaml:"max" json:"max"`
}

// Cell places a widget. An unset Column or Row places it after the
// last column or row. A cell with a Grid holds a nested grid,
// otherwise a leaf named Name.
type Cell struct {
	Name   string `yaml:"name" json:"name"`
	Column *int   `yaml:"column" json:"column"`
	Row    *int   `yaml:"row" json:"row"`
	Grid   *Grid  `yaml:"grid" json:"grid"`
}

const maxFileBytes = 1 << 20

// Load reads a grid description from path. Files ending in .json
// are read as JSON, anything else as YAML.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Decode(f, filepath.Ext(path))
	return g, errors.Wrapf(err, "config %s", path)
}

// Decode reads a grid description in the format named by ext.
// Unknown fields are errors.
func Decode(r io.Reader, ext string) (*Grid, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxFileBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > maxFileBytes {
		return nil, errors.Errorf("grid description too large (>%d bytes)", maxFileBytes)
	}
	g := new(Grid)
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(g); err != nil {
			return nil, errors.Wrap(err, "parse json")
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(g); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "parse yaml")
		}
	}
	return g, nil
}

// Build adds the widgets described by g to tree and returns the
// root grid widget.
func Build(tree *widget.Tree, g *Grid) (widget.ID, error) {
	name := g.Name
	if name == "" {
		name = "root"
	}
	id, grid := tree.NewGrid(name)
	if err := build(tree, grid, g); err != nil {
		tree.Delete(id)
		return 0, errors.Wrapf(err, "grid %q", name)
	}
	return id, nil
}

func build(tree *widget.Tree, grid *layout.Grid, g *Grid) error {
	for i, c := range g.Cells {
		col, row := layout.Next, layout.Next
		if c.Column != nil {
			col = *c.Column
		}
		if c.Row != nil {
			row = *c.Row
		}
		var id widget.ID
		if c.Grid != nil {
			nested := *c.Grid
			if nested.Name == "" {
				nested.Name = c.Name
			}
			var err error
			if id, err = Build(tree, &nested); err != nil {
				return err
			}
		} else {
			id = tree.New(widget.Leaf, c.Name)
		}
		if err := grid.InsertChildAt(layout.ChildID(id), col, row); err != nil {
			tree.Delete(id)
			return errors.Wrapf(err, "cell %d (%s)", i, c.Name)
		}
	}
	if err := tracks(g.Columns, grid.SetColumnStretch, grid.SetColumnMinSize, grid.SetColumnMaxSize); err != nil {
		return errors.Wrap(err, "columns")
	}
	if err := tracks(g.Rows, grid.SetRowStretch, grid.SetRowMinSize, grid.SetRowMaxSize); err != nil {
		return errors.Wrap(err, "rows")
	}
	return nil
}

func tracks(ts []Track, setStretch, setMin, setMax func(int, uint32) error) error {
	for i, t := range ts {
		if t.Stretch != nil {
			if err := setStretch(i, *t.Stretch); err != nil {
				return err
			}
		}
		if err := setMin(i, t.Min); err != nil {
			return err
		}
		if t.Max != nil {
			if err := setMax(i, *t.Max); err != nil {
				return err
			}
		}
	}
	return nil
}
