/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package sysview

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dirpx.dev/adapt"
	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/entry"
	"dirpx.dev/adapt/holder"
)

// ErrNoTheme is returned when a row is created without a Theme context.
var ErrNoTheme = errors.New("sysview: holder context is not a Theme")

// Cell ids within a row.
const (
	cellTitle = iota + 1
	cellLabel
	cellBar
	cellValue
)

var cellNames = map[int]string{
	cellTitle: "title",
	cellLabel: "label",
	cellBar:   "bar",
	cellValue: "value",
}

func cellName(id int) string {
	if n, ok := cellNames[id]; ok {
		return n
	}
	return fmt.Sprintf("cell(%d)", id)
}

// Theme holds the styles rows are created with. It is the UI context
// passed to CreateHolder.
type Theme struct {
	Section  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Bar      lipgloss.Style
	Hot      lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	BarWidth int
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Align(lipgloss.Right),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Hot:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true),
		BarWidth: 20,
	}
}

// Cell is one styled part of a row.
type Cell struct {
	Style lipgloss.Style
	Width int
	Text  string
}

// Render renders the cell at its width.
func (c *Cell) Render() string {
	s := c.Style
	if c.Width > 0 {
		s = s.Width(c.Width)
	}
	return s.Render(c.Text)
}

// Row is the holder of every item type: a fixed set of cells created once
// and rebound for each item it shows.
type Row struct {
	theme  Theme
	layout []int
	cells  map[int]*Cell
	views  *holder.Dynamic
}

func newRow(theme Theme, layout []int, cells map[int]*Cell) *Row {
	r := &Row{theme: theme, layout: layout, cells: cells}
	r.views = holder.NewDynamic(r, holder.WithIDNamer(cellName))
	return r
}

// FindView returns the cell with id.
func (r *Row) FindView(id int) (any, bool) {
	c, ok := r.cells[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// cell returns a cell every row of this kind has.
func (r *Row) cell(id int) (*Cell, error) {
	v, err := r.views.RequireView(id)
	if err != nil {
		return nil, err
	}
	return v.(*Cell), nil
}

// optionalCell returns a cell some themes leave out.
func (r *Row) optionalCell(id int) (*Cell, bool) {
	v, ok := r.views.FindView(id)
	if !ok {
		return nil, false
	}
	return v.(*Cell), true
}

// Render joins the cells of the row.
func (r *Row) Render() string {
	parts := make([]string, 0, len(r.layout))
	for _, id := range r.layout {
		parts = append(parts, r.cells[id].Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func themeOf(ctx any) (Theme, error) {
	t, ok := ctx.(Theme)
	if !ok {
		return Theme{}, fmt.Errorf("%w: got %T", ErrNoTheme, ctx)
	}
	return t, nil
}

func sectionEntry() apis.Entry {
	return entry.New(
		func(ctx any) (*Row, error) {
			t, err := themeOf(ctx)
			if err != nil {
				return nil, err
			}
			return newRow(t, []int{cellTitle}, map[int]*Cell{
				cellTitle: {Style: t.Section},
			}), nil
		},
		func(r *Row, it SectionItem) error {
			c, err := r.cell(cellTitle)
			if err != nil {
				return err
			}
			c.Text = strings.ToUpper(it.Title)
			return nil
		},
	)
}

// meterRow is the layout shared by cpu and memory rows.
func meterRow(ctx any) (*Row, error) {
	t, err := themeOf(ctx)
	if err != nil {
		return nil, err
	}
	cells := map[int]*Cell{
		cellLabel: {Style: t.Label, Width: 10},
		cellValue: {Style: t.Value, Width: 24},
	}
	layout := []int{cellLabel, cellValue}
	if t.BarWidth > 0 {
		cells[cellBar] = &Cell{Style: t.Bar, Width: t.BarWidth + 1}
		layout = []int{cellLabel, cellBar, cellValue}
	}
	return newRow(t, layout, cells), nil
}

func bindMeter(r *Row, label, value string, pct float64) error {
	lc, err := r.cell(cellLabel)
	if err != nil {
		return err
	}
	vc, err := r.cell(cellValue)
	if err != nil {
		return err
	}
	lc.Text = label
	vc.Text = value
	if bc, ok := r.optionalCell(cellBar); ok {
		bc.Text = bar(pct, r.theme.BarWidth)
		bc.Style = r.theme.Bar
		if pct >= 90 {
			bc.Style = r.theme.Hot
		}
	}
	return nil
}

func cpuEntry() apis.Entry {
	return entry.New(meterRow, func(r *Row, it CPUItem) error {
		return bindMeter(r, fmt.Sprintf("cpu%d", it.Core), fmt.Sprintf("%5.1f%%", it.Percent), it.Percent)
	})
}

func memoryEntry() apis.Entry {
	return entry.New(meterRow, func(r *Row, it MemoryItem) error {
		value := fmt.Sprintf("%s / %s %5.1f%%", humanBytes(it.Used), humanBytes(it.Total), it.Percent)
		return bindMeter(r, "mem", value, it.Percent)
	})
}

func processEntry() apis.Entry {
	return entry.New(
		func(ctx any) (*Row, error) {
			t, err := themeOf(ctx)
			if err != nil {
				return nil, err
			}
			return newRow(t, []int{cellLabel, cellTitle, cellValue}, map[int]*Cell{
				cellLabel: {Style: t.Label, Width: 8},
				cellTitle: {Width: 24},
				cellValue: {Style: t.Value, Width: 18},
			}), nil
		},
		func(r *Row, it ProcessItem) error {
			for id, text := range map[int]string{
				cellLabel: fmt.Sprintf("%d", it.PID),
				cellTitle: truncate(it.Name, 23),
				cellValue: fmt.Sprintf("%5.1f%% %5.1f%%", it.CPUPercent, it.MemPercent),
			} {
				c, err := r.cell(id)
				if err != nil {
					return err
				}
				c.Text = text
			}
			return nil
		},
	)
}

// NewController registers an entry for every item type and builds the
// controller over them.
func NewController(cfg apis.Config, opts ...adapt.Option) (*adapt.Adapt[Item], error) {
	return adapt.NewBuilder[Item](cfg).
		Include(reflect.TypeFor[SectionItem](), sectionEntry()).
		Include(reflect.TypeFor[CPUItem](), cpuEntry()).
		Include(reflect.TypeFor[MemoryItem](), memoryEntry()).
		Include(reflect.TypeFor[ProcessItem](), processEntry()).
		With(opts...).
		Build()
}

func bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := int(pct / 100 * float64(width))
	n = max(0, min(n, width))
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

func humanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
