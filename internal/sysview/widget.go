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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"dirpx.dev/adapt"
	"dirpx.dev/adapt/apis"
)

// chrome is the number of lines used by the header and the status line.
const chrome = 2

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Refresh, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// tickMsg asks for the next snapshot.
type tickMsg time.Time

// itemsMsg carries a collected snapshot. Manual refreshes do not
// reschedule the tick.
type itemsMsg struct {
	items  []Item
	err    error
	manual bool
}

// changeStats counts the notifications of the last update.
type changeStats struct {
	inserted, removed, changed, reset int
}

func (s changeStats) String() string {
	if s.reset > 0 {
		return "reset"
	}
	return fmt.Sprintf("+%d -%d ~%d", s.inserted, s.removed, s.changed)
}

// Model is the host list widget. It owns the cursor and the viewport,
// creates holders through the adapter, keeps them in a pool per view type
// and binds only the visible positions.
type Model struct {
	ctrl     *adapt.Adapt[Item]
	ad       apis.HostAdapter
	collect  CollectFunc
	interval time.Duration
	theme    Theme
	keys     keyMap
	log      logr.Logger

	pool  map[int][]apis.Holder
	lines []string
	dirty bool

	cursor int
	offset int
	height int

	stats   changeStats
	updated time.Time
	err     error
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithTheme replaces the default theme.
func WithTheme(t Theme) ModelOption {
	return func(m *Model) {
		m.theme = t
	}
}

// WithLogger sets the widget logger.
func WithLogger(l logr.Logger) ModelOption {
	return func(m *Model) {
		m.log = l
	}
}

// NewModel returns a widget over ctrl fed by collect every interval.
func NewModel(ctrl *adapt.Adapt[Item], collect CollectFunc, interval time.Duration, opts ...ModelOption) *Model {
	m := &Model{
		ctrl:     ctrl,
		ad:       ctrl.Adapter(),
		collect:  collect,
		interval: interval,
		theme:    DefaultTheme(),
		keys:     defaultKeyMap(),
		log:      logr.Discard(),
		pool:     make(map[int][]apis.Holder),
		height:   24 - chrome,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ad.RegisterObserver(m)
	return m
}

// Close detaches the widget from the adapter.
func (m *Model) Close() {
	m.ad.UnregisterObserver(m)
}

// Cursor returns the selected position.
func (m *Model) Cursor() int {
	return m.cursor
}

// Lines returns the rendered visible rows.
func (m *Model) Lines() []string {
	m.layout()
	return m.lines
}

// Init starts collecting.
func (m *Model) Init() tea.Cmd {
	return m.collectCmd(false)
}

func (m *Model) collectCmd(manual bool) tea.Cmd {
	collect, interval := m.collect, m.interval
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		items, err := collect(ctx)
		return itemsMsg{items: items, err: err, manual: manual}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles input, ticks and snapshots. It is the only place the
// controller is driven from.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(1, msg.Height-chrome)
		m.scroll()
		m.dirty = true
	case tickMsg:
		return m, m.collectCmd(false)
	case itemsMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "collect failed")
			m.err = msg.err
		} else {
			m.err = nil
			m.stats = changeStats{}
			m.ctrl.SetItems(msg.items)
			m.updated = time.Now()
			m.log.V(1).Info("items updated", "count", m.ctrl.ItemCount(), "changes", m.stats.String())
		}
		if msg.manual {
			return m, nil
		}
		return m, m.tickCmd()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		return m.collectCmd(true)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.height)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.height)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-m.ad.Count())
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.ad.Count())
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clamp()
	m.dirty = true
}

// clamp keeps the cursor on an existing position and visible.
func (m *Model) clamp() {
	m.cursor = max(0, min(m.cursor, m.ad.Count()-1))
	m.scroll()
}

func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.offset = max(0, min(m.offset, m.ad.Count()-m.height))
}

// OnChanged handles a full reset.
func (m *Model) OnChanged() {
	m.stats.reset++
	m.clamp()
	m.dirty = true
}

// OnItemRangeInserted keeps the cursor on the same item when rows are
// inserted at or above it. A cursor on the first row stays there.
func (m *Model) OnItemRangeInserted(position, count int) {
	m.stats.inserted += count
	if position <= m.cursor && m.cursor > 0 {
		m.cursor += count
	}
	m.clamp()
	m.dirty = true
}

// OnItemRangeRemoved keeps the cursor on the same item when rows above it
// are removed, or moves it to the first row after a removed selection.
func (m *Model) OnItemRangeRemoved(position, count int) {
	m.stats.removed += count
	switch {
	case m.cursor >= position+count:
		m.cursor -= count
	case m.cursor >= position:
		m.cursor = position
	}
	m.clamp()
	m.dirty = true
}

func (m *Model) OnItemRangeChanged(position, count int) {
	m.stats.changed += count
	if position < m.offset+m.height && position+count > m.offset {
		m.dirty = true
	}
}

func (m *Model) OnItemMoved(from, to int) {
	if m.cursor == from {
		m.cursor = to
	}
	m.clamp()
	m.dirty = true
}

// layout binds the visible positions to pooled holders.
func (m *Model) layout() {
	if !m.dirty {
		return
	}
	m.dirty = false

	end := min(m.offset+m.height, m.ad.Count())
	used := make(map[int]int, len(m.pool))
	m.lines = m.lines[:0]
	for pos := m.offset; pos < end; pos++ {
		line, err := m.bindAt(pos, used)
		if err != nil {
			m.log.Error(err, "bind failed", "position", pos)
			line = m.theme.Error.Render(err.Error())
		}
		if pos == m.cursor {
			line = m.theme.Selected.Render(line)
		}
		m.lines = append(m.lines, line)
	}
}

func (m *Model) bindAt(pos int, used map[int]int) (string, error) {
	vt, err := m.ad.ViewTypeAt(pos)
	if err != nil {
		return "", err
	}
	n := used[vt]
	if n == len(m.pool[vt]) {
		h, err := m.ad.CreateHolder(vt, m.theme)
		if err != nil {
			return "", err
		}
		m.log.V(1).Info("holder created", "viewType", vt, "poolSize", n+1)
		m.pool[vt] = append(m.pool[vt], h)
	}
	used[vt] = n + 1

	h := m.pool[vt][n]
	if err := m.ad.Bind(h, pos); err != nil {
		return "", err
	}
	r, ok := h.(*Row)
	if !ok {
		return "", fmt.Errorf("sysview: unexpected holder %T", h)
	}
	return r.Render(), nil
}

// View renders the header, the visible rows and the status line.
func (m *Model) View() string {
	m.layout()

	var b strings.Builder
	b.WriteString(m.theme.Section.Render("sysview"))
	b.WriteString(" ")
	b.WriteString(m.theme.Status.Render(m.keys.help()))
	b.WriteString("\n")
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := len(m.lines); i < m.height; i++ {
		b.WriteString("\n")
	}
	b.WriteString(m.status())
	return b.String()
}

func (m *Model) status() string {
	if m.err != nil {
		return m.theme.Error.Render("error: " + m.err.Error())
	}
	if m.updated.IsZero() {
		return m.theme.Status.Render("collecting...")
	}
	return m.theme.Status.Render(fmt.Sprintf("%d/%d  %s  %s",
		min(m.cursor+1, m.ad.Count()), m.ad.Count(), m.stats, m.updated.Format(time.TimeOnly)))
}
