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
	"errors"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/adapt"
	"dirpx.dev/adapt/config"
)

func snapshot(cpus int, procs ...int32) Snapshot {
	s := Snapshot{Memory: MemoryItem{Used: 1 << 30, Total: 4 << 30, Percent: 25}}
	for i := 0; i < cpus; i++ {
		s.CPU = append(s.CPU, float64(10*(i+1)))
	}
	for _, pid := range procs {
		s.Processes = append(s.Processes, ProcessItem{PID: pid, Name: "p", CPUPercent: float64(100 - pid)})
	}
	return s
}

func newTestModel(t *testing.T, diff bool) *Model {
	t.Helper()
	var opts []adapt.Option
	if diff {
		opts = append(opts, adapt.WithUpdateStrategy(DiffStrategy()))
	}
	ctrl, err := NewController(config.DefaultConfig(), opts...)
	require.NoError(t, err)
	collect := func(context.Context) ([]Item, error) {
		return snapshot(2, 1).Items(5), nil
	}
	m := NewModel(ctrl, collect, time.Second, WithLogger(testr.New(t)))
	t.Cleanup(m.Close)
	return m
}

func feed(m *Model, items []Item) {
	m.Update(itemsMsg{items: items})
}

func keyOf(m *Model, pos int) string {
	return m.ctrl.Item(pos).Key()
}

func TestModel_InitCollects(t *testing.T) {
	m := newTestModel(t, true)

	msg := m.Init()()
	got, ok := msg.(itemsMsg)
	require.True(t, ok)
	require.NoError(t, got.err)

	_, cmd := m.Update(got)
	assert.NotNil(t, cmd, "next tick is scheduled")
	assert.Equal(t, 7, m.ctrl.ItemCount())
}

func TestModel_RendersVisibleRowsOnly(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3 + chrome})
	feed(m, snapshot(4).Items(0))

	lines := m.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "CPU")
	assert.Contains(t, lines[1], "cpu0")
	assert.Contains(t, lines[2], "cpu1")

	cpuType, err := m.ctrl.AssignedViewType(reflect.TypeFor[CPUItem]())
	require.NoError(t, err)
	assert.Len(t, m.pool[cpuType], 2, "only visible cpu rows get holders")
}

func TestModel_HoldersAreReused(t *testing.T) {
	m := newTestModel(t, true)
	feed(m, snapshot(2, 1).Items(5))
	m.Lines()

	before := map[int]int{}
	for vt, hs := range m.pool {
		before[vt] = len(hs)
	}
	feed(m, snapshot(2, 1).Items(5))
	m.Lines()

	for vt, hs := range m.pool {
		assert.Equal(t, before[vt], len(hs), "view type %d", vt)
	}
}

func TestModel_CursorFollowsInsertAbove(t *testing.T) {
	m := newTestModel(t, true)
	feed(m, snapshot(2).Items(5))
	m.moveCursor(4)
	require.Equal(t, "memory", keyOf(m, m.Cursor()))

	feed(m, snapshot(3).Items(5))

	assert.Equal(t, 5, m.Cursor())
	assert.Equal(t, "memory", keyOf(m, m.Cursor()))
	assert.Equal(t, 1, m.stats.inserted)
}

func TestModel_CursorOnRemovedRow(t *testing.T) {
	m := newTestModel(t, true)
	feed(m, snapshot(2, 1, 2).Items(5))
	m.moveCursor(m.ctrl.ItemCount())
	require.Equal(t, "process/2", keyOf(m, m.Cursor()))

	feed(m, snapshot(2).Items(0))

	assert.Equal(t, m.ctrl.ItemCount()-1, m.Cursor())
	assert.Equal(t, "memory", keyOf(m, m.Cursor()))
	assert.Equal(t, 3, m.stats.removed)
}

func TestModel_ResetClampsCursor(t *testing.T) {
	m := newTestModel(t, false)
	feed(m, snapshot(4).Items(0))
	m.moveCursor(100)
	require.Equal(t, 6, m.Cursor())

	feed(m, nil)

	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, "reset", m.stats.String())
	assert.Empty(t, m.Lines())
}

func TestModel_ObserverCallbacks(t *testing.T) {
	m := newTestModel(t, false)
	feed(m, snapshot(8).Items(0))
	m.moveCursor(5)

	m.OnItemRangeInserted(0, 2)
	assert.Equal(t, 7, m.Cursor())
	m.OnItemRangeRemoved(0, 2)
	assert.Equal(t, 5, m.Cursor())
	m.OnItemRangeInserted(6, 1)
	assert.Equal(t, 5, m.Cursor())
	m.OnItemMoved(5, 1)
	assert.Equal(t, 1, m.Cursor())
	m.OnItemRangeRemoved(0, 3)
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel(t, false)
	feed(m, snapshot(2).Items(0))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Equal(t, 4, m.Cursor())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 3, m.Cursor())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, m.Cursor())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_CollectError(t *testing.T) {
	m := newTestModel(t, true)
	feed(m, snapshot(1).Items(0))

	_, cmd := m.Update(itemsMsg{err: errors.New("permission denied")})

	assert.NotNil(t, cmd)
	assert.Equal(t, 4, m.ctrl.ItemCount(), "items are kept")
	assert.Contains(t, m.View(), "permission denied")
}

func TestModel_ManualRefreshDoesNotReschedule(t *testing.T) {
	m := newTestModel(t, true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	msg, ok := cmd().(itemsMsg)
	require.True(t, ok)
	assert.True(t, msg.manual)

	_, next := m.Update(msg)
	assert.Nil(t, next)
	assert.Equal(t, 7, m.ctrl.ItemCount())
}

func TestModel_ViewStatus(t *testing.T) {
	m := newTestModel(t, true)
	assert.Contains(t, m.View(), "collecting")

	feed(m, snapshot(1).Items(0))
	assert.Contains(t, m.View(), "1/4")
}
