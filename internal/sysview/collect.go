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
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Section titles, in display order.
const (
	SectionCPU       = "CPU"
	SectionMemory    = "Memory"
	SectionProcesses = "Processes"
)

// CollectFunc produces the next list of items.
type CollectFunc func(ctx context.Context) ([]Item, error)

// Snapshot is one sample of host metrics.
type Snapshot struct {
	CPU       []float64
	Memory    MemoryItem
	Processes []ProcessItem
}

// Items lays the snapshot out as sections followed by their rows. At most
// maxProcesses processes are kept, busiest first; a non-positive limit
// omits the process section.
func (s Snapshot) Items(maxProcesses int) []Item {
	items := make([]Item, 0, len(s.CPU)+len(s.Processes)+4)

	items = append(items, SectionItem{Title: SectionCPU})
	for i, pct := range s.CPU {
		items = append(items, CPUItem{Core: i, Percent: pct})
	}

	items = append(items, SectionItem{Title: SectionMemory}, s.Memory)

	if maxProcesses <= 0 {
		return items
	}
	procs := slices.Clone(s.Processes)
	slices.SortStableFunc(procs, func(a, b ProcessItem) int {
		if c := cmp.Compare(b.CPUPercent, a.CPUPercent); c != 0 {
			return c
		}
		return cmp.Compare(a.PID, b.PID)
	})
	if len(procs) > maxProcesses {
		procs = procs[:maxProcesses]
	}
	items = append(items, SectionItem{Title: SectionProcesses})
	for _, p := range procs {
		items = append(items, p)
	}
	return items
}

// HostCollector returns a CollectFunc sampling the local host.
func HostCollector(maxProcesses int) CollectFunc {
	return func(ctx context.Context) ([]Item, error) {
		s, err := Collect(ctx, maxProcesses > 0)
		if err != nil {
			return nil, err
		}
		return s.Items(maxProcesses), nil
	}
}

// Collect samples cpu and memory usage, and the process table when
// withProcesses is set. Processes that disappear or deny access while being
// inspected are skipped.
func Collect(ctx context.Context, withProcesses bool) (Snapshot, error) {
	var s Snapshot

	percents, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return s, fmt.Errorf("sysview: cpu usage: %w", err)
	}
	s.CPU = percents

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return s, fmt.Errorf("sysview: memory usage: %w", err)
	}
	s.Memory = MemoryItem{Used: vm.Used, Total: vm.Total, Percent: vm.UsedPercent}

	if !withProcesses {
		return s, nil
	}
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return s, fmt.Errorf("sysview: process list: %w", err)
	}
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			cpuPct = 0
		}
		memPct, err := p.MemoryPercentWithContext(ctx)
		if err != nil {
			memPct = 0
		}
		s.Processes = append(s.Processes, ProcessItem{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: memPct,
		})
	}
	return s, nil
}
