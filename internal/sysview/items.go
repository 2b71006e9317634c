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
	"fmt"
	"strconv"

	"dirpx.dev/adapt/apis"
	"dirpx.dev/adapt/strategy"
)

// Item is a row of the system view. Every concrete item type has its own
// entry, so the list is heterogeneous.
type Item interface {
	// Key identifies the item across snapshots.
	Key() string
}

// SectionItem is a group header.
type SectionItem struct {
	Title string
}

func (s SectionItem) Key() string {
	return "section/" + s.Title
}

// CPUItem is the usage of one logical CPU.
type CPUItem struct {
	Core    int
	Percent float64
}

func (c CPUItem) Key() string {
	return "cpu/" + strconv.Itoa(c.Core)
}

// MemoryItem is the virtual memory usage of the host.
type MemoryItem struct {
	Used    uint64
	Total   uint64
	Percent float64
}

func (MemoryItem) Key() string {
	return "memory"
}

// ProcessItem is one of the busiest processes.
type ProcessItem struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float32
}

func (p ProcessItem) Key() string {
	return fmt.Sprintf("process/%d", p.PID)
}

// sameItem reports whether two items with equal keys render identically.
func sameItem(a, b Item) bool {
	return a == b
}

// DiffStrategy returns an update strategy that matches items by key.
func DiffStrategy() apis.UpdateStrategy[Item] {
	return strategy.Diff[Item](strategy.DiffFuncs[Item]{
		KeyFunc:         Item.Key,
		SameContentFunc: sameItem,
	})
}
