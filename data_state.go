package main

import (
	"sort"

	"github.com/andareed/siftly-sheet/logging"
	"github.com/sahilm/fuzzy"
)

type dataState struct {
	source          string
	rows            []row
	filterQuery     string
	filteredIndices []int         // indices into rows, in source order
	matched         map[int][]int // row index -> matched byte offsets
}

type rowSource []row

func (s rowSource) String(i int) string { return s[i].text }
func (s rowSource) Len() int            { return len(s) }

// applyFilter recomputes filteredIndices for the current query. Matches keep
// source order so the list does not jump around while typing.
func (d *dataState) applyFilter() {
	d.filteredIndices = d.filteredIndices[:0]
	d.matched = nil
	if d.filterQuery == "" {
		for i := range d.rows {
			d.filteredIndices = append(d.filteredIndices, i)
		}
		return
	}

	matches := fuzzy.FindFrom(d.filterQuery, rowSource(d.rows))
	d.matched = make(map[int][]int, len(matches))
	for _, mt := range matches {
		d.filteredIndices = append(d.filteredIndices, mt.Index)
		d.matched[mt.Index] = mt.MatchedIndexes
	}
	sort.Ints(d.filteredIndices)
	logging.Debug("filter applied", "query", d.filterQuery, "matches", len(d.filteredIndices), "rows", len(d.rows))
}

func (d *dataState) setFilter(query string) {
	d.filterQuery = query
	d.applyFilter()
}

// rowAt maps a filtered position to its row.
func (d *dataState) rowAt(pos int) (row, bool) {
	if pos < 0 || pos >= len(d.filteredIndices) {
		return row{}, false
	}
	return d.rows[d.filteredIndices[pos]], true
}
