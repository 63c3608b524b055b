// Package display arranges snapshot records into the list shown to the
// user: processes sharing an executable name collapse into one group.
package display

import (
	"slices"
	"strings"

	"github.com/asidko/fastkill/internal/proc"
)

// Entry is one unit of the process list: a single process, or every
// process sharing an executable name. Members keep discovery order.
type Entry struct {
	Name    string
	Members []proc.Process
}

// IsGroup reports whether the entry collapses two or more processes.
func (e Entry) IsGroup() bool { return len(e.Members) > 1 }

// Group partitions records by executable name and sorts the entries
// case-insensitively. Pure and stateless; re-run on every refresh.
func Group(records []proc.Process) []Entry {
	index := make(map[string]int)
	var entries []Entry
	for _, r := range records {
		if i, ok := index[r.Name]; ok {
			entries[i].Members = append(entries[i].Members, r)
			continue
		}
		index[r.Name] = len(entries)
		entries = append(entries, Entry{Name: r.Name, Members: []proc.Process{r}})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return entries
}
