package darkstar

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// ItemName is an item search hit.
type ItemName struct {
	ID   int    `json:"id" gorm:"column:itemid"`
	Name string `json:"name" gorm:"column:name"`
}

// ItemIndex is an in-memory id to name table of every item, rebuilt
// from the item tables on startup and on demand.
type ItemIndex struct {
	mu     sync.RWMutex
	names  map[int]string
	folded map[int]string
	ready  bool
}

func NewItemIndex() *ItemIndex {
	return &ItemIndex{}
}

// Build replaces the index contents. An id found in several tables keeps
// the name of the first table in itemTables order.
func (x *ItemIndex) Build(ctx context.Context, db *gorm.DB) error {
	names := make(map[int]string)
	for _, table := range itemTables {
		var rows []ItemName
		if err := db.WithContext(ctx).Table(table).Select("itemid, name").Scan(&rows).Error; err != nil {
			return composeErr("item index", err)
		}
		for _, r := range rows {
			if _, ok := names[r.ID]; !ok {
				names[r.ID] = r.Name
			}
		}
	}

	fold := cases.Fold()
	folded := make(map[int]string, len(names))
	for id, n := range names {
		folded[id] = fold.String(n)
	}

	x.mu.Lock()
	x.names, x.folded, x.ready = names, folded, true
	x.mu.Unlock()
	return nil
}

func (x *ItemIndex) Ready() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.ready
}

func (x *ItemIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.names)
}

func (x *ItemIndex) Name(id int) (string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	n, ok := x.names[id]
	return n, ok
}

// Search matches pattern against every name with SQL LIKE semantics,
// ignoring case, and returns the hits sorted by name then id.
func (x *ItemIndex) Search(pattern string) []ItemName {
	p := []rune(cases.Fold().String(pattern))

	x.mu.RLock()
	out := make([]ItemName, 0)
	for id, f := range x.folded {
		if f != "" && likeMatch(p, []rune(f)) {
			out = append(out, ItemName{ID: id, Name: x.names[id]})
		}
	}
	x.mu.RUnlock()

	sortItemNames(out)
	return out
}

func sortItemNames(items []ItemName) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}

// likeMatch reports whether s matches a LIKE pattern where % matches any
// run of runes and _ matches exactly one.
func likeMatch(p, s []rune) bool {
	// last % seen in p and the position in s it was tried at
	star, mark := -1, 0
	i, j := 0, 0
	for j < len(s) {
		switch {
		case i < len(p) && (p[i] == '_' || p[i] == s[j]):
			i++
			j++
		case i < len(p) && p[i] == '%':
			star, mark = i, j
			i++
		case star >= 0:
			mark++
			i, j = star+1, mark
		default:
			return false
		}
	}
	for i < len(p) && p[i] == '%' {
		i++
	}
	return i == len(p)
}
