package plugin

import (
	"errors"
	"sync"
)

var (
	ErrMenuNotFound   = errors.New("plugin: menu not found")
	ErrParentNotFound = errors.New("plugin: parent menu item not found")
)

// MenuItem is one navigation entry. Separators carry only an alias.
type MenuItem struct {
	Alias     string     `json:"alias"`
	Href      string     `json:"href,omitempty"`
	Icon      string     `json:"icon,omitempty"`
	Title     string     `json:"title,omitempty"`
	Separator bool       `json:"separator,omitempty"`
	Children  []MenuItem `json:"children,omitempty"`
}

type Menu struct {
	Name    string            `json:"name"`
	Items   []MenuItem        `json:"items"`
	Options map[string]string `json:"options,omitempty"`
}

// Menus holds the site navigation built up by plugins during startup.
type Menus struct {
	mu    sync.RWMutex
	menus map[string]*Menu
}

func NewMenus() *Menus {
	return &Menus{menus: make(map[string]*Menu)}
}

// CreateMenu registers (or replaces) a named menu.
func (m *Menus) CreateMenu(name string, items []MenuItem, options map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menus[name] = &Menu{Name: name, Items: cloneItems(items), Options: options}
}

// AppendMenuItem adds item to the top level of a menu unless an item
// with the same alias is already there.
func (m *Menus) AppendMenuItem(menu string, item MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mn, ok := m.menus[menu]
	if !ok {
		return ErrMenuNotFound
	}
	if findShallow(mn.Items, item.Alias) != nil {
		return nil
	}
	mn.Items = append(mn.Items, cloneItem(item))
	return nil
}

// AppendMenuItems adds items under the item aliased parent, anywhere in
// the tree, or at the top level when parent is empty. Items whose alias
// already exists under the same parent are skipped.
func (m *Menus) AppendMenuItems(menu string, items []MenuItem, parent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mn, ok := m.menus[menu]
	if !ok {
		return ErrMenuNotFound
	}
	target := &mn.Items
	if parent != "" {
		p := findItem(mn.Items, parent)
		if p == nil {
			return ErrParentNotFound
		}
		target = &p.Children
	}
	for _, it := range items {
		if it.Alias != "" && findShallow(*target, it.Alias) != nil {
			continue
		}
		*target = append(*target, cloneItem(it))
	}
	return nil
}

// Menu returns a copy of the named menu, safe for rendering.
func (m *Menus) Menu(name string) (Menu, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mn, ok := m.menus[name]
	if !ok {
		return Menu{}, false
	}
	opts := make(map[string]string, len(mn.Options))
	for k, v := range mn.Options {
		opts[k] = v
	}
	return Menu{Name: mn.Name, Items: cloneItems(mn.Items), Options: opts}, true
}

func findShallow(items []MenuItem, alias string) *MenuItem {
	for i := range items {
		if items[i].Alias == alias {
			return &items[i]
		}
	}
	return nil
}

func findItem(items []MenuItem, alias string) *MenuItem {
	if it := findShallow(items, alias); it != nil {
		return it
	}
	for i := range items {
		if it := findItem(items[i].Children, alias); it != nil {
			return it
		}
	}
	return nil
}

func cloneItem(it MenuItem) MenuItem {
	it.Children = cloneItems(it.Children)
	return it
}

func cloneItems(items []MenuItem) []MenuItem {
	if items == nil {
		return nil
	}
	out := make([]MenuItem, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}
