// Package shell holds the navigation chrome around the dashboard: the nav
// items and the collapsible sidebar.
package shell

import (
	"strings"
	"sync"
)

// Item is a navigation entry.
type Item struct {
	Title string
	Href  string
}

// RootHref is the dashboard's own route.
const RootHref = "/"

var primary = []Item{
	{Title: "Overview", Href: RootHref},
	{Title: "Pulse", Href: "/pulse"},
	{Title: "Forecasts", Href: "/forecasts"},
	{Title: "Capacity", Href: "/capacity"},
	{Title: "Programs", Href: "/programs"},
	{Title: "Planning", Href: "/planning"},
}

var secondary = []Item{
	{Title: "Settings", Href: "/settings"},
	{Title: "Support", Href: "/support"},
}

// Primary returns the main navigation items in display order.
func Primary() []Item {
	return append([]Item(nil), primary...)
}

// Secondary returns the footer navigation items.
func Secondary() []Item {
	return append([]Item(nil), secondary...)
}

// All returns primary then secondary items.
func All() []Item {
	return append(Primary(), secondary...)
}

// IsActive reports whether item should be highlighted for path. The root item
// matches only the root; others match their own path or any path beneath it.
func IsActive(item Item, path string) bool {
	if item.Href == RootHref {
		return path == RootHref
	}
	return path == item.Href || strings.HasPrefix(path, item.Href+"/")
}

// Sidebar is the collapsible navigation drawer.
type Sidebar struct {
	mu     sync.Mutex
	open   bool
	path   string
	cursor int
}

// NewSidebar returns a closed sidebar positioned on the root route.
func NewSidebar() *Sidebar {
	return &Sidebar{path: RootHref}
}

// Toggle flips the sidebar between open and closed.
func (s *Sidebar) Toggle() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}

// Close collapses the sidebar.
func (s *Sidebar) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

// IsOpen reports whether the sidebar is expanded.
func (s *Sidebar) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Path returns the current route.
func (s *Sidebar) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Cursor returns the index into All of the highlighted entry.
func (s *Sidebar) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Move shifts the cursor by delta, wrapping around the item list.
func (s *Sidebar) Move(delta int) {
	n := len(primary) + len(secondary)
	s.mu.Lock()
	s.cursor = ((s.cursor+delta)%n + n) % n
	s.mu.Unlock()
}

// Navigate sets the current route and collapses the sidebar.
func (s *Sidebar) Navigate(path string) {
	s.mu.Lock()
	s.path = path
	s.open = false
	s.mu.Unlock()
}

// Select navigates to the item under the cursor and returns it.
func (s *Sidebar) Select() Item {
	item := All()[s.Cursor()]
	s.Navigate(item.Href)
	return item
}
