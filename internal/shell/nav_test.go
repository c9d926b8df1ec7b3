package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	overview := Item{Title: "Overview", Href: "/"}
	pulse := Item{Title: "Pulse", Href: "/pulse"}

	tests := []struct {
		name string
		item Item
		path string
		want bool
	}{
		{"root exact", overview, "/", true},
		{"root does not prefix", overview, "/pulse", false},
		{"exact", pulse, "/pulse", true},
		{"nested", pulse, "/pulse/daily", true},
		{"sibling prefix", pulse, "/pulsewave", false},
		{"other", pulse, "/capacity", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActive(tt.item, tt.path))
		})
	}
}

func TestNavigationItems(t *testing.T) {
	primary := Primary()
	assert.Len(t, primary, 6)
	assert.Equal(t, "Overview", primary[0].Title)
	assert.Equal(t, RootHref, primary[0].Href)

	secondary := Secondary()
	assert.Equal(t, []Item{{"Settings", "/settings"}, {"Support", "/support"}}, secondary)
	assert.Len(t, All(), 8)

	primary[0].Title = "changed"
	assert.Equal(t, "Overview", Primary()[0].Title)
}

func TestSidebarToggleAndNavigate(t *testing.T) {
	s := NewSidebar()
	assert.False(t, s.IsOpen())
	assert.Equal(t, RootHref, s.Path())

	s.Toggle()
	assert.True(t, s.IsOpen())

	s.Navigate("/forecasts")
	assert.False(t, s.IsOpen(), "navigating collapses the sidebar")
	assert.Equal(t, "/forecasts", s.Path())

	s.Toggle()
	s.Close()
	assert.False(t, s.IsOpen())
}

func TestSidebarCursorWraps(t *testing.T) {
	s := NewSidebar()
	s.Move(-1)
	assert.Equal(t, 7, s.Cursor())
	s.Move(2)
	assert.Equal(t, 1, s.Cursor())

	s.Toggle()
	item := s.Select()
	assert.Equal(t, "Pulse", item.Title)
	assert.Equal(t, "/pulse", s.Path())
	assert.False(t, s.IsOpen())
}
