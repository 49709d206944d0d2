package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flatnav/models"
)

const (
	listTitleWidth = 28
	listURLWidth   = 44
)

// listModel is the bookmark list of the active category.
type listModel struct {
	items []models.Bookmark
	idx   int
}

func (m listModel) current() (models.Bookmark, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Bookmark{}, false
	}
	return m.items[m.idx], true
}

// setItems replaces the list and keeps the cursor in range.
func (m *listModel) setItems(items []models.Bookmark) {
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) down() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m listModel) View() string {
	if len(m.items) == 0 {
		return helpStyle.Render("no bookmarks in this category")
	}

	var b strings.Builder
	for i, item := range m.items {
		line := fmt.Sprintf("%-*s  %s", listTitleWidth, fitText(item.Title, listTitleWidth), fitText(item.URL, listURLWidth))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// bookmarksIn returns the bookmarks of categoryID in dashboard order.
func bookmarksIn(d models.Dashboard, categoryID string) []models.Bookmark {
	out := make([]models.Bookmark, 0, len(d.Bookmarks))
	for _, bm := range d.Bookmarks {
		if bm.CategoryID == categoryID {
			out = append(out, bm)
		}
	}
	return out
}
