package tui

import (
	"strings"

	"github.com/MKhiriev/go-flatnav/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formBookmarkModel struct {
	inputs     []textinput.Model
	focus      int
	categoryID string
	err        string
}

func newFormBookmarkModel(categoryID string) formBookmarkModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "Title"
	inputs[1].Placeholder = "https://example.com"
	inputs[0].Focus()

	return formBookmarkModel{inputs: inputs, categoryID: categoryID}
}

func (m *formBookmarkModel) next(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// toBookmark validates the inputs. The service normalises the URL.
func (m formBookmarkModel) toBookmark() (models.Bookmark, error) {
	title := strings.TrimSpace(m.inputs[0].Value())
	url := strings.TrimSpace(m.inputs[1].Value())

	switch {
	case m.categoryID == "":
		return models.Bookmark{}, errNoCategory
	case title == "":
		return models.Bookmark{}, errEmptyTitle
	case url == "":
		return models.Bookmark{}, errEmptyURL
	}

	return models.Bookmark{Title: title, URL: url, CategoryID: m.categoryID}, nil
}

func (m formBookmarkModel) View() string {
	out := titleStyle.Render("New bookmark") + "\n\n"
	out += "Title: [" + m.inputs[0].View() + "]\n"
	out += "URL:   [" + m.inputs[1].View() + "]\n"
	if m.err != "" {
		out += "\n" + errorStyle.Render(m.err) + "\n"
	}
	out += "\n" + helpStyle.Render("esc cancel  tab next field  enter save")
	return overlayBoxStyle.Render(out)
}
