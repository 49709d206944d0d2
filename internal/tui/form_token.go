package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// formTokenModel asks for a personal access token without echoing it.
type formTokenModel struct {
	input textinput.Model
}

func newFormTokenModel() formTokenModel {
	input := textinput.New()
	input.Placeholder = "ghp_..."
	input.Width = 50
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return formTokenModel{input: input}
}

func (m formTokenModel) View() string {
	out := titleStyle.Render("Access token") + "\n\n"
	out += "[" + m.input.View() + "]\n\n"
	out += helpStyle.Render("Needs the gist scope. Leave empty to remove it.") + "\n\n"
	out += helpStyle.Render("esc cancel  enter save")
	return overlayBoxStyle.Render(out)
}
