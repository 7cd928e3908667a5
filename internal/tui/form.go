package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/parliament/internal/errors"
	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/tui/styles"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldGroup
	fieldTags
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Group", "Tags"}

// proposalForm collects a new proposal. Nothing is submitted until every
// required field passes validation.
type proposalForm struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newProposalForm() proposalForm {
	placeholders := [fieldCount]string{
		"Digital Privacy Act",
		"What the law would change",
		"group id, e.g. liberals",
		"comma-separated, e.g. privacy, technology",
	}
	limits := [fieldCount]int{120, 400, 40, 120}

	f := proposalForm{inputs: make([]textinput.Model, fieldCount)}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 48
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].Focus()
	return f
}

// request builds the submission from the current field values.
func (f proposalForm) request() proposal.SubmitRequest {
	return proposal.SubmitRequest{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
		ProposedBy:  f.inputs[fieldGroup].Value(),
		Tags:        proposal.ParseTags(f.inputs[fieldTags].Value()),
	}
}

func (f *proposalForm) focusField(i int) tea.Cmd {
	if i < 0 || i >= fieldCount {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

func (f *proposalForm) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *proposalForm) prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

func (f proposalForm) onLastField() bool {
	return f.focus == fieldCount-1
}

// setError shows err inline and moves focus to the field it concerns.
func (f *proposalForm) setError(err error) tea.Cmd {
	f.err = err.Error()

	var ve *errors.ValidationError
	switch {
	case errors.As(err, &ve):
		switch ve.Field {
		case "title":
			return f.focusField(fieldTitle)
		case "description":
			return f.focusField(fieldDescription)
		case "proposedBy":
			return f.focusField(fieldGroup)
		}
	case errors.Is(err, errors.ErrGroupNotFound):
		return f.focusField(fieldGroup)
	}
	return nil
}

// update forwards msg to the focused input.
func (f proposalForm) update(msg tea.Msg) (proposalForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f proposalForm) view() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("New proposal"))
	b.WriteString("\n\n")

	for i, in := range f.inputs {
		label := styles.FormLabel
		if i == f.focus {
			label = styles.FormLabelFocused
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString(styles.FormError.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("tab next field • enter submit on last field • ctrl+s submit • esc cancel"))
	return styles.Modal.Render(b.String())
}
