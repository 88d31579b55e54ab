package ui

import (
	"errors"
	"strings"

	"websakha/internal/contact"
	"websakha/internal/content"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const submitFocus = "submit"

var lineFields = []contact.Field{contact.FieldName, contact.FieldEmail, contact.FieldPhone, contact.FieldSubject}

// ContactView is the contact page: company details beside the form.
// Every edit goes straight into the draft; submitting validates locally,
// then hands a copy of the draft to the submitter off the UI goroutine.
type ContactView struct {
	id        int
	info      content.ContactInfo
	submitter contact.Submitter

	draft    contact.Draft
	inputs   []textinput.Model
	message  textarea.Model
	focus    *FocusRing
	focusCmd tea.Cmd
	missing  map[contact.Field]bool

	spinner spinner.Model
	pending int
	width   int
	height  int
}

var _ View = (*ContactView)(nil)

// NewContactView builds an empty form.
func NewContactView(info content.ContactInfo, submitter contact.Submitter) *ContactView {
	v := &ContactView{
		id:        nextID(),
		info:      info,
		submitter: submitter,
		missing:   map[contact.Field]bool{},
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles.Key)),
	}
	for _, f := range lineFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder(f)
		in.CharLimit = 120
		v.inputs = append(v.inputs, in)
	}
	v.message = textarea.New()
	v.message.Placeholder = placeholder(contact.FieldMessage)
	v.message.ShowLineNumbers = false
	v.message.CharLimit = 2000
	v.message.SetHeight(4)

	order := make([]string, 0, len(contact.Fields)+1)
	for _, f := range contact.Fields {
		order = append(order, string(f))
	}
	v.focus = &FocusRing{Order: append(order, submitFocus), OnChange: v.moveFocus}
	v.focus.SetFocus(string(contact.FieldName))
	return v
}

func placeholder(f contact.Field) string {
	switch f {
	case contact.FieldName:
		return "Your full name"
	case contact.FieldEmail:
		return "you@example.com"
	case contact.FieldPhone:
		return "10 to 15 digits"
	case contact.FieldSubject:
		return "What is this about?"
	case contact.FieldMessage:
		return "Tell us about your project"
	}
	return ""
}

// moveFocus blurs the widget losing focus and focuses the new one.
func (v *ContactView) moveFocus(from, to string) {
	for i, f := range lineFields {
		switch string(f) {
		case from:
			v.inputs[i].Blur()
		case to:
			v.focusCmd = v.inputs[i].Focus()
		}
	}
	switch string(contact.FieldMessage) {
	case from:
		v.message.Blur()
	case to:
		v.focusCmd = v.message.Focus()
	}
}

// Init implements View.
func (v *ContactView) Init() tea.Cmd {
	return v.takeFocusCmd()
}

func (v *ContactView) takeFocusCmd() tea.Cmd {
	cmd := v.focusCmd
	v.focusCmd = nil
	return cmd
}

// Typing reports whether a text field has focus, so bare letter keys
// belong to the form.
func (v *ContactView) Typing() bool {
	return v.focus.Current != submitFocus
}

// Draft returns a copy of the form contents.
func (v *ContactView) Draft() contact.Draft {
	return v.draft
}

// Pending is the number of submissions still in flight.
func (v *ContactView) Pending() int {
	return v.pending
}

// Update implements View.
func (v *ContactView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.resize()
		return v, nil

	case SubmitResultMsg:
		if msg.ViewID != v.id {
			return v, nil
		}
		v.pending = max(v.pending-1, 0)
		if msg.Result.OK() {
			v.reset()
		}
		return v, nil

	case spinner.TickMsg:
		if v.pending == 0 {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		onMessage := v.focus.Current == string(contact.FieldMessage)
		switch msg.String() {
		case "tab":
			v.focus.Next()
			return v, v.takeFocusCmd()
		case "shift+tab":
			v.focus.Prev()
			return v, v.takeFocusCmd()
		case "down":
			if !onMessage {
				v.focus.Next()
				return v, v.takeFocusCmd()
			}
		case "up":
			if !onMessage {
				v.focus.Prev()
				return v, v.takeFocusCmd()
			}
		case "ctrl+s":
			return v, v.submit()
		case "enter":
			switch v.focus.Current {
			case submitFocus:
				return v, v.submit()
			case string(contact.FieldMessage):
			default:
				v.focus.Next()
				return v, v.takeFocusCmd()
			}
		}
	}
	return v, v.forward(msg)
}

// forward hands msg to the focused widget and copies its value into the draft.
func (v *ContactView) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for i, f := range lineFields {
		if string(f) == v.focus.Current {
			v.inputs[i], cmd = v.inputs[i].Update(msg)
			v.setField(f, v.inputs[i].Value())
			return cmd
		}
	}
	if v.focus.Current == string(contact.FieldMessage) {
		v.message, cmd = v.message.Update(msg)
		v.setField(contact.FieldMessage, v.message.Value())
	}
	return cmd
}

func (v *ContactView) setField(f contact.Field, value string) {
	if v.draft.Update(f, value) && value != "" {
		delete(v.missing, f)
	}
}

// SetField fills a field as if typed.
func (v *ContactView) SetField(f contact.Field, value string) bool {
	for i, lf := range lineFields {
		if lf == f {
			v.inputs[i].SetValue(value)
			v.setField(f, v.inputs[i].Value())
			return true
		}
	}
	if f == contact.FieldMessage {
		v.message.SetValue(value)
		v.setField(f, v.message.Value())
		return true
	}
	return false
}

// submit validates locally and, when the draft is complete, sends a copy.
func (v *ContactView) submit() tea.Cmd {
	if err := v.draft.Validate(); err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			v.missing = map[contact.Field]bool{}
			for _, f := range verr.Missing {
				v.missing[f] = true
			}
		}
		res := contact.Result{Outcome: contact.OutcomeValidationFailure, Err: err}
		return showToast(ToastError, res.Message())
	}
	v.missing = map[contact.Field]bool{}
	v.pending++
	return tea.Batch(v.spinner.Tick, submitCmd(v.submitter, v.id, v.draft))
}

func (v *ContactView) reset() {
	v.draft.Reset()
	for i := range v.inputs {
		v.inputs[i].Reset()
	}
	v.message.Reset()
	v.missing = map[contact.Field]bool{}
}

func (v *ContactView) compact() bool {
	return v.width < CompactWidth
}

func (v *ContactView) formWidth() int {
	if v.compact() {
		return max(v.width-4, 20)
	}
	return max(v.width/2-4, 30)
}

func (v *ContactView) resize() {
	w := v.formWidth()
	for i := range v.inputs {
		v.inputs[i].Width = w - 2
	}
	v.message.SetWidth(w)
}

// View implements View.
func (v *ContactView) View() string {
	info := v.infoView()
	form := v.formView()
	if v.compact() {
		return lipgloss.JoinVertical(lipgloss.Left, info, "", form)
	}
	left := lipgloss.NewStyle().Width(v.width / 2).Padding(0, 2).Render(info)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, form)
}

func (v *ContactView) infoView() string {
	var b strings.Builder
	b.WriteString(Styles.Eyebrow.Render("GET IN TOUCH") + "\n")
	b.WriteString(Styles.Title.Render("Contact ") + Styles.Highlight.Render("Us") + "\n\n")
	b.WriteString(Styles.Brand.Render(v.info.Company) + "\n")
	for _, o := range v.info.Offices {
		b.WriteString("\n" + Styles.Label.Bold(true).Render(o.Label) + "\n")
		for _, l := range o.Lines {
			b.WriteString(Styles.Muted.Render(l) + "\n")
		}
	}
	b.WriteString("\n" + Styles.Key.Render("☎ ") + Styles.Normal.Render(v.info.Mobile) + "\n")
	b.WriteString(Styles.Key.Render("✉ ") + Styles.Normal.Render(v.info.Email))
	return b.String()
}

func (v *ContactView) formView() string {
	var rows []string
	for i, f := range lineFields {
		rows = append(rows, v.label(f), v.inputs[i].View(), "")
	}
	rows = append(rows, v.label(contact.FieldMessage), v.message.View(), "")

	button := Styles.Button.Render("Send Message")
	if v.focus.Current == submitFocus {
		button = Styles.ButtonOn.Render("Send Message")
	}
	if v.pending > 0 {
		button += " " + v.spinner.View() + Styles.Muted.Render(" sending…")
	}
	rows = append(rows, button, "", Styles.Muted.Render("tab: next field  ctrl+s: send  esc: back"))
	return lipgloss.NewStyle().Width(v.formWidth()).Render(strings.Join(rows, "\n"))
}

func (v *ContactView) label(f contact.Field) string {
	text := f.Label()
	if f.Required() {
		text += " *"
	}
	style := Styles.Label
	if v.missing[f] {
		style = Styles.LabelError
	}
	if v.focus.Current == string(f) {
		style = style.Bold(true)
	}
	return style.Render(text)
}
