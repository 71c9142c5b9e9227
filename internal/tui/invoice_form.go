package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movo/dashboard/internal/domain"
)

// invoice form field indices; each custom reference adds a label and a value input
const (
	formFieldCustomer = iota
	formFieldEmail
	formFieldAmount
	formFieldCurrency
	formFieldDescription
	formBaseFieldCount
)

const maxReferences = 5

var formLabels = []string{"Customer Name:", "Customer Email:", "Amount:", "Currency:", "Description:"}

type invoiceForm struct {
	fields     []textinput.Model
	fieldFocus int
}

func newTextInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	return ti
}

// newInvoiceForm fills the form from d
func newInvoiceForm(d domain.DraftInvoice) *invoiceForm {
	f := &invoiceForm{fields: make([]textinput.Model, formBaseFieldCount)}

	f.fields[formFieldCustomer] = newTextInput("Jane Doe", 120, 40)
	f.fields[formFieldCustomer].SetValue(d.CustomerName)

	f.fields[formFieldEmail] = newTextInput("jane@example.com (optional)", 254, 40)
	f.fields[formFieldEmail].SetValue(d.CustomerEmail)

	f.fields[formFieldAmount] = newTextInput("1,500,000", 24, 20)
	if !d.Amount.IsZero() {
		f.fields[formFieldAmount].SetValue(d.Amount.String())
	}

	f.fields[formFieldCurrency] = newTextInput("IDR", 3, 6)
	f.fields[formFieldCurrency].SetValue(d.Currency)

	f.fields[formFieldDescription] = newTextInput("What is this invoice for?", 500, 60)
	f.fields[formFieldDescription].SetValue(d.Description)

	for _, ref := range d.References {
		f.appendReference(ref)
	}

	f.fieldFocus = formFieldCustomer
	f.fields[f.fieldFocus].Focus()
	return f
}

func (f *invoiceForm) referenceCount() int {
	return (len(f.fields) - formBaseFieldCount) / 2
}

func (f *invoiceForm) appendReference(ref domain.CustomReference) {
	label := newTextInput("PO number", 40, 20)
	label.SetValue(ref.Label)
	value := newTextInput("PO-2024-001", 120, 40)
	value.SetValue(ref.Value)
	f.fields = append(f.fields, label, value)
}

// addReference appends an empty reference row and focuses its label
func (f *invoiceForm) addReference() tea.Cmd {
	if f.referenceCount() >= maxReferences {
		return nil
	}
	f.appendReference(domain.CustomReference{})
	return f.focus(len(f.fields) - 2)
}

// removeReference drops the last reference row
func (f *invoiceForm) removeReference() tea.Cmd {
	if f.referenceCount() == 0 {
		return nil
	}
	last := len(f.fields) - 2
	if f.fieldFocus < last {
		f.fields = f.fields[:last]
		return nil
	}
	f.fields[f.fieldFocus].Blur()
	f.fields = f.fields[:last]
	f.fieldFocus = last - 1
	return f.fields[f.fieldFocus].Focus()
}

func (f *invoiceForm) focus(i int) tea.Cmd {
	f.fields[f.fieldFocus].Blur()
	f.fieldFocus = (i + len(f.fields)) % len(f.fields)
	return f.fields[f.fieldFocus].Focus()
}

func (f *invoiceForm) next() tea.Cmd { return f.focus(f.fieldFocus + 1) }

func (f *invoiceForm) prev() tea.Cmd { return f.focus(f.fieldFocus - 1) }

func (f *invoiceForm) onLastField() bool {
	return f.fieldFocus == len(f.fields)-1
}

func (f *invoiceForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.fieldFocus], cmd = f.fields[f.fieldFocus].Update(msg)
	return cmd
}

func (f *invoiceForm) value(i int) string {
	return strings.TrimSpace(f.fields[i].Value())
}

// draft reads the form. Rows with both reference inputs empty are skipped.
func (f *invoiceForm) draft() (domain.DraftInvoice, error) {
	d := f.lenientDraft()
	amount, err := domain.ParseAmount(f.value(formFieldAmount))
	if err != nil {
		return d, err
	}
	d.Amount = amount
	return d, nil
}

// lenientDraft reads the form keeping an unparsable amount as zero
func (f *invoiceForm) lenientDraft() domain.DraftInvoice {
	d := domain.DraftInvoice{
		CustomerName:  f.value(formFieldCustomer),
		CustomerEmail: f.value(formFieldEmail),
		Currency:      strings.ToUpper(f.value(formFieldCurrency)),
		Description:   f.value(formFieldDescription),
	}
	d.Amount, _ = domain.ParseAmount(f.value(formFieldAmount))
	for i := formBaseFieldCount; i+1 < len(f.fields); i += 2 {
		label, value := f.value(i), f.value(i+1)
		if label == "" && value == "" {
			continue
		}
		d.References = append(d.References, domain.CustomReference{Label: label, Value: value})
	}
	return d
}

func (f *invoiceForm) label(i int) string {
	if i < formBaseFieldCount {
		return formLabels[i]
	}
	n := (i-formBaseFieldCount)/2 + 1
	if (i-formBaseFieldCount)%2 == 0 {
		return fmt.Sprintf("Reference %d Label:", n)
	}
	return fmt.Sprintf("Reference %d Value:", n)
}

func (f *invoiceForm) view() string {
	var s string
	for i := range f.fields {
		indicator := "  "
		style := subtitleStyle
		if i == f.fieldFocus {
			indicator = "> "
			style = focusedLabel
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, style.Render(f.label(i)), f.fields[i].View())
	}
	return s
}
