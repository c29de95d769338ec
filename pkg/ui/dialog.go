package ui

import (
	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/toast"
	. "github.com/vango-dev/contactform/pkg/vdom"
)

// Element ids of the dialog tree.
const (
	RootID        = "contact"
	OpenButtonID  = "openDialog"
	DialogID      = "contactDialog"
	CloseButtonID = "closeDialog"
	FormID        = "contactForm"
)

// ContactDialog is the contact form component. It is not safe for
// concurrent use; a session drives it from a single goroutine.
type ContactDialog struct {
	cfg       dialogConfig
	root      *VNode
	dialog    *VNode
	registry  *treeRegistry
	validator *contact.FormValidator
	emitter   toast.Emitter
	open      bool
}

// NewContactDialog builds the dialog tree and assigns hydration ids to its
// interactive elements. Toasts are sent to emitter.
func NewContactDialog(emitter toast.Emitter, opts ...DialogOption) *ContactDialog {
	cfg := defaultDialogConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &ContactDialog{cfg: cfg, emitter: emitter}
	d.root = d.build()
	d.dialog = FindByID(d.root, DialogID)

	d.registry = newTreeRegistry(d.root)
	for _, f := range contact.Fields {
		d.registry.bind(f)
	}
	d.validator = contact.New(d.registry, cfg.validatorOpts...)

	AssignHIDs(d.root, NewHIDGenerator())
	return d
}

// Render implements vdom.Component. The same tree is returned every time;
// event handlers mutate it in place.
func (d *ContactDialog) Render() *VNode {
	return d.root
}

// Validator returns the FormValidator bound to the dialog's form.
func (d *ContactDialog) Validator() *contact.FormValidator {
	return d.validator
}

// IsOpen reports whether the dialog is shown.
func (d *ContactDialog) IsOpen() bool {
	return d.open
}

// Value returns the current value of field.
func (d *ContactDialog) Value(field contact.Field) string {
	ctl, ok := d.registry.Control(field)
	if !ok {
		return ""
	}
	return ctl.Value()
}

// TakeFocus returns the field that should receive focus, if an event
// requested one since the last call.
func (d *ContactDialog) TakeFocus() (contact.Field, bool) {
	return d.registry.takeFocus()
}

// Open shows the dialog with no stale errors.
func (d *ContactDialog) Open() {
	d.setOpen(true)
	d.validator.ClearValidationErrors()
}

// Close hides the dialog and clears all errors. Values are kept.
func (d *ContactDialog) Close() {
	d.setOpen(false)
	d.validator.ClearValidationErrors()
}

// Blur validates field when its control loses focus.
func (d *ContactDialog) Blur(field contact.Field) {
	d.validator.ValidateField(field)
}

// Input stores a new value typed into field. The phone value is stored
// formatted. A field already showing an error is validated again so the
// error disappears as soon as the value becomes valid.
func (d *ContactDialog) Input(field contact.Field, value string) {
	ctl, ok := d.registry.Control(field)
	if !ok {
		return
	}
	if field == contact.FieldPhone {
		value = contact.FormatPhone(value)
	}
	ctl.SetValue(value)
	if d.validator.HasError(field) {
		d.validator.ValidateField(field)
	}
}

// Submit validates the whole form. An invalid form moves focus to the
// first errored field. A valid one is acknowledged, then the dialog is
// closed and the form reset.
func (d *ContactDialog) Submit() {
	valid := d.validator.ValidateForm()
	if d.cfg.onSubmit != nil {
		d.cfg.onSubmit(valid)
	}
	if !valid {
		if f, ok := d.validator.FirstErrored(); ok {
			if ctl, ok := d.registry.Control(f); ok {
				ctl.Focus()
			}
		}
		return
	}

	if d.emitter != nil {
		toast.Success(d.emitter, d.cfg.successMessage)
	}
	d.setOpen(false)
	d.validator.Reset()
}

func (d *ContactDialog) setOpen(open bool) {
	d.open = open
	if open {
		d.dialog.SetAttr("open", true)
		d.dialog.SetAttr("data-state", "open")
	} else {
		d.dialog.RemoveAttr("open")
		d.dialog.SetAttr("data-state", "closed")
	}
}

func (d *ContactDialog) build() *VNode {
	return Div(ID(RootID), Class("contact"),
		Button(ID(OpenButtonID), Class("button"), Type("button"),
			OnClick(d.Open),
			d.cfg.openLabel,
		),
		Dialog(ID(DialogID), Class("dialog"),
			Data("state", "closed"),
			AriaModal(true),
			AriaLabel(d.cfg.title),
			OnCancel(d.Close),
			Div(Class("dialog__header"),
				H2(Class("dialog__title"), d.cfg.title),
				Button(ID(CloseButtonID), Class("dialog__close"), Type("button"),
					AriaLabel("Закрыть"),
					OnClick(d.Close),
					"×",
				),
			),
			Form(ID(FormID), Class("form"), Novalidate(),
				OnSubmit(d.Submit),
				d.group(contact.FieldName, "Имя",
					Input(Type("text"), Autocomplete("name"), Placeholder("Иван Иванов"))),
				d.group(contact.FieldEmail, "Email",
					Input(Type("email"), Autocomplete("email"), Placeholder("ivan@example.com"))),
				d.group(contact.FieldPhone, "Телефон",
					Input(Type("tel"), Autocomplete("tel"), Inputmode("tel"), Placeholder("+7 (999) 123-45-67"))),
				d.group(contact.FieldTopic, "Тема обращения", d.topicSelect()),
				d.group(contact.FieldMessage, "Сообщение",
					Textarea(Rows(5), Placeholder("Ваше сообщение"))),
				Button(Class("button", "form__submit"), Type("submit"), d.cfg.submitLabel),
			),
		),
	)
}

// group wraps control in a labelled form__group and binds it to field.
func (d *ContactDialog) group(field contact.Field, label string, control *VNode) *VNode {
	name := field.String()
	control.SetAttr("id", name)
	control.SetAttr("name", name)
	control.SetAttr("value", "")
	control.AddClass(formClass(contact.DefaultKind(field)))
	for _, h := range []EventHandler{
		OnBlur(func() { d.Blur(field) }),
		OnInput(func(value string) { d.Input(field, value) }),
	} {
		control.SetAttr(h.Event, h.Handler)
	}

	return Div(Class("form__group"),
		Label(Class("form__label"), For(name), label),
		control,
	)
}

func (d *ContactDialog) topicSelect() *VNode {
	return Select(
		Option(Value(""), Disabled(), "Выберите тему"),
		Range(d.cfg.topics, func(t Topic, _ int) *VNode {
			return Option(Value(t.Value), t.Label)
		}),
	)
}

func formClass(k contact.Kind) string {
	switch k {
	case contact.KindSelect:
		return "form__select"
	case contact.KindTextarea:
		return "form__textarea"
	default:
		return "form__input"
	}
}
