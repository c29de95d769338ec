package ui

import "github.com/vango-dev/contactform/pkg/contact"

// Topic is one choice of the topic select.
type Topic struct {
	Value string
	Label string
}

// DefaultTopics are the topics offered when none are configured.
var DefaultTopics = []Topic{
	{Value: "support", Label: "Техническая поддержка"},
	{Value: "sales", Label: "Сотрудничество"},
	{Value: "feedback", Label: "Отзыв о работе"},
	{Value: "other", Label: "Другое"},
}

// SuccessMessage is the acknowledgement shown after a valid submission.
const SuccessMessage = "Форма успешно отправлена!"

// DialogOption configures a ContactDialog.
type DialogOption func(*dialogConfig)

type dialogConfig struct {
	title          string
	openLabel      string
	submitLabel    string
	successMessage string
	topics         []Topic
	validatorOpts  []contact.Option
	onSubmit       func(valid bool)
}

func defaultDialogConfig() dialogConfig {
	return dialogConfig{
		title:          "Связаться с нами",
		openLabel:      "Написать нам",
		submitLabel:    "Отправить",
		successMessage: SuccessMessage,
		topics:         DefaultTopics,
	}
}

// DialogTitle sets the dialog heading.
func DialogTitle(title string) DialogOption {
	return func(c *dialogConfig) {
		if title != "" {
			c.title = title
		}
	}
}

// DialogOpenLabel sets the label of the button that opens the dialog.
func DialogOpenLabel(label string) DialogOption {
	return func(c *dialogConfig) {
		if label != "" {
			c.openLabel = label
		}
	}
}

// DialogSubmitLabel sets the submit button label.
func DialogSubmitLabel(label string) DialogOption {
	return func(c *dialogConfig) {
		if label != "" {
			c.submitLabel = label
		}
	}
}

// DialogSuccessMessage sets the acknowledgement shown on success.
func DialogSuccessMessage(msg string) DialogOption {
	return func(c *dialogConfig) {
		if msg != "" {
			c.successMessage = msg
		}
	}
}

// DialogTopics sets the choices of the topic select.
func DialogTopics(topics []Topic) DialogOption {
	return func(c *dialogConfig) {
		if len(topics) > 0 {
			c.topics = topics
		}
	}
}

// DialogValidatorOptions passes options to the underlying FormValidator.
func DialogValidatorOptions(opts ...contact.Option) DialogOption {
	return func(c *dialogConfig) {
		c.validatorOpts = append(c.validatorOpts, opts...)
	}
}

// DialogOnSubmit registers fn to be called after every submit attempt.
func DialogOnSubmit(fn func(valid bool)) DialogOption {
	return func(c *dialogConfig) {
		c.onSubmit = fn
	}
}
