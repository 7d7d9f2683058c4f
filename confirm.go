package prompt

import (
	"context"
	"strings"
)

// ConfirmOptions configures a Confirm form.
type ConfirmOptions struct {
	// Message is the question shown on the prompt line. Required.
	Message string
	// DefaultValue is the answer when the user submits without typing.
	// Without one an answer must be typed.
	DefaultValue *bool
}

func (o *ConfirmOptions) validate() error {
	if o.Message == "" {
		return optionError("Confirm", "Message", "must not be empty")
	}
	return nil
}

// Confirm asks a yes/no question. On cancellation it returns a *CanceledError.
func Confirm(ctx context.Context, p *Prompter, opts ConfirmOptions) (bool, error) {
	if err := opts.validate(); err != nil {
		return false, err
	}
	s := p.newSession("")
	return newForm[bool](p, s, &confirmModel{opts: opts, sess: s}).run(ctx)
}

type confirmModel struct {
	opts ConfirmOptions
	sess *session
}

func (m *confirmModel) name() string { return "Confirm" }

func (m *confirmModel) keys() keyTable { return nil }

func (m *confirmModel) handleText(ev KeyEvent) bool {
	return m.sess.editInput(ev)
}

func (m *confirmModel) choices() string {
	switch {
	case m.opts.DefaultValue == nil:
		return "(y/n) "
	case *m.opts.DefaultValue:
		return "(Y/n) "
	default:
		return "(y/N) "
	}
}

func (m *confirmModel) render(b *OffscreenBuffer) {
	m.sess.writePrompt(b, m.opts.Message)
	b.WriteHint(m.choices())
	m.sess.writeInput(b)
}

func (m *confirmModel) tryFinish() (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(m.sess.input.String())) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	case "":
		if m.opts.DefaultValue != nil {
			return *m.opts.DefaultValue, true
		}
		m.sess.SetError("Value is required")
	default:
		m.sess.SetError("Please answer y or n")
	}
	return false, false
}

func (m *confirmModel) finish(b *OffscreenBuffer, result bool) {
	answer := "No"
	if result {
		answer = "Yes"
	}
	m.sess.writeDone(b, m.opts.Message, answer)
}
