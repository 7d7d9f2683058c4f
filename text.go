package prompt

import "context"

// Validator checks a submitted value. A non-nil error is shown to the user and
// keeps the form open.
type Validator func(value string) error

// InputOptions configures an Input form.
type InputOptions struct {
	// Message is the question shown on the prompt line. Required.
	Message string
	// DefaultValue is submitted when the user submits without typing.
	DefaultValue string
	// Placeholder is shown dimmed while nothing has been typed.
	Placeholder string
	// Validators run in order on submit; the first failure is shown.
	Validators []Validator
}

func (o *InputOptions) validate() error {
	if o.Message == "" {
		return optionError("Input", "Message", "must not be empty")
	}
	for i, v := range o.Validators {
		if v == nil {
			return optionError("Input", "Validators", "validator %d is nil", i)
		}
	}
	return nil
}

// Required is a Validator rejecting empty values.
func Required(value string) error {
	if value == "" {
		return errValueRequired
	}
	return nil
}

// Input asks for a line of text. On cancellation it returns a *CanceledError.
func Input(ctx context.Context, p *Prompter, opts InputOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	s := p.newSession("")
	return newForm[string](p, s, &inputModel{opts: opts, sess: s}).run(ctx)
}

type inputModel struct {
	opts InputOptions
	sess *session
}

func (m *inputModel) name() string { return "Input" }

func (m *inputModel) keys() keyTable { return nil }

func (m *inputModel) handleText(ev KeyEvent) bool {
	return m.sess.editInput(ev)
}

func (m *inputModel) render(b *OffscreenBuffer) {
	m.sess.writePrompt(b, m.opts.Message)
	if m.opts.DefaultValue != "" {
		b.WriteHint("(" + m.opts.DefaultValue + ") ")
	}
	if m.sess.input.Len() == 0 && m.opts.Placeholder != "" {
		b.PushCursor()
		b.WriteHint(m.opts.Placeholder)
		return
	}
	m.sess.writeInput(b)
}

func (m *inputModel) tryFinish() (string, bool) {
	value := m.sess.input.String()
	if value == "" {
		value = m.opts.DefaultValue
	}
	for _, v := range m.opts.Validators {
		if err := v(value); err != nil {
			m.sess.SetError(err.Error())
			return "", false
		}
	}
	return value, true
}

func (m *inputModel) finish(b *OffscreenBuffer, result string) {
	m.sess.writeDone(b, m.opts.Message, result)
}
