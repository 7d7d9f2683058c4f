// Package prompt provides interactive terminal prompts for Go programs.
//
// Forms such as MultiSelect, Select, Confirm and Input draw inline below the
// current output, redraw only the lines that changed on every key, and leave
// a one-line summary of the answer when they complete:
//
//	p, err := prompt.New()
//	if err != nil {
//		return err
//	}
//	defer p.Close()
//
//	picked, err := prompt.MultiSelect(ctx, p, prompt.MultiSelectOptions[string]{
//		Message: "Services to deploy",
//		Items:   []string{"api", "web", "worker"},
//		Minimum: 1,
//	})
//	if errors.Is(err, prompt.ErrCanceled) {
//		return nil
//	}
//
// Drawing goes through an OffscreenBuffer, which diffs each frame against the
// last one and patches the terminal with relative cursor moves. Custom forms can
// use it directly on any Console; MockConsole emulates a terminal for tests.
package prompt
