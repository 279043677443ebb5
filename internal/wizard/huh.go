package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tenheadedlion/contemplate/internal/messages"
	"github.com/tenheadedlion/contemplate/internal/terminal"
)

// HuhUI implements UI using charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
}

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.WizardRequiresTerminal)
}

// Select implements UI.
func (ui *HuhUI) Select(title string, options []string, value *string) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(value),
	))
	return form.Run()
}

// Input implements UI.
func (ui *HuhUI) Input(title string, value *string) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Validate(ValidateName).
			Value(value),
	))
	return form.Run()
}
