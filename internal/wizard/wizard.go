// Package wizard implements the interactive template picker used when the
// new command runs without arguments.
package wizard

import (
	"fmt"
	"strings"

	"github.com/tenheadedlion/contemplate/internal/messages"
	"github.com/tenheadedlion/contemplate/internal/registry"
)

// UI defines the interaction methods. HuhUI is the terminal implementation;
// tests supply a scripted fake.
type UI interface {
	Select(title string, options []string, value *string) error
	Input(title string, value *string) error
}

// Run asks for a template identifier and a destination name. The returned
// values feed the same pipeline as explicit arguments.
func Run(reg *registry.Registry, ui UI) (id string, dest string, err error) {
	names := reg.Names()
	if len(names) == 0 {
		return "", "", fmt.Errorf("no templates registered")
	}
	id = names[0]
	if err := ui.Select(messages.WizardSelectTitle, names, &id); err != nil {
		return "", "", err
	}
	if err := ui.Input(messages.WizardInputTitle, &dest); err != nil {
		return "", "", err
	}
	if err := ValidateName(dest); err != nil {
		return "", "", err
	}
	return id, dest, nil
}

// ValidateName checks a destination name: non-empty and a plain directory
// name, used verbatim as the final path segment.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(messages.WizardNameRequired)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf(messages.WizardNameNoSeparator)
	}
	return nil
}
