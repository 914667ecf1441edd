package prompts

import (
	"slices"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/dompet/internal/ui"
)

// PromptAmount asks for a localised amount. The text is returned as typed;
// callers parse it with the display formatter.
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(amount), err
}

func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptInput shows defaultValue as a placeholder and returns it when the
// answer is left empty.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var value string

	input := huh.NewInput().
		Title(message).
		Value(&value)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}
	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validator(s)
		})
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}

// PromptSelect preselects defaultOption when it is one of options, else the
// first option.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption
	if !slices.Contains(options, selected) && len(options) > 0 {
		selected = options[0]
	}

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}

// AskConfirm is the final yes/no before money moves. It defaults to no.
func AskConfirm(message string) (bool, error) {
	confirmation := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmation, ui.SurveyOpts()...); err != nil {
		return false, err
	}
	return confirmation, nil
}
