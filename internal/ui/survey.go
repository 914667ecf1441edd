package ui

import "github.com/AlecAivazis/survey/v2"

// SurveyOpts styles survey questions like the huh forms: a plain "-" marker
// and the accent colour on the question line.
func SurveyOpts() []survey.AskOpt {
	return []survey.AskOpt{
		survey.WithIcons(func(icons *survey.IconSet) {
			icons.Question.Text = "-"
			icons.Question.Format = "cyan+b"
			icons.Error.Text = "x"
		}),
		survey.WithShowCursor(true),
	}
}
