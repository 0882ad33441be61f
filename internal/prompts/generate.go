// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunTranslateFormatSelect returns a select field for choosing translation output format.
func RunTranslateFormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunGenerateForm prompts for the values generate needs and that were not
// given on the command line. Fields already set are skipped.
func RunGenerateForm(input, format *string, formats []string) error {
	var fields []huh.Field
	if *input == "" {
		fields = append(fields, huh.NewInput().
			Title("API document").
			Placeholder("openapi.yaml").
			Validate(requiredValidator("document path")).
			Value(input))
	}
	if *format == "" {
		fields = append(fields, RunTranslateFormatSelect(format, formats))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
