// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// InitValues are the answers collected by RunInitForm.
type InitValues struct {
	Input       string
	PackageName string
	ProjectName string
	ErrorModel  string
	Strict      bool
	Output      string
	Format      string
}

// RunInitForm runs the interactive form for the init command.
// It fills v with user input, starting from its current values.
func RunInitForm(v *InitValues, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API document").
				Placeholder("openapi.yaml").
				Validate(requiredValidator("document path")).
				Value(&v.Input),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("WIT package name").
				Placeholder("openapi").
				Validate(packageNameValidator).
				Value(&v.PackageName),
			huh.NewInput().
				Title("Project name (optional)").
				Value(&v.ProjectName),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Error model").
				Options(
					huh.NewOption("Variant (recommended)", "variant"),
					huh.NewOption("Record", "record"),
					huh.NewOption("String", "string"),
				).
				Value(&v.ErrorModel),
			huh.NewConfirm().
				Title("Strict mode").
				Description("Fail on unsupported compositions and duplicate identifiers").
				Value(&v.Strict),
		),
		huh.NewGroup(
			RunTranslateFormatSelect(&v.Format, formats),
			huh.NewInput().
				Title("Output directory").
				Placeholder("wit").
				Value(&v.Output),
		),
	).WithTheme(Theme()).Run()
}
