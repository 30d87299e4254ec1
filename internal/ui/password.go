package ui

import (
	"fmt"

	"github.com/julianstephens/agenda/internal/constants"
)

// TogglePasswordVisibility unmasks a masked input (or masks an unmasked one)
// and swaps the icon between the eye and eye-slash classes to match.
func TogglePasswordVisibility(doc Document, inputID string, icon IconElement) error {
	input, err := doc.FindElementByID(inputID)
	if err != nil {
		return fmt.Errorf("toggle password visibility of %q: %w", inputID, err)
	}

	if input.InputType() == constants.InputTypePassword {
		input.SetInputType(constants.InputTypeText)
		icon.RemoveClass(constants.IconEye)
		icon.AddClass(constants.IconEyeSlash)
		return nil
	}

	input.SetInputType(constants.InputTypePassword)
	icon.RemoveClass(constants.IconEyeSlash)
	icon.AddClass(constants.IconEye)
	return nil
}
