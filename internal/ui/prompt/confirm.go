package prompt

import "context"

// Confirm asks a yes/no question. Only the exact answers "y" and "Y"
// confirm; anything else, including an empty answer, declines.
func Confirm(ctx context.Context, p Prompter, prompt string) (bool, error) {
	answer, err := p.Text(ctx, prompt+" (y/n)", "y/n")
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// IsYes reports whether answer is "y" or "Y".
func IsYes(answer string) bool {
	return answer == "y" || answer == "Y"
}
