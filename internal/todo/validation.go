package todo

// RequireText checks that the text field was supplied. Empty strings are
// accepted; only absence is an error.
func RequireText(text *string) (string, error) {
	if text == nil {
		return "", NewValidationError("field required", "missing", "body", "text")
	}
	return *text, nil
}
