package genai

// User-facing messages. All underlying causes are normalized to these
// so the UI layer never sees raw transport or parse errors.
const (
	generationFailedMessage   = "Failed to generate the application. Please check your configuration and try again."
	modificationFailedMessage = "Failed to apply the requested changes. Please try again."
)

// GenerationError reports a failed project generation. The cause is
// preserved for logs and errors.Unwrap, the message shown to the user
// is fixed.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return generationFailedMessage
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ModificationError reports a failed project modification.
type ModificationError struct {
	Cause error
}

func (e *ModificationError) Error() string {
	return modificationFailedMessage
}

func (e *ModificationError) Unwrap() error {
	return e.Cause
}
