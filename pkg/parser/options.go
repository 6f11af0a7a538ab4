package parser

// LoadOptions configures a single Load call.
type LoadOptions struct {
	// Lead is the command lead character. Zero means '@'.
	Lead rune

	// PermitList holds glob patterns (matched with doublestar semantics,
	// including "**") against which a missing @i target's path is checked.
	// An entry equal to the include command itself ("@i" for the default
	// lead) matches every target. A match downgrades a missing include from
	// a fatal error to a logged warning; the include is simply skipped.
	PermitList []string

	// Strict rejects any @x command in Prose state that isn't one of the
	// recognized markers, instead of passing it through as literal text.
	Strict bool
}
