package mines

// AssertionError reports a broken engine invariant. It is raised with
// panic and never returned to callers.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "mines: assertion failed: " + e.message
}
