package domain

// DeleteConfirmation is the two-step delete guard used for goals:
// idle -> confirming(target) -> idle. The zero value is idle.
type DeleteConfirmation struct {
	target string
}

// Request moves to confirming(target). Requesting a different target
// replaces the pending one.
func (c DeleteConfirmation) Request(target string) DeleteConfirmation {
	return DeleteConfirmation{target: target}
}

// Confirm returns to idle and reports whether target was the pending one.
// Confirming anything else is a no-op that still dismisses.
func (c DeleteConfirmation) Confirm(target string) (DeleteConfirmation, bool) {
	ok := c.target != "" && c.target == target
	return DeleteConfirmation{}, ok
}

// Dismiss returns to idle without deleting.
func (c DeleteConfirmation) Dismiss() DeleteConfirmation {
	return DeleteConfirmation{}
}

// Pending returns the target awaiting confirmation, if any.
func (c DeleteConfirmation) Pending() (string, bool) {
	return c.target, c.target != ""
}
