package tui

// toastExpiredMsg clears the toast it was scheduled for. A newer toast keeps showing.
type toastExpiredMsg struct {
	id int
}
