package output

// Announcer delivers a contest announcement to a channel. Delivery is
// best-effort: a failed announcement never unwinds the state transition
// that triggered it.
type Announcer interface {
	Announce(channelID, message string) error
}
