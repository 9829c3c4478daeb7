package collector

import "time"

// ConsoleEntry is a browser console message or an uncaught page error.
type ConsoleEntry struct {
	Time time.Time
	// Type is the console method ("log", "error", ...) or "pageerror".
	Type string
	Text string
	// URL is the page the message was emitted on.
	URL string
}

// IsError reports whether the entry signals a script failure.
func (e ConsoleEntry) IsError() bool {
	return e.Type == "error" || e.Type == "pageerror"
}
