package session

import "log"

// Notifier surfaces operation outcomes to the user, the headless equivalent
// of the web client's toasts.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Printf("[toast] level=success message=%q", message)
}

func (LogNotifier) Error(message string) {
	log.Printf("[toast] level=error message=%q", message)
}
