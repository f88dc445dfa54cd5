package service

// Severity classifies a notification for display.
type Severity string

// Notification severities
const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notifier surfaces save/update/delete outcomes to the user. Every terminal
// coordinator outcome produces exactly one Notify call.
type Notifier interface {
	Notify(title, description string, severity Severity)
}
