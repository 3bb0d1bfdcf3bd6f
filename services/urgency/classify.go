package urgency

import (
	"fmt"
	"math"
	"time"
)

type Urgency string

const (
	UrgencyOverdue     Urgency = "overdue"
	UrgencyDueToday    Urgency = "due_today"
	UrgencyDueTomorrow Urgency = "due_tomorrow"
	UrgencyUrgent      Urgency = "urgent"
	UrgencyNormal      Urgency = "normal"
)

// DaysUntilDue counts whole calendar days between today and the due date,
// both taken at midnight. A due date earlier today is 0, not negative.
func DaysUntilDue(dueDate time.Time, now time.Time) int {
	due := atMidnight(dueDate)
	today := atMidnight(now)

	return int(math.Ceil(due.Sub(today).Hours() / 24))
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify buckets a due-date distance for display. Orders 2 or 3 days out
// are labeled urgent but do not trigger the alert, see TriggersAlert.
func Classify(daysUntilDue int) Urgency {
	switch {
	case daysUntilDue < 0:
		return UrgencyOverdue
	case daysUntilDue == 0:
		return UrgencyDueToday
	case daysUntilDue == 1:
		return UrgencyDueTomorrow
	case daysUntilDue <= 3:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}

// TriggersAlert holds for overdue, due-today and due-tomorrow only.
func TriggersAlert(daysUntilDue int) bool {
	return daysUntilDue <= 1
}

// DateStatusText renders the due-date distance for the order overview.
func DateStatusText(dueDate time.Time, now time.Time) string {
	days := DaysUntilDue(dueDate, now)

	switch {
	case days < -1:
		return fmt.Sprintf("Overdue by %d days", -days)
	case days == -1:
		return "Overdue by 1 day"
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}
