package util

import (
	"fmt"
	"time"
)

// SecondsToAgo buckets an elapsed-seconds count into a human phrase. The
// bucket boundaries and rounding offsets are part of the service's observable
// output and must not drift.
func SecondsToAgo(a int64) string {
	switch {
	case a <= 0:
		return "just now"
	case a == 1:
		return "a second ago"
	case a <= 59:
		return fmt.Sprintf("%d seconds ago", a)
	case a <= 119:
		return "a minute ago" // 120 = 2 minutes
	case a <= 3540:
		return fmt.Sprintf("%d minutes ago", a/60)
	case a <= 7100:
		return "an hour ago" // 3600 = 1 hour
	case a <= 82800:
		return fmt.Sprintf("%d hours ago", (a+99)/3600)
	case a <= 172000:
		return "a day ago" // 86400 = 1 day
	case a <= 518400:
		return fmt.Sprintf("%d days ago", (a+800)/(60*60*24))
	case a <= 1036800:
		return "a week ago"
	default:
		return fmt.Sprintf("%d weeks ago", (a+180000)/(60*60*24*7))
	}
}

// TimeAgo formats how long before now the given instant was.
func TimeAgo(past, now time.Time) string {
	return SecondsToAgo(now.Unix() - past.Unix())
}
