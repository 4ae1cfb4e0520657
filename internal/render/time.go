package render

import "time"

// dateLayout is the renderer's fixed date/time format, always in local
// time: YYYY-MM-DD HH:MM:SS.
const dateLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in the renderer's fixed local-time layout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(dateLayout)
}
