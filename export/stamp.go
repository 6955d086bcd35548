package export

import "time"

const stampLayout = "01022006_150405"

// Stamp formats time as MMDDYYYY_HHMMSS.
func Stamp(t time.Time) string {
	return t.Format(stampLayout)
}
