package reports

import (
	"strconv"
	"strings"
	"time"
)

// splitDate parses a YYYY-MM-DD string into year and month. Malformed
// dates report ok=false and are skipped by the rollups.
func splitDate(date string) (year, month int, ok bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// Today formats the current local date as YYYY-MM-DD, the comparison format
// used across the aggregations.
func Today() string {
	return time.Now().Format("2006-01-02")
}
