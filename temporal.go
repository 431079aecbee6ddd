package gokata

import "time"

const (
	layoutDate = "2006-01-02"
	layoutTime = "15:04:05.999999999" // fraction optional on parse, trimmed on format
)

// formatTemporal renders t as the ISO-8601 string form for the granularity.
// Datetimes are normalized to UTC and formatted as canonical RFC3339.
func formatTemporal(t time.Time, g Granularity) string {
	switch g {
	case GranularityDate:
		return t.Format(layoutDate)
	case GranularityTime:
		return t.Format(layoutTime)
	default:
		return t.UTC().Format(time.RFC3339Nano)
	}
}

// parseTemporal is the inverse of formatTemporal. Date and time-of-day values
// come back anchored at the zero date/clock in UTC.
func parseTemporal(s string, g Granularity) (time.Time, error) {
	switch g {
	case GranularityDate:
		return time.Parse(layoutDate, s)
	case GranularityTime:
		return time.Parse(layoutTime, s)
	default:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
				return t2, nil
			}
			return time.Time{}, err
		}
		return t, nil
	}
}
