package services

import "time"

const dateLayout = "2006-01-02"

// CurrentDate formats today's local calendar date as YYYY-MM-DD. It is
// recomputed on every call; a process running across midnight observes
// the new date on the next call.
func CurrentDate(location *time.Location) string {
	if location == nil {
		location = time.Local
	}
	return time.Now().In(location).Format(dateLayout)
}

func FormatDate(value time.Time) string {
	return value.Format(dateLayout)
}

func ParseDate(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.Local
	}
	return time.ParseInLocation(dateLayout, raw, location)
}

// DateDaysAgo subtracts days calendar days from the given YYYY-MM-DD
// date using local calendar arithmetic. A malformed input counts from
// today instead of failing.
func DateDaysAgo(days int, fromDate string, location *time.Location) string {
	if location == nil {
		location = time.Local
	}
	parsed, err := ParseDate(fromDate, location)
	if err != nil {
		parsed = time.Now().In(location)
	}
	return parsed.AddDate(0, 0, -days).Format(dateLayout)
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}
