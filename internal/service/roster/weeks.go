package roster

import (
	"sort"
	"time"
)

// weekBucket groups the days of (part of) a month by labor demand. After
// merging, a bucket is not necessarily a single calendar ISO week.
type weekBucket struct {
	Weekdays  []time.Time
	Saturdays []time.Time
	Sundays   []time.Time
}

func (w weekBucket) merge(other weekBucket) weekBucket {
	combined := weekBucket{
		Weekdays:  append(append([]time.Time{}, w.Weekdays...), other.Weekdays...),
		Saturdays: append(append([]time.Time{}, w.Saturdays...), other.Saturdays...),
		Sundays:   append(append([]time.Time{}, w.Sundays...), other.Sundays...),
	}
	sortDates(combined.Weekdays)
	sortDates(combined.Saturdays)
	sortDates(combined.Sundays)
	return combined
}

func sortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}

// monthWeeks partitions a month into week buckets. Days are grouped by ISO
// week, then any week with fewer than three weekdays is merged into the
// previous cleaned week, or buffered and merged into the next one. This
// keeps short boundary weeks from turning into sparse labor demand.
func monthWeeks(year int, month time.Month) []weekBucket {
	type weekKey struct {
		year, week int
	}

	raw := make(map[weekKey]*weekBucket)
	keys := make([]weekKey, 0)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		isoYear, isoWeek := d.ISOWeek()
		key := weekKey{isoYear, isoWeek}
		bucket, ok := raw[key]
		if !ok {
			bucket = &weekBucket{}
			raw[key] = bucket
			keys = append(keys, key)
		}

		switch d.Weekday() {
		case time.Saturday:
			bucket.Saturdays = append(bucket.Saturdays, d)
		case time.Sunday:
			bucket.Sundays = append(bucket.Sundays, d)
		default:
			bucket.Weekdays = append(bucket.Weekdays, d)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	cleaned := make([]weekBucket, 0, len(keys))
	var buffer *weekBucket

	for _, key := range keys {
		week := *raw[key]

		if len(week.Weekdays) < 3 {
			if len(cleaned) > 0 {
				prev := cleaned[len(cleaned)-1]
				cleaned[len(cleaned)-1] = prev.merge(week)
			} else {
				// Nothing cleaned yet; hold and merge into the next week.
				buffered := week
				buffer = &buffered
			}
			continue
		}

		if buffer != nil {
			week = buffer.merge(week)
			buffer = nil
		}
		cleaned = append(cleaned, week)
	}

	if buffer != nil {
		cleaned = append(cleaned, *buffer)
	}

	return cleaned
}
