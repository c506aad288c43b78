package engine

import (
	"strconv"
	"strings"
	"time"
)

// restCacheCapacity bounds the memoization cache; the oldest entry is
// evicted once the capacity is exceeded.
const restCacheCapacity = 1000

type restKey struct {
	lastDate string
	lastType string
	curDate  string
	curType  string
}

// restCache memoizes rest-hour computations within one generation run.
// The same (date pair, type pair) combination recurs across candidate
// scoring passes, so hits are frequent; correctness never depends on them.
type restCache struct {
	entries map[restKey]float64
	order   []restKey
}

func newRestCache() *restCache {
	return &restCache{entries: make(map[restKey]float64)}
}

func (rc *restCache) hoursBetween(lastDate string, lastType ShiftType, curDate string, curType ShiftType) float64 {
	key := restKey{lastDate, lastType.ID, curDate, curType.ID}
	if hours, ok := rc.entries[key]; ok {
		return hours
	}

	hours := HoursBetween(lastDate, lastType, curDate, curType)

	if len(rc.order) >= restCacheCapacity {
		oldest := rc.order[0]
		rc.order = rc.order[1:]
		delete(rc.entries, oldest)
	}
	rc.entries[key] = hours
	rc.order = append(rc.order, key)

	return hours
}

// HoursBetween computes the rest interval between the end of one shift and
// the start of another. When the previous shift's end time-of-day is earlier
// than its start time-of-day the shift wraps past midnight and ends on the
// day after lastDate. A negative result means the shifts overlap.
func HoursBetween(lastDate string, lastType ShiftType, curDate string, curType ShiftType) float64 {
	lastEnd := shiftEnd(lastDate, lastType)
	curStart := atClock(curDate, curType.Start)
	return curStart.Sub(lastEnd).Hours()
}

// shiftEnd resolves the actual end instant of a shift started on date
func shiftEnd(date string, st ShiftType) time.Time {
	end := atClock(date, st.End)
	if clockMinutes(st.End) < clockMinutes(st.Start) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// atClock builds the instant for a YYYY-MM-DD date at an HH:MM clock time
func atClock(date, clock string) time.Time {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}
	}
	h, m := parseClock(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local)
}

// clockMinutes converts HH:MM to minutes since midnight for ordering
func clockMinutes(clock string) int {
	h, m := parseClock(clock)
	return h*60 + m
}

func parseClock(clock string) (hour, minute int) {
	parts := strings.SplitN(clock, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) == 2 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}
