package matches

import (
	"sort"
	"time"
)

// Partition splits matches into upcoming (date >= now, ascending) and past
// (date < now, descending). The split is exhaustive and non-overlapping;
// ties on the same date keep their input order.
func Partition(list []Match, now time.Time) (upcoming, past []Match) {
	upcoming = make([]Match, 0, len(list))
	past = make([]Match, 0)

	for _, m := range list {
		if IsUpcoming(m, now) {
			upcoming = append(upcoming, m)
		} else {
			past = append(past, m)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date.After(past[j].Date)
	})

	return upcoming, past
}

func IsUpcoming(m Match, now time.Time) bool {
	return !m.Date.Before(now)
}
