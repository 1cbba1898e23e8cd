package scheduling

import (
	"time"

	"shift-planner-backend/internal/database/models"
)

// AvailabilitySets partitions an employee's availability records into the
// three interval lists the solver consumes. The lists are disjoint: each
// record lands in at most one of them.
type AvailabilitySets struct {
	// Unavailable holds hard constraints (status "unreachable")
	Unavailable []Interval
	// Undesired holds soft constraints (status "unavailable")
	Undesired []Interval
	// Desired holds preferred windows (status "preferable")
	Desired []Interval
}

// ClassifyAvailability maps records by status: unreachable into the hard
// list, unavailable into the soft list, preferable into the desired list.
// Any other status, and any record whose partial-day times fail to parse,
// is excluded from all three lists.
func ClassifyAvailability(records []models.AvailabilityRecord) AvailabilitySets {
	sets := AvailabilitySets{
		Unavailable: []Interval{},
		Undesired:   []Interval{},
		Desired:     []Interval{},
	}

	for i := range records {
		rec := &records[i]
		iv, ok := recordInterval(rec)
		if !ok {
			continue
		}

		switch rec.Status {
		case models.AvailabilityUnreachable:
			sets.Unavailable = append(sets.Unavailable, iv)
		case models.AvailabilityUnavailable:
			sets.Undesired = append(sets.Undesired, iv)
		case models.AvailabilityPreferable:
			sets.Desired = append(sets.Desired, iv)
		}
	}

	return sets
}

func recordInterval(rec *models.AvailabilityRecord) (Interval, bool) {
	date := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC)

	if rec.FullDay || rec.StartTime == "" {
		return Interval{
			Start: CivilTime(date),
			End:   CivilTime(date.Add(24 * time.Hour)),
		}, true
	}

	start, end, err := ResolveWindow(date, rec.StartTime, rec.EndTime)
	if err != nil {
		return Interval{}, false
	}
	return Interval{Start: CivilTime(start), End: CivilTime(end)}, true
}
