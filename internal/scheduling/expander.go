package scheduling

import (
	"time"

	"shift-planner-backend/internal/database/models"
)

// ExpandInput carries everything the monthly expander needs: the account's
// templates, its staffing-target tables and the target period.
type ExpandInput struct {
	Year           int
	Month          time.Month
	Templates      []models.ShiftTemplate
	Targets        models.StaffingTargets
	FullDayTargets models.FullDayTargets
	Location       string
}

// ExpandMonth walks every calendar day of the target month and, for each
// template applicable to that weekday, emits one ShiftInstance per required
// role per configured headcount. Regular templates read their headcount from
// the (role, label, weekday) staffing table; full-day templates read the
// weekday's full-day count, applied once per role on the template. Absent
// cells count as zero and produce nothing.
//
// Instance IDs are sequential within the run, starting at 1.
func ExpandMonth(in ExpandInput) ([]ShiftInstance, error) {
	instances := make([]ShiftInstance, 0)
	nextID := 1

	days := DaysInMonth(in.Year, in.Month)
	for day := 1; day <= days; day++ {
		date := time.Date(in.Year, in.Month, day, 0, 0, 0, 0, time.UTC)
		weekday := models.WeekdayName(date.Weekday())

		for i := range in.Templates {
			tmpl := &in.Templates[i]
			if !tmpl.Weekdays.Contains(weekday) {
				continue
			}

			start, end, err := ResolveWindow(date, tmpl.StartTime, tmpl.EndTime)
			if err != nil {
				return nil, err
			}

			for _, role := range tmpl.Roles {
				var count int
				if tmpl.FullDay {
					count = in.FullDayTargets.Lookup(weekday)
				} else {
					count = in.Targets.Lookup(role, tmpl.Label, weekday)
				}

				for n := 0; n < count; n++ {
					instances = append(instances, ShiftInstance{
						ID:            nextID,
						Start:         CivilTime(start),
						End:           CivilTime(end),
						RequiredSkill: role,
						FullDay:       tmpl.FullDay,
						Location:      in.Location,
					})
					nextID++
				}
			}
		}
	}

	return instances, nil
}
