package scheduling

import (
	"math"
	"time"

	"shift-planner-backend/internal/database/models"
)

// BuildInput carries the roster and configuration a solver request is built from.
// Employees are expected with their availability records preloaded.
type BuildInput struct {
	Year           int
	Month          time.Month
	Employees      []models.Employee
	Templates      []models.ShiftTemplate
	Targets        models.StaffingTargets
	FullDayTargets models.FullDayTargets
	// MonthlyHours is the account's full-time baseline; zero falls back to the default
	MonthlyHours int
	Location     string
}

// BuildSolverRequest assembles the full solver payload: one entry per
// employee with classified availability intervals and a rate-scaled monthly
// hour target, plus the expanded shift instances for the month. It performs
// no I/O and no logging; callers own loading and persistence.
func BuildSolverRequest(in BuildInput) (*SolverRequest, error) {
	shifts, err := ExpandMonth(ExpandInput{
		Year:           in.Year,
		Month:          in.Month,
		Templates:      in.Templates,
		Targets:        in.Targets,
		FullDayTargets: in.FullDayTargets,
		Location:       in.Location,
	})
	if err != nil {
		return nil, err
	}

	baseline := in.MonthlyHours
	if baseline <= 0 {
		baseline = models.DefaultMonthlyHours
	}

	employees := make([]SolverEmployee, 0, len(in.Employees))
	for i := range in.Employees {
		emp := &in.Employees[i]
		sets := ClassifyAvailability(emp.Availability)

		skills := []string{}
		if role := emp.PrimaryRole(); role != "" {
			skills = []string{role}
		}

		employees = append(employees, SolverEmployee{
			Name:         emp.Name,
			Skills:       skills,
			Unavailable:  sets.Unavailable,
			Undesired:    sets.Undesired,
			Desired:      sets.Desired,
			MonthlyHours: int(math.Floor(float64(baseline) * emp.Rate)),
		})
	}

	return &SolverRequest{
		Employees: employees,
		Shifts:    shifts,
	}, nil
}
