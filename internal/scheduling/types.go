// Package scheduling holds the pure core of the shift planner: expanding
// shift templates into dated instances, classifying availability and building
// solver requests. Nothing in this package performs I/O.
package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// civilLayout is the solver wire format for instants: UTC civil time, no offset suffix
const civilLayout = "2006-01-02T15:04:05"

// CivilTime marshals a UTC instant in the solver's civil-time wire format
type CivilTime time.Time

// MarshalJSON implements json.Marshaler
func (t CivilTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(civilLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (t *CivilTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*t = CivilTime(time.Time{})
		return nil
	}
	parsed, err := time.ParseInLocation(civilLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("parse civil time %q: %w", s, err)
	}
	*t = CivilTime(parsed)
	return nil
}

// Time returns the wrapped instant
func (t CivilTime) Time() time.Time {
	return time.Time(t)
}

// Interval is a half-open time window on the solver wire
type Interval struct {
	Start CivilTime `json:"start"`
	End   CivilTime `json:"end"`
}

// SolverEmployee is one employee entry in a solver request
type SolverEmployee struct {
	Name         string     `json:"name"`
	Skills       []string   `json:"skills"`
	Unavailable  []Interval `json:"unavailable"`
	Undesired    []Interval `json:"undesired"`
	Desired      []Interval `json:"desired"`
	MonthlyHours int        `json:"monthlyHours"`
}

// ShiftInstance is one concrete dated shift the solver must fill. Instances
// are produced fresh on every generation run and never persisted directly.
type ShiftInstance struct {
	ID            int       `json:"id"`
	Start         CivilTime `json:"start"`
	End           CivilTime `json:"end"`
	RequiredSkill string    `json:"requiredSkill"`
	FullDay       bool      `json:"fullDay"`
	Location      string    `json:"location"`
}

// SolverRequest is the full payload submitted to the external solver
type SolverRequest struct {
	Employees []SolverEmployee `json:"employees"`
	Shifts    []ShiftInstance  `json:"shifts"`
}

// SolverStatusNotSolving is the terminal solverStatus value
const SolverStatusNotSolving = "NOT_SOLVING"

// AssignedShift is one solved shift instance carrying the employee the solver chose
type AssignedShift struct {
	ID            int       `json:"id"`
	Employee      string    `json:"employee"`
	RequiredSkill string    `json:"requiredSkill"`
	Start         CivilTime `json:"start"`
	End           CivilTime `json:"end"`
	FullDay       bool      `json:"fullDay"`
	Location      string    `json:"location,omitempty"`
}

// SolvedSchedule is the terminal status payload returned by the solver
type SolvedSchedule struct {
	SolverStatus string           `json:"solverStatus"`
	Employees    []SolverEmployee `json:"employees,omitempty"`
	Shifts       []AssignedShift  `json:"shifts"`
}

// Terminal reports whether the payload's status is the terminal state
func (s *SolvedSchedule) Terminal() bool {
	return s.SolverStatus == SolverStatusNotSolving
}
