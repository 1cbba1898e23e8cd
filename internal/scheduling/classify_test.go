package scheduling

import (
	"encoding/json"
	"testing"
	"time"

	"shift-planner-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(status models.AvailabilityStatus, day time.Time) models.AvailabilityRecord {
	return models.AvailabilityRecord{
		Date:    day,
		Status:  status,
		FullDay: true,
	}
}

func TestClassifyAvailability_Partition(t *testing.T) {
	day := date(2025, time.March, 10)
	records := []models.AvailabilityRecord{
		record(models.AvailabilityUnreachable, day),
		record(models.AvailabilityUnavailable, day.AddDate(0, 0, 1)),
		record(models.AvailabilityPreferable, day.AddDate(0, 0, 2)),
	}

	sets := ClassifyAvailability(records)

	assert.Len(t, sets.Unavailable, 1)
	assert.Len(t, sets.Undesired, 1)
	assert.Len(t, sets.Desired, 1)
}

func TestClassifyAvailability_PreferableOnlyInDesired(t *testing.T) {
	sets := ClassifyAvailability([]models.AvailabilityRecord{
		record(models.AvailabilityPreferable, date(2025, time.March, 10)),
	})

	assert.Len(t, sets.Desired, 1)
	assert.Empty(t, sets.Unavailable)
	assert.Empty(t, sets.Undesired)
}

func TestClassifyAvailability_UnreachableOnlyInUnavailable(t *testing.T) {
	sets := ClassifyAvailability([]models.AvailabilityRecord{
		record(models.AvailabilityUnreachable, date(2025, time.March, 10)),
	})

	assert.Len(t, sets.Unavailable, 1)
	assert.Empty(t, sets.Undesired)
	assert.Empty(t, sets.Desired)
}

func TestClassifyAvailability_UnrecognizedStatusExcluded(t *testing.T) {
	sets := ClassifyAvailability([]models.AvailabilityRecord{
		record(models.AvailabilityStatus("sabbatical"), date(2025, time.March, 10)),
		record(models.AvailabilityVacation, date(2025, time.March, 11)),
	})

	assert.Empty(t, sets.Unavailable)
	assert.Empty(t, sets.Undesired)
	assert.Empty(t, sets.Desired)
}

func TestClassifyAvailability_FullDayInterval(t *testing.T) {
	day := date(2025, time.March, 10)
	sets := ClassifyAvailability([]models.AvailabilityRecord{
		record(models.AvailabilityUnreachable, day),
	})

	require.Len(t, sets.Unavailable, 1)
	iv := sets.Unavailable[0]
	assert.Equal(t, day, iv.Start.Time())
	assert.Equal(t, day.Add(24*time.Hour), iv.End.Time())
}

func TestClassifyAvailability_PartialDayInterval(t *testing.T) {
	rec := models.AvailabilityRecord{
		Date:      date(2025, time.March, 10),
		Status:    models.AvailabilityUnavailable,
		FullDay:   false,
		StartTime: "09:00:00",
		EndTime:   "12:00:00",
	}

	sets := ClassifyAvailability([]models.AvailabilityRecord{rec})

	require.Len(t, sets.Undesired, 1)
	iv := sets.Undesired[0]
	assert.Equal(t, time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC), iv.Start.Time())
	assert.Equal(t, time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC), iv.End.Time())
}

func TestClassifyAvailability_MalformedPartialTimesSkipped(t *testing.T) {
	rec := models.AvailabilityRecord{
		Date:      date(2025, time.March, 10),
		Status:    models.AvailabilityUnavailable,
		FullDay:   false,
		StartTime: "morning",
		EndTime:   "noon",
	}

	sets := ClassifyAvailability([]models.AvailabilityRecord{rec})
	assert.Empty(t, sets.Undesired)
}

func TestInterval_WireFormatHasNoOffset(t *testing.T) {
	iv := Interval{
		Start: CivilTime(time.Date(2025, time.March, 10, 22, 0, 0, 0, time.UTC)),
		End:   CivilTime(time.Date(2025, time.March, 11, 6, 0, 0, 0, time.UTC)),
	}

	b, err := json.Marshal(iv)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2025-03-10T22:00:00","end":"2025-03-11T06:00:00"}`, string(b))
}
