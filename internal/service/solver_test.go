package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/scheduling"
)

// roundTripFunc lets tests stub the solver without a listener
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestSolver(rt roundTripFunc) *SolverService {
	return &SolverService{
		baseURL:      "http://solver.test",
		pollInterval: time.Millisecond,
		httpClient:   &http.Client{Transport: rt},
	}
}

func solverRequestFixture() *scheduling.SolverRequest {
	return &scheduling.SolverRequest{
		Employees: []scheduling.SolverEmployee{
			{Name: "Dana", Skills: []string{"nurse"}, Unavailable: []scheduling.Interval{}, Undesired: []scheduling.Interval{}, Desired: []scheduling.Interval{}, MonthlyHours: 160},
		},
		Shifts: []scheduling.ShiftInstance{
			{ID: 1, RequiredSkill: "nurse"},
		},
	}
}

func TestSolverService_Submit(t *testing.T) {
	var captured *http.Request
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		captured = req
		return httpResponse(http.StatusOK, "  job-42\n"), nil
	})

	jobID, err := solver.Submit(context.Background(), solverRequestFixture())
	require.NoError(t, err)
	assert.Equal(t, "job-42", jobID, "job id should be the trimmed response body")

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "http://solver.test/schedules", captured.URL.String())
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))

	body, err := io.ReadAll(captured.Body)
	require.NoError(t, err)
	var sent scheduling.SolverRequest
	require.NoError(t, json.Unmarshal(body, &sent))
	assert.Len(t, sent.Employees, 1)
	assert.Len(t, sent.Shifts, 1)
}

func TestSolverService_Submit_NotConfigured(t *testing.T) {
	solver := &SolverService{httpClient: http.DefaultClient}

	_, err := solver.Submit(context.Background(), solverRequestFixture())
	assert.ErrorIs(t, err, apperrors.ErrSolverNotConfigured)
}

func TestSolverService_Submit_UpstreamFailure(t *testing.T) {
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		return httpResponse(http.StatusServiceUnavailable, "down"), nil
	})

	_, err := solver.Submit(context.Background(), solverRequestFixture())
	assert.True(t, apperrors.IsUpstream(err), "non-2xx submit should be an upstream error, got %v", err)
}

func TestSolverService_Solve_PollsUntilTerminal(t *testing.T) {
	polls := 0
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPost {
			return httpResponse(http.StatusOK, "job-7"), nil
		}
		assert.Equal(t, "http://solver.test/schedules/job-7", req.URL.String())
		polls++
		if polls < 3 {
			return httpResponse(http.StatusOK, `{"solverStatus":"SOLVING_ACTIVE","shifts":[]}`), nil
		}
		return httpResponse(http.StatusOK, `{"solverStatus":"NOT_SOLVING","shifts":[{"id":1,"employee":"Dana","requiredSkill":"nurse","start":"2025-03-03T07:00:00","end":"2025-03-03T15:00:00","fullDay":false}]}`), nil
	})

	solved, err := solver.Solve(context.Background(), solverRequestFixture())
	require.NoError(t, err)
	assert.Equal(t, 3, polls)
	assert.True(t, solved.Terminal())
	require.Len(t, solved.Shifts, 1)
	assert.Equal(t, "Dana", solved.Shifts[0].Employee)
}

func TestSolverService_Solve_MalformedStatusIsFatal(t *testing.T) {
	polls := 0
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPost {
			return httpResponse(http.StatusOK, "job-9"), nil
		}
		polls++
		return httpResponse(http.StatusOK, `<html>proxy error</html>`), nil
	})

	_, err := solver.Solve(context.Background(), solverRequestFixture())
	assert.ErrorIs(t, err, apperrors.ErrSolverBadStatus)
	assert.Equal(t, 1, polls, "an unparseable status payload must not be retried")
}

func TestSolverService_Solve_AttemptLimit(t *testing.T) {
	polls := 0
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPost {
			return httpResponse(http.StatusOK, "job-1"), nil
		}
		polls++
		return httpResponse(http.StatusOK, `{"solverStatus":"SOLVING_ACTIVE","shifts":[]}`), nil
	})
	solver.maxAttempts = 4

	_, err := solver.Solve(context.Background(), solverRequestFixture())
	assert.ErrorIs(t, err, apperrors.ErrSolverExhausted)
	assert.Equal(t, 4, polls)
}

func TestSolverService_Solve_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPost {
			return httpResponse(http.StatusOK, "job-3"), nil
		}
		cancel()
		return httpResponse(http.StatusOK, `{"solverStatus":"SOLVING_ACTIVE","shifts":[]}`), nil
	})
	solver.pollInterval = time.Hour

	_, err := solver.Solve(ctx, solverRequestFixture())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolverService_GetStatus_MissingStatusField(t *testing.T) {
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		return httpResponse(http.StatusOK, `{"shifts":[]}`), nil
	})

	_, err := solver.GetStatus(context.Background(), "job-5")
	assert.ErrorIs(t, err, apperrors.ErrSolverBadStatus)
}

func TestSolverService_Submit_TransportError(t *testing.T) {
	solver := newTestSolver(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := solver.Submit(context.Background(), solverRequestFixture())
	assert.True(t, apperrors.IsUpstream(err), "transport failures should be upstream errors, got %v", err)
}
