package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shift-planner-backend/internal/config"
	apperrors "shift-planner-backend/internal/errors"
	"shift-planner-backend/internal/logger"
	"shift-planner-backend/internal/scheduling"
)

// SolverService talks to the external constraint solver: it submits a built
// request as an asynchronous job and polls the job until it reaches the
// terminal state. The solver is an opaque black box reached over HTTP; this
// service owns nothing beyond the submit/poll protocol.
type SolverService struct {
	baseURL      string
	pollInterval time.Duration
	// maxAttempts bounds the poll loop; zero polls until the job terminates
	// or the context is canceled
	maxAttempts int
	timeout     time.Duration
	httpClient  *http.Client
}

// NewSolverService creates a new solver service
func NewSolverService(cfg *config.Config) *SolverService {
	return &SolverService{
		baseURL:      strings.TrimRight(cfg.SolverBaseURL, "/"),
		pollInterval: cfg.SolverPollInterval(),
		maxAttempts:  cfg.SolverMaxAttempts,
		timeout:      cfg.SolverTimeout(),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit posts the request to the solver's job-creation endpoint and returns
// the opaque job identifier (the whole response body, trimmed).
func (s *SolverService) Submit(ctx context.Context, request *scheduling.SolverRequest) (string, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"employees": len(request.Employees),
		"shifts":    len(request.Shifts),
	})

	if s.baseURL == "" {
		return "", apperrors.ErrSolverNotConfigured
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal solver request: %w", err)
	}

	url := s.baseURL + "/schedules"
	log.Infof("Submitting solver job: url=%s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Errorf("Solver submission failed: %v", err)
		return "", apperrors.NewUpstreamError("solver", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Errorf("Solver submission rejected: status=%d body=%s", resp.StatusCode, string(respBody))
		return "", apperrors.NewUpstreamError("solver", fmt.Errorf("submit failed: status=%d", resp.StatusCode))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewUpstreamError("solver", err)
	}

	jobID := strings.TrimSpace(string(respBody))
	if jobID == "" {
		return "", apperrors.NewUpstreamError("solver", fmt.Errorf("empty job identifier"))
	}

	log.Infof("Solver job submitted: jobId=%s", jobID)
	return jobID, nil
}

// GetStatus fetches the current status payload for a solver job. A response
// that does not parse as a status document is fatal, not retried.
func (s *SolverService) GetStatus(ctx context.Context, jobID string) (*scheduling.SolvedSchedule, error) {
	url := fmt.Sprintf("%s/schedules/%s", s.baseURL, jobID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("solver", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperrors.NewUpstreamError("solver", fmt.Errorf("status fetch failed: status=%d body=%s", resp.StatusCode, string(body)))
	}

	var schedule scheduling.SolvedSchedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSolverBadStatus, err)
	}
	if schedule.SolverStatus == "" {
		return nil, apperrors.ErrSolverBadStatus
	}

	return &schedule, nil
}

// Solve submits the request and polls until the job reports NOT_SOLVING,
// waiting the configured interval between attempts. With no attempt limit
// configured the loop runs until the job terminates or ctx is canceled; a
// configured limit or deadline bounds worst-case latency instead.
func (s *SolverService) Solve(ctx context.Context, request *scheduling.SolverRequest) (*scheduling.SolvedSchedule, error) {
	log := logger.WithContext(ctx)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	jobID, err := s.Submit(ctx, request)
	if err != nil {
		return nil, err
	}

	attempt := 0
	for {
		attempt++
		schedule, err := s.GetStatus(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if schedule.Terminal() {
			log.Infof("Solver job terminal: jobId=%s attempts=%d assignments=%d", jobID, attempt, len(schedule.Shifts))
			return schedule, nil
		}

		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			log.Warnf("Solver job still running after %d attempts: jobId=%s status=%s", attempt, jobID, schedule.SolverStatus)
			return nil, apperrors.ErrSolverExhausted
		}

		timer := time.NewTimer(s.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
