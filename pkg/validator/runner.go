package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	acerrors "github.com/provstack/artifactcheck/pkg/errors"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "artifactcheck.provstack.io/v1alpha1"

	// Kind is the kind for validation reports.
	Kind = "ValidationReport"

	// defaultConcurrency bounds parallel root validations.
	defaultConcurrency = 4
)

// ReportStatus is the overall outcome of a validation run.
type ReportStatus string

// Report statuses.
const (
	ReportStatusPass ReportStatus = "pass"
	ReportStatusFail ReportStatus = "fail"
)

// OutcomeStatus is the outcome of a single root validation.
type OutcomeStatus string

// Outcome statuses.
const (
	OutcomePassed OutcomeStatus = "passed"
	OutcomeFailed OutcomeStatus = "failed"
)

// Target names a filesystem root and the validator to run against it.
type Target struct {
	// Name identifies the target in the report.
	Name string `json:"name" yaml:"name"`

	// Root is the filesystem path to validate.
	Root string `json:"root" yaml:"root"`

	// Validator is the scheme to apply.
	Validator PathValidator `json:"-" yaml:"-"`
}

// Outcome is the per-target result of a validation run.
type Outcome struct {
	Name    string        `json:"name" yaml:"name"`
	Root    string        `json:"root" yaml:"root"`
	Status  OutcomeStatus `json:"status" yaml:"status"`
	Code    string        `json:"code,omitempty" yaml:"code,omitempty"`
	Path    string        `json:"path,omitempty" yaml:"path,omitempty"`
	Message string        `json:"message,omitempty" yaml:"message,omitempty"`
}

// Summary aggregates a validation run.
type Summary struct {
	Total    int           `json:"total" yaml:"total"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Status   ReportStatus  `json:"status" yaml:"status"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report is the result of a batch validation run.
type Report struct {
	Kind        string    `json:"kind" yaml:"kind"`
	APIVersion  string    `json:"apiVersion" yaml:"apiVersion"`
	ID          string    `json:"id" yaml:"id"`
	Version     string    `json:"version,omitempty" yaml:"version,omitempty"`
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`
	Results     []Outcome `json:"results" yaml:"results"`
	Summary     Summary   `json:"summary" yaml:"summary"`
}

// Runner validates several roots, each against its own validator.
// Per-root validation stays fail-fast; the report aggregates across roots.
type Runner struct {
	version     string
	concurrency int
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithVersion returns an Option that sets the version recorded in reports.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.version = version
	}
}

// WithConcurrency returns an Option that bounds parallel root validations.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRunner creates a new Runner with the provided options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates every target and returns an aggregated report.
// Roots validate concurrently; validators are immutable, so sharing one
// validator across targets is safe. A non-validation error (for example a
// cancelled context) aborts the run.
func (r *Runner) Run(ctx context.Context, targets []Target) (*Report, error) {
	start := time.Now()

	results := make([]Outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if target.Validator == nil {
				return fmt.Errorf("target %q has no validator", target.Name)
			}

			targetStart := time.Now()
			err := target.Validator.Validate(gctx, target.Root)
			validationDuration.Observe(time.Since(targetStart).Seconds())

			outcome := Outcome{
				Name:   target.Name,
				Root:   target.Root,
				Status: OutcomePassed,
			}
			if err != nil {
				var failure *acerrors.Failure
				if !errors.As(err, &failure) {
					// Not a validation verdict; abort the run.
					return err
				}
				outcome.Status = OutcomeFailed
				outcome.Code = failure.Code
				outcome.Path = failure.Path
				outcome.Message = failure.Message
			}
			validationTotal.WithLabelValues(string(outcome.Status)).Inc()
			results[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Kind:        Kind,
		APIVersion:  APIVersion,
		ID:          uuid.New().String(),
		Version:     r.version,
		GeneratedAt: start.UTC(),
		Results:     results,
	}
	for _, outcome := range results {
		if outcome.Status == OutcomePassed {
			report.Summary.Passed++
		} else {
			report.Summary.Failed++
		}
	}
	report.Summary.Total = len(results)
	report.Summary.Duration = time.Since(start)
	if report.Summary.Failed > 0 {
		report.Summary.Status = ReportStatusFail
	} else {
		report.Summary.Status = ReportStatusPass
	}

	slog.Debug("validation run completed",
		"passed", report.Summary.Passed,
		"failed", report.Summary.Failed,
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)

	return report, nil
}
