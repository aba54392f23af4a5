// Package batch evaluates many shuffle cases at once.
//
// Cases are read from a YAML document (JSON is accepted too, being a subset
// of YAML):
//
//	cases:
//	  - first: tournament
//	    second: dinner
//	    shuffled: tdinournanmenter
//	    expect: true
//
// Every case is validated independently, so a Runner fans them out across a
// bounded number of goroutines sharing one Validator.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	shuffleerrors "github.com/conneroisu/shuffle/internal/errors"
	"github.com/conneroisu/shuffle/internal/logging"
	"github.com/conneroisu/shuffle/internal/shuffle"
)

// Case is one shuffle to validate. A nil Expect means the case carries no
// expected verdict.
type Case struct {
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	First    string `yaml:"first" json:"first"`
	Second   string `yaml:"second" json:"second"`
	Shuffled string `yaml:"shuffled" json:"shuffled"`
	Expect   *bool  `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Label returns the case name, or a description built from its words.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%s+%s=%s", c.First, c.Second, c.Shuffled)
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// Parse decodes a case document.
func Parse(data []byte) ([]Case, error) {
	var file caseFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, shuffleerrors.NewValidationError(shuffleerrors.ErrCodeCaseFileInvalid,
			fmt.Sprintf("failed to decode cases: %v", err))
	}
	if len(file.Cases) == 0 {
		return nil, shuffleerrors.NewValidationError(shuffleerrors.ErrCodeCaseFileInvalid,
			"case file contains no cases")
	}
	return file.Cases, nil
}

// ReadFile loads the cases stored at path.
func ReadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := shuffleerrors.ErrCodeFileUnreadable
		if os.IsNotExist(err) {
			code = shuffleerrors.ErrCodeFileNotFound
		}
		return nil, shuffleerrors.NewIOError(code, "failed to read case file", err).
			WithContext("path", path)
	}

	cases, err := Parse(data)
	if err != nil {
		if se, ok := err.(*shuffleerrors.ShuffleError); ok {
			se.WithContext("path", path)
		}
		return nil, err
	}
	return cases, nil
}

// Outcome is the verdict for one case.
type Outcome struct {
	Name     string         `yaml:"name" json:"name"`
	First    string         `yaml:"first" json:"first"`
	Second   string         `yaml:"second" json:"second"`
	Shuffled string         `yaml:"shuffled" json:"shuffled"`
	Valid    bool           `yaml:"valid" json:"valid"`
	Reason   shuffle.Reason `yaml:"reason" json:"reason"`
	Index    int            `yaml:"index" json:"index"`
	Char     string         `yaml:"char,omitempty" json:"char,omitempty"`
	Expect   *bool          `yaml:"expect,omitempty" json:"expect,omitempty"`
	Passed   bool           `yaml:"passed" json:"passed"`
}

// Report summarizes a batch run.
type Report struct {
	RunID    string           `yaml:"run_id" json:"run_id"`
	Strategy shuffle.Strategy `yaml:"strategy" json:"strategy"`
	Total    int              `yaml:"total" json:"total"`
	Valid    int              `yaml:"valid" json:"valid"`
	Invalid  int              `yaml:"invalid" json:"invalid"`
	Failed   int              `yaml:"failed" json:"failed"`
	Outcomes []Outcome        `yaml:"outcomes" json:"outcomes"`
}

// Err reports cases whose verdict disagreed with their expectation.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}
	var names []string
	for _, o := range r.Outcomes {
		if !o.Passed {
			names = append(names, o.Name)
		}
	}
	return shuffleerrors.NewValidationError(shuffleerrors.ErrCodeExpectation,
		fmt.Sprintf("%d of %d cases did not match their expected verdict", r.Failed, r.Total)).
		WithContext("cases", names)
}

// Runner validates cases concurrently.
type Runner struct {
	validator *shuffle.Validator
	workers   int
	logger    logging.Logger
}

// NewRunner creates a runner with at most workers concurrent validations.
// A non-positive workers value means one.
func NewRunner(validator *shuffle.Validator, workers int, logger logging.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		validator: validator,
		workers:   workers,
		logger:    logger.WithComponent("batch"),
	}
}

// Run validates every case and returns the outcomes in input order. It stops
// early and returns ctx.Err() when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)
	logger.Info(ctx, "Starting batch", "cases", len(cases), "workers", r.workers,
		"strategy", string(r.validator.Strategy()))

	outcomes := make([]Outcome, len(cases))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for i, c := range cases {
		i, c := i, c
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = evaluate(egCtx, r.validator, c)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Warn(ctx, err, "Batch interrupted")
		return nil, err
	}

	report := &Report{
		RunID:    runID,
		Strategy: r.validator.Strategy(),
		Total:    len(cases),
		Outcomes: outcomes,
	}
	for _, o := range outcomes {
		if o.Valid {
			report.Valid++
		} else {
			report.Invalid++
		}
		if !o.Passed {
			report.Failed++
		}
	}

	logger.Info(ctx, "Batch complete", "valid", report.Valid, "invalid", report.Invalid,
		"failed", report.Failed)
	return report, nil
}

func evaluate(ctx context.Context, v *shuffle.Validator, c Case) Outcome {
	res := v.Validate(ctx, c.First, c.Second, c.Shuffled)

	o := Outcome{
		Name:     c.Label(),
		First:    c.First,
		Second:   c.Second,
		Shuffled: c.Shuffled,
		Valid:    res.Valid,
		Reason:   res.Reason,
		Index:    res.Index,
		Expect:   c.Expect,
		Passed:   c.Expect == nil || *c.Expect == res.Valid,
	}
	if res.Reason == shuffle.ReasonMismatch {
		o.Char = string(res.Char)
	}
	return o
}
