package report

import (
	"context"
	"errors"

	"go-triangle-arbitrage/domain"
)

// Reporter delivers an evaluation to an operator or downstream system
type Reporter interface {
	Report(ctx context.Context, ev domain.Evaluation) error
}

// multiReporter reports to every reporter in order
type multiReporter []Reporter

// Multi returns a Reporter that reports to each of reporters in order.
// Every reporter runs even when an earlier one fails; the failures are joined.
func Multi(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

func (m multiReporter) Report(ctx context.Context, ev domain.Evaluation) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
