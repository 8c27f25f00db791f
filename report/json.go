package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go-triangle-arbitrage/domain"
)

// jsonReporter writes one JSON object per evaluation
type jsonReporter struct {
	enc *json.Encoder
}

// NewJSONReporter returns a Reporter writing newline delimited JSON to w
func NewJSONReporter(w io.Writer) Reporter {
	return &jsonReporter{enc: json.NewEncoder(w)}
}

func (r *jsonReporter) Report(_ context.Context, ev domain.Evaluation) error {
	if err := r.enc.Encode(&ev); err != nil {
		return fmt.Errorf("encoding evaluation: %w", err)
	}
	return nil
}
