package quote

import (
	"fmt"
	"time"
)

// Backend names accepted by NewBackend
const (
	BackendYahoo   = "yahoo"
	BackendFinance = "finance"
	BackendStatic  = "static"
)

// NewBackend constructs the named Service. baseURL only applies to yahoo and
// prices only to static.
func NewBackend(name, baseURL string, timeout time.Duration, prices map[string]float64) (Service, error) {
	switch name {
	case BackendYahoo:
		return NewService(baseURL, timeout), nil
	case BackendFinance:
		return NewFinanceService(timeout), nil
	case BackendStatic:
		return NewStaticService(prices), nil
	default:
		return nil, fmt.Errorf("unknown quote backend %q", name)
	}
}
