package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-triangle-arbitrage/domain"
	"go-triangle-arbitrage/report"
	"go-triangle-arbitrage/resolve"
	"go-triangle-arbitrage/triangle"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Triangle   triangle.Service
	Resolver   resolve.Service
	Currencies []domain.Currency
	// Reporter receives every successful evaluation; nil disables publishing
	Reporter report.Reporter
	logger   log.Logger
	router   http.ServeMux
}

func NewServer(t triangle.Service, r resolve.Service, currencies []domain.Currency, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	server := &Server{
		Triangle:   t,
		Resolver:   r,
		Currencies: currencies,
		logger:     logger,
		router:     http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/triangle", s.triangle())
	s.router.Handle("/api/rate", s.rate())
	s.router.Handle("/api/currencies", s.currencies())
}

// Handle mounts an extra handler, e.g. /metrics
func (s *Server) Handle(pattern string, h http.Handler) {
	s.router.Handle(pattern, h)
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// errorResponse body of every non-2xx reply
type errorResponse struct {
	Error string       `json:"error"`
	Leg   *legResponse `json:"leg,omitempty"`
}

type legResponse struct {
	Index int    `json:"index"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// triangle produces HTTP handler evaluating a three currency cycle
func (s *Server) triangle() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		A string `json:"a"`
		B string `json:"b"`
		C string `json:"c"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		if r.Method != http.MethodPost {
			s.fail(rw, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		bytes, err := io.ReadAll(r.Body)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, errorResponse{Error: "invalid request"})
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		cycle := domain.Cycle{
			A: domain.ParseCurrency(request.A),
			B: domain.ParseCurrency(request.B),
			C: domain.ParseCurrency(request.C),
		}
		ev, err := s.Triangle.Evaluate(r.Context(), cycle)
		if err != nil {
			s.evaluationFailed(rw, err)
			return
		}

		if s.Reporter != nil {
			if err := s.Reporter.Report(r.Context(), ev); err != nil {
				_ = level.Warn(s.logger).Log("msg", "publishing evaluation", "id", ev.ID, "err", err)
			}
		}

		s.reply(rw, http.StatusOK, ev)
	}
}

// rate produces HTTP handler resolving a single pair
func (s *Server) rate() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.fail(rw, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		from := domain.ParseCurrency(r.URL.Query().Get("from"))
		to := domain.ParseCurrency(r.URL.Query().Get("to"))
		if from == "" || to == "" || from == to {
			s.fail(rw, http.StatusBadRequest, errorResponse{Error: "from and to must be two different currencies"})
			return
		}

		rate, err := s.Resolver.Resolve(r.Context(), from, to)
		if err != nil {
			s.fail(rw, statusFor(err), errorResponse{Error: err.Error()})
			return
		}

		s.reply(rw, http.StatusOK, rate)
	}
}

// currencies produces HTTP handler listing the selectable currencies
func (s *Server) currencies() http.HandlerFunc {

	type response struct {
		Currencies []domain.Currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.fail(rw, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}
		currencies := s.Currencies
		if currencies == nil {
			currencies = []domain.Currency{}
		}
		s.reply(rw, http.StatusOK, response{Currencies: currencies})
	}
}

func (s *Server) evaluationFailed(rw http.ResponseWriter, err error) {
	body := errorResponse{Error: err.Error()}
	var legErr *domain.LegError
	if errors.As(err, &legErr) {
		body.Leg = &legResponse{
			Index: legErr.Index,
			From:  string(legErr.Pair.From),
			To:    string(legErr.Pair.To),
		}
	}
	s.fail(rw, statusFor(err), body)
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCycle):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNonFiniteRate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrQuoteUnavailable), errors.Is(err, domain.ErrProviderFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(rw http.ResponseWriter, status int, body errorResponse) {
	if status >= http.StatusInternalServerError {
		_ = level.Warn(s.logger).Log("msg", "request failed", "status", status, "err", body.Error)
	}
	s.reply(rw, status, body)
}

func (s *Server) reply(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(v)
	if err != nil {
		_ = level.Error(s.logger).Log("msg", "failed json encoding", "err", err)
		rw.WriteHeader(http.StatusInternalServerError)
		rw.Write([]byte(`{"error": "failed json encoding"}`))
		return
	}
	rw.WriteHeader(status)
	rw.Write(append(body, '\n'))
}
