package postcodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ukpostcode/pkg/bulk"
	"github.com/dmitrymomot/ukpostcode/pkg/logger"
	"github.com/dmitrymomot/ukpostcode/pkg/postcode"
	"github.com/dmitrymomot/ukpostcode/pkg/validator"
)

// DefaultMaxBatch caps the number of postcodes in one batch request.
const DefaultMaxBatch = 1000

// maxBodyBytes bounds batch request bodies.
const maxBodyBytes = 1 << 20

// Options configures the postcode handler. Zero values get defaults.
type Options struct {
	Validator *postcode.Validator
	Logger    *slog.Logger
	Metrics   *Metrics
	MaxBatch  int
	Workers   int
}

// Handler serves postcode validation endpoints.
type Handler struct {
	validator *postcode.Validator
	log       *slog.Logger
	metrics   *Metrics
	maxBatch  int
	workers   int
}

// NewHandler builds a Handler from opts.
func NewHandler(opts Options) *Handler {
	h := &Handler{
		validator: opts.Validator,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		maxBatch:  opts.MaxBatch,
		workers:   opts.Workers,
	}
	if h.validator == nil {
		h.validator = postcode.Default()
	}
	if h.log == nil {
		h.log = logger.Discard()
	}
	if h.maxBatch <= 0 {
		h.maxBatch = DefaultMaxBatch
	}
	return h
}

// Handle returns the routes, relative to the mount point.
//
//	GET  /{code}            validate one postcode
//	GET  /outward/{outward} validate an outward code on its own
//	POST /validate          validate {"postcodes": [...]}
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/outward/{outward}", h.checkOutward)
	r.Post("/validate", h.checkBatch)
	r.Get("/{code}", h.checkOne)
	return r
}

// CheckResponse is the payload for a single postcode.
type CheckResponse struct {
	Postcode   string `json:"postcode"`
	Normalized string `json:"normalized,omitempty"`
	Outward    string `json:"outward,omitempty"`
	Inward     string `json:"inward,omitempty"`
	Valid      bool   `json:"valid"`
	Rule       string `json:"rule,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func newCheckResponse(res postcode.Result) CheckResponse {
	return CheckResponse{
		Postcode:   res.Input,
		Normalized: res.Normalized,
		Outward:    res.Outward,
		Inward:     res.Inward,
		Valid:      res.Valid,
		Rule:       res.Rule,
		Reason:     res.Reason(),
	}
}

func (h *Handler) checkOne(w http.ResponseWriter, r *http.Request) {
	code := pathParam(r, "code")
	res := h.validator.Check(code)
	h.metrics.observe(res.Valid)

	h.log.DebugContext(r.Context(), "postcode checked",
		logger.Postcode(code),
		logger.Valid(res.Valid),
		logger.Rule(res.Rule),
	)
	writeJSON(w, http.StatusOK, JSONResponse{Data: newCheckResponse(res)})
}

// OutwardResponse is the payload for an outward code check.
type OutwardResponse struct {
	Outward string `json:"outward"`
	Valid   bool   `json:"valid"`
}

func (h *Handler) checkOutward(w http.ResponseWriter, r *http.Request) {
	outward := pathParam(r, "outward")
	ok := h.validator.IsValidOutward(outward)
	h.metrics.observe(ok)

	h.log.DebugContext(r.Context(), "outward code checked",
		logger.Outward(outward),
		logger.Valid(ok),
	)

	writeJSON(w, http.StatusOK, JSONResponse{Data: OutwardResponse{
		Outward: postcode.Normalize(outward),
		Valid:   ok,
	}})
}

// BatchRequest carries candidates of any JSON type; only strings can be valid.
type BatchRequest struct {
	Postcodes []any `json:"postcodes"`
}

func (h *Handler) checkBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.log.DebugContext(r.Context(), "malformed batch request", logger.Error(err))
		writeError(w, http.StatusBadRequest, ErrorDetail{
			Code:    "bad_request",
			Message: ErrMalformedBody.Error(),
		})
		return
	}

	if err := validator.Apply(
		validator.RequiredSlice("postcodes", req.Postcodes),
		validator.MaxLenSlice("postcodes", req.Postcodes, h.maxBatch),
	); err != nil {
		writeError(w, http.StatusUnprocessableEntity, ErrorDetail{
			Code:    "validation_failed",
			Message: err.Error(),
			Details: validator.ExtractValidationErrors(err).Map(),
		})
		return
	}

	candidates := make([]bulk.Candidate, len(req.Postcodes))
	for i, v := range req.Postcodes {
		candidates[i] = bulk.Candidate{Value: v}
	}

	items, err := bulk.Check(r.Context(), h.validator, candidates, h.workers)
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			return
		}
		h.log.ErrorContext(r.Context(), "batch validation failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, ErrorDetail{Code: "internal_error", Message: err.Error()})
		return
	}

	results := make([]CheckResponse, len(items))
	for i, it := range items {
		h.metrics.observe(it.Valid)
		results[i] = newCheckResponse(it.Result)
	}
	h.metrics.observeBatch(len(items))

	summary := bulk.Summarize(items)
	h.log.InfoContext(r.Context(), "batch checked",
		logger.Count(summary.Total),
		slog.Int("invalid", summary.Invalid),
	)
	writeJSON(w, http.StatusOK, JSONResponse{
		Data: results,
		Meta: map[string]any{
			"total":   summary.Total,
			"valid":   summary.Valid,
			"invalid": summary.Invalid,
		},
	})
}

// Ready reports an error if the rule tables reject postcodes they are known
// to accept. Used as a readiness check.
func (h *Handler) Ready(ctx context.Context) error {
	for _, code := range selfCheckCodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if res := h.validator.Check(code); !res.Valid {
			return fmt.Errorf("%w: %s: %v", ErrSelfCheck, code, res.Err)
		}
	}
	return nil
}

var selfCheckCodes = []string{"EC1A 1BB", "W1A 0AX", "B33 8TH", "CR2 6XH", "DN55 1PT"}

// pathParam returns the decoded path parameter. chi matches on RawPath when
// it is set, and only then is the parameter still escaped.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
