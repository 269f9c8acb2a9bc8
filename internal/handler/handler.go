// Package handler is the fasthttp JSON binding around the calculation engine
// and the offence catalog. The engine owns no wire format; this layer does.
package handler

import (
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"sentence-engine/internal/catalog"
	"sentence-engine/internal/engine"
	"sentence-engine/internal/model"
)

// Handler routes API requests.
type Handler struct {
	store *catalog.Store
	log   *slog.Logger
}

// New builds a Handler over the given catalog store.
func New(store *catalog.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, log: logger}
}

// Handle is the fasthttp request router.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case method == fasthttp.MethodGet && path == "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case method == fasthttp.MethodGet && path == "/offences":
		h.handleSearchOffences(ctx)
	case method == fasthttp.MethodPost && path == "/calculate":
		h.handleCalculate(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleSearchOffences(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))
	if query == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Missing query parameter q")
		return
	}
	limit := ctx.QueryArgs().GetUintOrZero("limit")

	offences, err := h.store.SearchOffences(ctx, query, limit)
	if err != nil {
		h.log.Error("offence search failed", "query", query, "error", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Offence search failed")
		return
	}
	if offences == nil {
		offences = []model.OffenceRecord{}
	}
	writeJSON(ctx, fasthttp.StatusOK, offences)
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	started := time.Now()

	var req CalculateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	offence, resolutionTrace, err := h.resolveOffence(ctx, &req)
	if err != nil {
		status := fasthttp.StatusBadRequest
		if _, ok := err.(*notFoundError); ok {
			status = fasthttp.StatusNotFound
		}
		writeError(ctx, status, err.Error())
		return
	}

	matrixRows := req.MatrixRows
	if matrixRows == nil && req.Offence == nil {
		matrixRows, err = h.store.FetchSentencingMatrix(ctx, offence.OffenceID)
		if err != nil {
			h.log.Error("matrix fetch failed", "offence_id", offence.OffenceID, "error", err)
			writeError(ctx, fasthttp.StatusInternalServerError, "Sentencing matrix fetch failed")
			return
		}
	}

	input, err := req.ToInput(*offence)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result, err := engine.Calculate(input, matrixRows)
	if err != nil {
		// The engine fails only on invalid input; report every violation.
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	result.Trace = append(resolutionTrace, result.Trace...)

	completed := time.Now()
	h.log.Info("calculation complete",
		"offence_id", result.OffenceID,
		"sentence_type", result.SentenceType,
		"duration_ms", completed.Sub(started).Milliseconds())

	writeJSON(ctx, fasthttp.StatusOK, model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   started.UTC().Format(time.RFC3339),
			CalculationCompletedAt: completed.UTC().Format(time.RFC3339),
			CalculationDurationMs:  completed.Sub(started).Milliseconds(),
			CalculationOutcome:     model.OutcomeSuccess,
		},
		CalculationResult: result,
	})
}

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string { return e.msg }

// resolveOffence picks the offence record for the request: inline record
// first, then catalog lookup by id, then ranked name search. Query resolution
// is narrated so it can be prepended to the calculation trace.
func (h *Handler) resolveOffence(ctx *fasthttp.RequestCtx, req *CalculateRequest) (*model.OffenceRecord, []string, error) {
	if req.Offence != nil {
		return req.Offence, nil, nil
	}

	if req.OffenceID != "" {
		offence, err := h.store.FetchOffenceByID(ctx, req.OffenceID)
		if err != nil {
			h.log.Error("offence fetch failed", "offence_id", req.OffenceID, "error", err)
			return nil, nil, fmt.Errorf("offence lookup failed")
		}
		if offence == nil {
			return nil, nil, &notFoundError{msg: "Offence not found: " + req.OffenceID}
		}
		return offence, nil, nil
	}

	if req.OffenceQuery == "" {
		return nil, nil, fmt.Errorf("provide offence, offence_id or offence_query")
	}

	matches, err := h.store.SearchOffences(ctx, req.OffenceQuery, 5)
	if err != nil {
		h.log.Error("offence search failed", "query", req.OffenceQuery, "error", err)
		return nil, nil, fmt.Errorf("offence lookup failed")
	}
	if len(matches) == 0 {
		return nil, nil, &notFoundError{msg: "No offence found for query: " + req.OffenceQuery}
	}

	chosen := matches[0]
	trace := []string{fmt.Sprintf("Resolved offence query %q to %q (%s).", req.OffenceQuery, chosen.CanonicalName, chosen.OffenceID)}
	if len(matches) > 1 {
		trace = append(trace, "Multiple matches found; top similarity match selected automatically.")
	}
	return &chosen, trace, nil
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(payload); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
