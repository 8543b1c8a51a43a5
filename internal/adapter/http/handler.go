package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"rate-aggregator/internal/domain/model"
	"rate-aggregator/internal/domain/ports"
	"rate-aggregator/internal/metrics"
	"rate-aggregator/pkg/logger"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type Handler struct {
	service ports.RateService
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewHandler(service ports.RateService, log *logger.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		log:     log,
		metrics: metrics,
	}
}

// callerFromRequest builds the caller preferences the aggregation core
// reads: a disable list and the RUB official-source choice.
func callerFromRequest(r *http.Request) model.CallerContext {
	var caller model.CallerContext

	if disabled := r.URL.Query().Get("disable"); disabled != "" {
		caller.EnabledProviders = make(map[string]bool)
		for _, name := range strings.Split(disabled, ",") {
			caller.EnabledProviders[strings.TrimSpace(name)] = false
		}
	}

	if r.URL.Query().Get("rub_source") == string(model.OfficialSourceCentralBank) {
		caller.RubSource = model.OfficialSourceCentralBank
	}

	return caller
}

func (h *Handler) GetRateHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.RateRequestsTotal.Inc()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return
	}

	rate, ok := h.service.GetRate(r.Context(), from, to, callerFromRequest(r))
	if !ok {
		h.metrics.RateUnavailableTotal.Inc()
		h.sendErrorResponse(w, http.StatusServiceUnavailable, "rate unavailable")
		return
	}

	h.sendSuccessResponse(w, map[string]interface{}{
		"from": model.NormalizeSymbol(from),
		"to":   model.NormalizeSymbol(to),
		"rate": rate,
	})
}

func (h *Handler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.ConversionRequestsTotal.Inc()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	amountStr := r.URL.Query().Get("amount")

	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return
	}

	amount := 1.0
	if amountStr != "" {
		var err error
		amount, err = strconv.ParseFloat(amountStr, 64)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid amount parameter")
			return
		}
	}

	result, ok := h.service.Convert(r.Context(), amount, from, to, callerFromRequest(r))
	if !ok {
		h.metrics.RateUnavailableTotal.Inc()
		h.sendErrorResponse(w, http.StatusServiceUnavailable, "rate unavailable")
		return
	}

	h.sendSuccessResponse(w, map[string]float64{
		"amount": result,
	})
}

func (h *Handler) CompareHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.CompareRequestsTotal.Inc()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return
	}

	rates := h.service.GetAllRates(r.Context(), from, to, callerFromRequest(r))
	if len(rates) == 0 {
		h.metrics.RateUnavailableTotal.Inc()
		h.sendErrorResponse(w, http.StatusServiceUnavailable, "no provider could quote the pair")
		return
	}

	h.sendSuccessResponse(w, rates)
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	response := Response{
		Success: true,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := Response{
		Success: false,
		Error:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode error response", "error", err)
	}
}
