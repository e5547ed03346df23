package omise_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	"github.com/m04kA/SMC-TyreService/internal/integrations/omisegateway"
	reconcilePayment "github.com/m04kA/SMC-TyreService/internal/usecase/reconcile_payment"
)

const (
	maxEventBytes = 1 << 20

	msgInvalidRequestBody = "invalid webhook body"
	msgNotVerified        = "event could not be verified"
)

type Handler struct {
	verifier EventVerifier
	useCase  ReconcilePaymentUseCase
	logger   Logger
}

func NewHandler(verifier EventVerifier, useCase ReconcilePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		useCase:  useCase,
		logger:   logger,
	}
}

// Handle POST /api/v1/webhooks/omise
// Из тела берется только id события, данные перечитываются у Omise.
// Проверенное событие всегда подтверждается 200, ошибки обработки только логируются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var incoming omisegateway.IncomingEvent
	if err := json.NewDecoder(io.LimitReader(r.Body, maxEventBytes)).Decode(&incoming); err != nil || incoming.ID == "" {
		h.logger.Warn("POST /webhooks/omise - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ev, err := h.verifier.VerifyEvent(r.Context(), incoming.ID)
	if err != nil {
		if errors.Is(err, omisegateway.ErrInvalidEvent) {
			h.logger.Error("POST /webhooks/omise - Verified event is malformed: event_id=%s, error=%v", incoming.ID, err)
			handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true, Outcome: string(reconcilePayment.OutcomeUnprocessable)})
			return
		}
		h.logger.Warn("POST /webhooks/omise - Event not verified: event_id=%s, error=%v", incoming.ID, err)
		handlers.RespondUnauthorized(w, msgNotVerified)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(ev))
	outcome := reconcilePayment.OutcomeFailed
	if result != nil {
		outcome = result.Outcome
	}

	switch {
	case err == nil:
		h.logger.Info("POST /webhooks/omise - Event processed: event_id=%s, outcome=%s", ev.EventID, outcome)
	case errors.Is(err, reconcilePayment.ErrUnprocessableEvent), errors.Is(err, reconcilePayment.ErrInvalidInput):
		h.logger.Warn("POST /webhooks/omise - Event acknowledged without action: event_id=%s, error=%v", ev.EventID, err)
	default:
		h.logger.Error("POST /webhooks/omise - Failed to process event: event_id=%s, outcome=%s, error=%v",
			ev.EventID, outcome, err)
	}

	handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true, Outcome: string(outcome)})
}
