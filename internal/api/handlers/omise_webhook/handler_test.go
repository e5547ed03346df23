package omise_webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TyreService/internal/integrations/omisegateway"
	reconcilePayment "github.com/m04kA/SMC-TyreService/internal/usecase/reconcile_payment"
	"github.com/m04kA/SMC-TyreService/pkg/logger"
)

type fakeVerifier struct {
	events map[string]*omisegateway.ChargeEvent
	err    error
}

func (v *fakeVerifier) VerifyEvent(_ context.Context, eventID string) (*omisegateway.ChargeEvent, error) {
	if v.err != nil {
		return nil, v.err
	}
	ev, ok := v.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", omisegateway.ErrEventNotVerified, eventID)
	}
	return ev, nil
}

type fakeUseCase struct {
	got  *reconcilePayment.Request
	resp *reconcilePayment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *reconcilePayment.Request) (*reconcilePayment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func chargeEvent() *omisegateway.ChargeEvent {
	return &omisegateway.ChargeEvent{
		EventID:      "evnt_test_1",
		EventType:    omisegateway.EventChargeComplete,
		ChargeID:     "chrg_test_1",
		ChargeStatus: omisegateway.ChargeSuccessful,
		Amount:       36800,
		Currency:     "thb",
		Method:       "card",
		Metadata:     map[string]interface{}{"temp_order_id": "0b5b0b8e-5a3c-4c61-9a55-3f1c2f4c1a11"},
	}
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/omise", strings.NewReader(body)))
	return rec
}

func TestHandle_ProcessesVerifiedEvent(t *testing.T) {
	verifier := &fakeVerifier{events: map[string]*omisegateway.ChargeEvent{"evnt_test_1": chargeEvent()}}
	uc := &fakeUseCase{resp: &reconcilePayment.Response{Outcome: reconcilePayment.OutcomeProcessed}}
	h := NewHandler(verifier, uc, logger.NewNop())

	// поля тела кроме id игнорируются: данные берутся из проверенного события
	rec := serve(h, `{"id":"evnt_test_1","key":"charge.complete","data":{"amount":1}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var ack AckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, AckResponse{Received: true, Outcome: "processed"}, ack)

	require.NotNil(t, uc.got)
	assert.Equal(t, "chrg_test_1", uc.got.TransactionID)
	assert.Equal(t, "chrg_test_1", uc.got.SessionID)
	assert.Equal(t, int64(36800), uc.got.Amount)
}

func TestHandle_UnverifiedEventRejected(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(&fakeVerifier{events: map[string]*omisegateway.ChargeEvent{}}, uc, logger.NewNop())

	rec := serve(h, `{"id":"evnt_forged","key":"charge.complete"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_AcknowledgesProcessingFailures(t *testing.T) {
	tests := []struct {
		name        string
		resp        *reconcilePayment.Response
		err         error
		wantOutcome string
	}{
		{
			name:        "unprocessable",
			resp:        &reconcilePayment.Response{Outcome: reconcilePayment.OutcomeUnprocessable},
			err:         reconcilePayment.ErrUnprocessableEvent,
			wantOutcome: "unprocessable",
		},
		{
			name:        "internal error",
			resp:        &reconcilePayment.Response{Outcome: reconcilePayment.OutcomeFailed},
			err:         reconcilePayment.ErrInternal,
			wantOutcome: "failed",
		},
		{
			name:        "no response",
			err:         reconcilePayment.ErrInternal,
			wantOutcome: "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{events: map[string]*omisegateway.ChargeEvent{"evnt_test_1": chargeEvent()}}
			h := NewHandler(verifier, &fakeUseCase{resp: tt.resp, err: tt.err}, logger.NewNop())

			rec := serve(h, `{"id":"evnt_test_1"}`)

			require.Equal(t, http.StatusOK, rec.Code)
			var ack AckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
			assert.Equal(t, tt.wantOutcome, ack.Outcome)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	h := NewHandler(&fakeVerifier{}, &fakeUseCase{}, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, serve(h, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"key":"charge.complete"}`).Code)
}
