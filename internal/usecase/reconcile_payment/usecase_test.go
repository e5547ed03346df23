package reconcile_payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TyreService/internal/domain"
	apptRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/catalog"
	orderRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/order"
	tempOrderRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/temporder"
	"github.com/m04kA/SMC-TyreService/internal/service/appointments"
	"github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
	"github.com/m04kA/SMC-TyreService/pkg/logger"
	"github.com/m04kA/SMC-TyreService/pkg/pgerrors"
	"github.com/m04kA/SMC-TyreService/pkg/ptr"
	"github.com/m04kA/SMC-TyreService/pkg/types"
)

var testNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeOrders struct {
	byID         map[int64]*domain.Order
	nextID       int64
	raceOnCreate bool
}

func (r *fakeOrders) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if r.raceOnCreate {
		return nil, orderRepo.ErrDuplicateSession
	}
	for _, existing := range r.byID {
		if existing.PaymentSessionID != nil && o.PaymentSessionID != nil && *existing.PaymentSessionID == *o.PaymentSessionID {
			return nil, orderRepo.ErrDuplicateSession
		}
	}
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = testNow
	o.UpdatedAt = testNow
	stored := *o
	r.byID[o.ID] = &stored
	return o, nil
}

func (r *fakeOrders) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, orderRepo.ErrOrderNotFound
	}
	copied := *o
	copied.Payments = append([]domain.Payment(nil), o.Payments...)
	return &copied, nil
}

func (r *fakeOrders) GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	for id, o := range r.byID {
		if o.PaymentSessionID != nil && *o.PaymentSessionID == sessionID {
			return r.GetByID(ctx, id)
		}
	}
	return nil, orderRepo.ErrOrderNotFound
}

func (r *fakeOrders) UpdatePayments(_ context.Context, id int64, payments []domain.Payment) error {
	o, ok := r.byID[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	o.Payments = append([]domain.Payment(nil), payments...)
	return nil
}

type fakeAppointments struct {
	created []*domain.Appointment
	taken   map[string]bool // date|slot
}

func (r *fakeAppointments) CreateIfSlotFree(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	key := a.Date.String() + "|" + a.SlotID
	if r.taken[key] {
		return nil, apptRepo.ErrSlotTaken
	}
	r.taken[key] = true
	a.ID = int64(len(r.created) + 100)
	r.created = append(r.created, a)
	return a, nil
}

type fakeConfirmer struct {
	confirmed []int64
	err       error
}

func (c *fakeConfirmer) Confirm(_ context.Context, id int64) error {
	if c.err != nil {
		return c.err
	}
	c.confirmed = append(c.confirmed, id)
	return nil
}

type fakeCatalog struct {
	products map[int64]*domain.Product
	services map[int64]*domain.Service
	tax      *domain.Tax
	taxErrs  []error // ошибки GetCurrentTax по очереди вызовов
}

func (c *fakeCatalog) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, catalogRepo.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (c *fakeCatalog) GetService(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := c.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

func (c *fakeCatalog) ApplyStockDelta(_ context.Context, productID int64, delta int) (int, error) {
	p, ok := c.products[productID]
	if !ok {
		return 0, catalogRepo.ErrProductNotFound
	}
	p.Stock += delta
	return p.Stock, nil
}

func (c *fakeCatalog) GetCurrentTax(_ context.Context) (*domain.Tax, error) {
	if len(c.taxErrs) > 0 {
		err := c.taxErrs[0]
		c.taxErrs = c.taxErrs[1:]
		return nil, err
	}
	if c.tax == nil {
		return nil, catalogRepo.ErrTaxNotFound
	}
	return c.tax, nil
}

type fakeStaged struct {
	items map[uuid.UUID]*domain.StagedOrder
}

func (s *fakeStaged) GetByID(_ context.Context, id uuid.UUID, now time.Time) (*domain.StagedOrder, error) {
	so, ok := s.items[id]
	if !ok || so.IsExpired(now) {
		return nil, tempOrderRepo.ErrStagedOrderNotFound
	}
	copied := *so
	return &copied, nil
}

func (s *fakeStaged) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return tempOrderRepo.ErrStagedOrderNotFound
	}
	delete(s.items, id)
	return nil
}

type fakeResolver struct {
	cfg *domain.TimeSlotConfig
}

func (r *fakeResolver) ResolveConfig(_ context.Context, _ *int64) (booking_guard.Resolution, error) {
	if r.cfg == nil {
		return booking_guard.Resolution{Kind: booking_guard.NoActiveConfiguration}, nil
	}
	return booking_guard.Resolution{Kind: booking_guard.Found, Config: r.cfg}, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// retryingTx повторяет замыкание на ошибках сериализации, как txmanager
type retryingTx struct {
	attempts    int
	beforeRetry func()
}

func (tx *retryingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	for {
		tx.attempts++
		err := fn(ctx)
		if err == nil || !pgerrors.IsRetryable(err) || tx.attempts >= 3 {
			return err
		}
		if tx.beforeRetry != nil {
			tx.beforeRetry()
		}
	}
}

type sentEmail struct {
	to, subject, body string
}

type fakeNotifier struct {
	sent []sentEmail
}

func (n *fakeNotifier) Send(_ context.Context, to, subject, htmlBody string) error {
	n.sent = append(n.sent, sentEmail{to: to, subject: subject, body: htmlBody})
	return nil
}

type fakeSMS struct {
	sent []string
}

func (s *fakeSMS) SendSMS(_ context.Context, to, _ string) error {
	s.sent = append(s.sent, to)
	return nil
}

type recordingMetrics struct {
	webhook   map[string]int
	conflicts map[string]int
	negative  int
	stock     int
}

func (m *recordingMetrics) IncWebhookEvent(outcome string) { m.webhook[outcome]++ }
func (m *recordingMetrics) IncStockAdjustment(negative bool) {
	m.stock++
	if negative {
		m.negative++
	}
}
func (m *recordingMetrics) IncNotificationFailure(string)    {}
func (m *recordingMetrics) IncBookingConflict(source string) { m.conflicts[source]++ }

type fixture struct {
	uc       *UseCase
	orders   *fakeOrders
	appts    *fakeAppointments
	confirm  *fakeConfirmer
	catalog  *fakeCatalog
	staged   *fakeStaged
	notifier *fakeNotifier
	sms      *fakeSMS
	metrics  *recordingMetrics
}

func testConfig() *domain.TimeSlotConfig {
	return &domain.TimeSlotConfig{
		ID:        1,
		StartTime: "09:00",
		EndTime:   "12:00",
		Duration:  60,
		GeneratedSlots: []domain.Slot{
			{SlotID: "slot_1", StartTime: "09:00", EndTime: "10:00"},
			{SlotID: "slot_2", StartTime: "10:00", EndTime: "11:00"},
			{SlotID: "slot_3", StartTime: "11:00", EndTime: "12:00"},
		},
	}
}

func newFixture() *fixture {
	f := &fixture{
		orders:  &fakeOrders{byID: make(map[int64]*domain.Order)},
		appts:   &fakeAppointments{taken: make(map[string]bool)},
		confirm: &fakeConfirmer{},
		catalog: &fakeCatalog{
			products: map[int64]*domain.Product{
				1: {ID: 1, Name: "Pilot Sport 5", BrandName: "Michelin", Price: decimal.RequireFromString("100.00"), Stock: 10},
				2: {ID: 2, Name: "Turanza T005", BrandName: "Bridgestone", Price: decimal.RequireFromString("50.00"), Stock: 1},
			},
			services: map[int64]*domain.Service{
				1: {ID: 1, Name: "Wheel alignment", Price: decimal.RequireFromString("30.00")},
			},
			tax: &domain.Tax{ID: 1, Name: "VAT", Percentage: decimal.NewFromInt(10)},
		},
		staged:   &fakeStaged{items: make(map[uuid.UUID]*domain.StagedOrder)},
		notifier: &fakeNotifier{},
		sms:      &fakeSMS{},
		metrics:  &recordingMetrics{webhook: make(map[string]int), conflicts: make(map[string]int)},
	}

	f.uc = NewUseCase(Dependencies{
		Orders:       f.orders,
		Appointments: f.appts,
		Confirmer:    f.confirm,
		Catalog:      f.catalog,
		StagedOrders: f.staged,
		Resolver:     &fakeResolver{cfg: testConfig()},
		TxManager:    passthroughTx{},
		Notifier:     f.notifier,
		SMS:          f.sms,
		Metrics:      f.metrics,
	}, Settings{
		ShopName:             "Tyre Shop",
		AdminEmail:           "admin@tyres.example",
		DefaultTaxName:       "GST",
		DefaultTaxPercentage: decimal.NewFromInt(7),
	}, logger.NewNop())
	f.uc.timeProvider = fixedClock{now: testNow}

	return f
}

func (f *fixture) stage(email string) uuid.UUID {
	id := uuid.New()
	f.staged.items[id] = &domain.StagedOrder{
		ID: id,
		Payload: domain.StagedOrderPayload{
			Appointment: domain.StagedAppointment{
				Name:       "Jane Doe",
				Phone:      "+66812345678",
				Email:      email,
				Date:       "2030-01-15",
				SlotID:     "slot_2",
				TimeSlotID: ptr.Ptr(int64(1)),
				Time:       "10:00 - 11:00",
			},
			Items: []domain.StagedItem{
				{Kind: domain.ItemProduct, RefID: 1, Quantity: 2},
				{Kind: domain.ItemProduct, RefID: 2, Quantity: 2},
				{Kind: domain.ItemService, RefID: 1, Quantity: 1},
			},
			PaymentOption: domain.PaymentOptionFull,
			Charges:       decimal.NewFromInt(5),
			PaymentAmount: decimal.RequireFromString("368.00"),
		},
		CreatedAt: testNow.Add(-10 * time.Minute),
		ExpiresAt: testNow.Add(50 * time.Minute),
	}
	return id
}

func chargeEvent(chargeID string, meta map[string]interface{}) *Request {
	return &Request{
		EventID:       "evnt_" + chargeID,
		EventType:     "charge.complete",
		ChargeStatus:  "successful",
		TransactionID: chargeID,
		SessionID:     chargeID,
		Amount:        36800,
		Currency:      "thb",
		Method:        "card",
		Metadata:      meta,
	}
}

func TestExecute_CreatesOrderFromStagedData(t *testing.T) {
	f := newFixture()
	tempID := f.stage("jane@example.com")

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_1", map[string]interface{}{
		"temp_order_id": tempID.String(),
	}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, resp.Outcome)
	assert.False(t, resp.SlotConflict)
	require.NotNil(t, resp.OrderID)
	require.NotNil(t, resp.AppointmentID)

	order := f.orders.byID[*resp.OrderID]
	require.Len(t, order.Items, 3)
	assert.True(t, decimal.RequireFromString("330").Equal(order.Subtotal))
	assert.True(t, decimal.RequireFromString("33").Equal(order.TaxAmount))
	assert.True(t, decimal.RequireFromString("368").Equal(order.Total))
	assert.Equal(t, "VAT", order.TaxName)
	assert.Equal(t, domain.PaymentFull, order.Payments[0].Status)
	assert.Equal(t, "chrg_1", *order.PaymentSessionID)

	require.Len(t, f.appts.created, 1)
	assert.Equal(t, domain.StatusConfirmed, f.appts.created[0].Status)
	assert.Equal(t, int64(1), f.appts.created[0].TimeSlotID)

	// остаток второго товара уходит в минус, заказ не отклоняется
	assert.Equal(t, 8, f.catalog.products[1].Stock)
	assert.Equal(t, -1, f.catalog.products[2].Stock)
	assert.Equal(t, 2, f.metrics.stock)
	assert.Equal(t, 1, f.metrics.negative)

	assert.Empty(t, f.staged.items)
	require.Len(t, f.notifier.sent, 2)
	assert.Equal(t, "jane@example.com", f.notifier.sent[0].to)
	assert.Equal(t, "admin@tyres.example", f.notifier.sent[1].to)
	assert.Equal(t, []string{"+66812345678"}, f.sms.sent)
	assert.Equal(t, 1, f.metrics.webhook["processed"])
}

func TestExecute_RedeliveryIsIdempotent(t *testing.T) {
	f := newFixture()
	tempID := f.stage("jane@example.com")
	event := chargeEvent("chrg_2", map[string]interface{}{"temp_order_id": tempID.String()})

	first, err := f.uc.Execute(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, OutcomeProcessed, first.Outcome)

	second, err := f.uc.Execute(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, second.Outcome)
	assert.Equal(t, *first.OrderID, *second.OrderID)

	assert.Len(t, f.orders.byID, 1)
	assert.Len(t, f.appts.created, 1)
	assert.Equal(t, -1, f.catalog.products[2].Stock)
	assert.Len(t, f.notifier.sent, 2)
}

func TestExecute_ConcurrentDeliveryRollsBack(t *testing.T) {
	f := newFixture()
	tempID := f.stage("jane@example.com")
	f.orders.raceOnCreate = true

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_3", map[string]interface{}{
		"temp_order_id": tempID.String(),
	}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, resp.Outcome)
	assert.Empty(t, f.notifier.sent)
}

func TestExecute_SlotTakenFlagsOrder(t *testing.T) {
	f := newFixture()
	tempID := f.stage("jane@example.com")
	f.appts.taken["2030-01-15|slot_2"] = true

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_4", map[string]interface{}{
		"temp_order_id": tempID.String(),
	}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, resp.Outcome)
	assert.True(t, resp.SlotConflict)
	assert.Nil(t, resp.AppointmentID)

	order := f.orders.byID[*resp.OrderID]
	assert.True(t, order.SlotConflict)
	assert.Nil(t, order.AppointmentID)
	assert.Equal(t, "slot_2", order.Appointment.SlotID)

	assert.Equal(t, 1, f.metrics.conflicts["webhook"])
	require.Len(t, f.notifier.sent, 2)
	assert.Contains(t, f.notifier.sent[1].subject, "slot conflict")
	assert.Empty(t, f.sms.sent)
}

func TestExecute_SessionKeyFallback(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		meta      map[string]interface{}
		want      string
	}{
		{name: "request session id", sessionID: "sess_ext", want: "sess_ext"},
		{name: "empty session id uses charge id", sessionID: "", want: "chrg_9"},
		{
			name:      "checkout session from metadata wins",
			sessionID: "sess_ext",
			meta:      map[string]interface{}{"checkout_session_id": "cs_meta"},
			want:      "cs_meta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			meta := map[string]interface{}{"temp_order_id": f.stage("jane@example.com").String()}
			for k, v := range tt.meta {
				meta[k] = v
			}
			event := chargeEvent("chrg_9", meta)
			event.SessionID = tt.sessionID

			resp, err := f.uc.Execute(context.Background(), event)
			require.NoError(t, err)
			require.Equal(t, OutcomeProcessed, resp.Outcome)

			order := f.orders.byID[*resp.OrderID]
			require.NotNil(t, order.PaymentSessionID)
			assert.Equal(t, tt.want, *order.PaymentSessionID)
			assert.Equal(t, "chrg_9", order.Payments[0].TransactionID)
		})
	}
}

func TestExecute_StockMetricsCountedOnceAfterRetry(t *testing.T) {
	f := newFixture()
	tempID := f.stage("jane@example.com")
	f.catalog.taxErrs = []error{
		fmt.Errorf("tax lookup: %w", &pq.Error{Code: "40001"}),
	}
	tx := &retryingTx{beforeRetry: func() {
		f.appts.taken = make(map[string]bool)
		f.appts.created = nil
	}}
	f.uc.deps.TxManager = tx

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_10", map[string]interface{}{
		"temp_order_id": tempID.String(),
	}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, resp.Outcome)
	assert.False(t, resp.SlotConflict)
	assert.Equal(t, 2, tx.attempts)

	assert.Equal(t, 2, f.metrics.stock)
	assert.Equal(t, 1, f.metrics.negative)
	assert.Empty(t, f.metrics.conflicts)
}

func TestExecute_MissingEmailIsUnprocessable(t *testing.T) {
	f := newFixture()
	tempID := f.stage("")

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_5", map[string]interface{}{
		"temp_order_id": tempID.String(),
	}))
	assert.ErrorIs(t, err, ErrUnprocessableEvent)
	assert.Equal(t, OutcomeUnprocessable, resp.Outcome)
	assert.Empty(t, f.orders.byID)
	assert.Empty(t, f.appts.created)
	assert.Equal(t, 1, f.metrics.webhook["unprocessable"])
}

func TestExecute_LegacyMetadataRestoresTimeLabel(t *testing.T) {
	f := newFixture()
	f.catalog.tax = nil

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_6", map[string]interface{}{
		"customer_email": "legacy@example.com",
		"customer_name":  "Legacy Customer",
		"customer_phone": "0812345678",
		"date":           "2030-01-16",
		"slot_id":        "slot_3",
		"items":          `[{"type":"product","id":1,"quantity":1}]`,
		"payment_option": "partial",
		"payment_amount": "50.00",
	}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, resp.Outcome)

	require.Len(t, f.appts.created, 1)
	assert.Equal(t, "11:00 - 12:00", f.appts.created[0].Time)

	order := f.orders.byID[*resp.OrderID]
	assert.Equal(t, "GST", order.TaxName)
	assert.True(t, decimal.RequireFromString("7").Equal(order.TaxAmount))
	assert.Equal(t, domain.PaymentPartial, order.Payments[0].Status)
	assert.True(t, decimal.RequireFromString("50").Equal(order.Payments[0].Amount))
	assert.Equal(t, "11:00 - 12:00", order.Appointment.Time)
}

func existingOrder(f *fixture, status domain.PaymentStatus) *domain.Order {
	o := &domain.Order{
		Total:         decimal.RequireFromString("200.00"),
		AppointmentID: ptr.Ptr(int64(55)),
		Appointment:   &domain.AppointmentSnapshot{ID: ptr.Ptr(int64(55)), Date: types.Date("2030-01-15"), SlotID: "slot_1", Time: "09:00 - 10:00"},
		Customer:      domain.CustomerSnapshot{Name: "Jane Doe", Email: "jane@example.com", Phone: "+66812345678"},
		Payments: []domain.Payment{{
			Method: "card",
			Status: status,
			Amount: decimal.RequireFromString("200.00"),
		}},
	}
	created, _ := f.orders.Create(context.Background(), o)
	return created
}

func TestExecute_SettlesExistingOrder(t *testing.T) {
	f := newFixture()
	order := existingOrder(f, domain.PaymentPending)

	event := chargeEvent("chrg_7", map[string]interface{}{"order_id": "1", "payment_type": "full"})
	event.Amount = 20000

	resp, err := f.uc.Execute(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, resp.Outcome)
	assert.Equal(t, order.ID, *resp.OrderID)

	stored := f.orders.byID[order.ID]
	assert.Equal(t, domain.PaymentFull, stored.Payments[0].Status)
	assert.Equal(t, "chrg_7", stored.Payments[0].TransactionID)
	assert.Equal(t, []int64{55}, f.confirm.confirmed)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "jane@example.com", f.notifier.sent[0].to)

	again, err := f.uc.Execute(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, again.Outcome)
	assert.Len(t, f.confirm.confirmed, 1)
}

func TestExecute_ExistingOrderConfirmRefused(t *testing.T) {
	f := newFixture()
	existingOrder(f, domain.PaymentPending)
	f.confirm.err = appointments.ErrInvalidTransition

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_8", map[string]interface{}{"order_id": "1"}))
	require.NoError(t, err)
	assert.Equal(t, OutcomeProcessed, resp.Outcome)
	assert.Equal(t, domain.PaymentFull, f.orders.byID[1].Payments[0].Status)
}

func TestExecute_ExistingOrderNotFound(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), chargeEvent("chrg_9", map[string]interface{}{"order_id": "404"}))
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, OutcomeFailed, resp.Outcome)
}

func TestExecute_FailedCharge(t *testing.T) {
	f := newFixture()
	order := existingOrder(f, domain.PaymentPending)

	event := chargeEvent("chrg_10", map[string]interface{}{"order_id": "1"})
	event.ChargeStatus = "failed"

	resp, err := f.uc.Execute(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, OutcomePaymentFailed, resp.Outcome)

	stored := f.orders.byID[order.ID]
	assert.Equal(t, domain.PaymentFailed, stored.Payments[0].Status)
	assert.True(t, decimal.RequireFromString("200").Equal(stored.Payments[0].Amount))
	assert.Empty(t, f.confirm.confirmed)

	orphan := chargeEvent("chrg_11", nil)
	orphan.ChargeStatus = "failed"
	resp, err = f.uc.Execute(context.Background(), orphan)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, resp.Outcome)
}

func TestExecute_IgnoresOtherEvents(t *testing.T) {
	f := newFixture()

	event := chargeEvent("chrg_12", nil)
	event.EventType = "customer.create"

	resp, err := f.uc.Execute(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, resp.Outcome)

	missing := chargeEvent("", nil)
	resp, err = f.uc.Execute(context.Background(), missing)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, OutcomeUnprocessable, resp.Outcome)
}
