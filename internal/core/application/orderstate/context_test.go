package orderstate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/orderstate"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct{ mock.Mock }

func (m *MockStore) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type recordingObserver struct {
	results []orderstate.Result
}

func (r *recordingObserver) Observe(_ context.Context, result orderstate.Result) {
	r.results = append(r.results, result)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(kernel.NewUUID(), status, "Unpaid", "", 0, time.Now())
	require.NoError(t, err)
	return o
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		entry := map[string]any{}
		require.NoError(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestContext_PendingToDelivered(t *testing.T) {
	ctx := t.Context()
	store := new(MockStore)
	store.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(3)
	machine := orderstate.NewContext(store, discardLogger())
	o := newOrder(t, order.Pending)

	assert.True(t, machine.CanConfirm(o))
	assert.True(t, machine.Confirm(ctx, o).OK())
	assert.Equal(t, order.ReadyToShip, o.Status())

	assert.True(t, machine.CanShip(o))
	assert.True(t, machine.Ship(ctx, o).OK())
	assert.Equal(t, order.Shipping, o.Status())

	assert.True(t, machine.CanDeliver(o))
	result := machine.Deliver(ctx, o)
	assert.True(t, result.OK())
	assert.Equal(t, order.Shipping, result.From)
	assert.Equal(t, order.Delivered, result.To)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus())
	assert.Equal(t, 3, o.Version())

	assert.False(t, machine.CanConfirm(o))
	assert.False(t, machine.CanReadyToShip(o))
	assert.False(t, machine.CanShip(o))
	assert.False(t, machine.CanDeliver(o))
	assert.False(t, machine.CanCancel(o))

	store.AssertExpectations(t)
}

func TestContext_CancelFromReadyToShip(t *testing.T) {
	ctx := t.Context()
	store := new(MockStore)
	store.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	machine := orderstate.NewContext(store, discardLogger())
	o := newOrder(t, order.Pending)

	require.True(t, machine.Confirm(ctx, o).OK())

	result := machine.Cancel(ctx, o, "out of stock")

	require.True(t, result.OK())
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, order.PaymentStatusCancelledRefund, o.PaymentStatus())
	assert.Equal(t, "out of stock", o.OrderNotes())

	shipResult := machine.Ship(ctx, o)
	assert.False(t, shipResult.OK())
	assert.Equal(t, orderstate.OutcomeRejected, shipResult.Outcome)
	assert.Equal(t, order.Cancelled, o.Status())

	store.AssertExpectations(t)
}

func TestContext_Rejected_DoesNotMutateOrPersist(t *testing.T) {
	ops := map[order.Status][]order.Operation{
		order.Pending:     {order.OperationReadyToShip, order.OperationShip, order.OperationDeliver},
		order.ReadyToShip: {order.OperationConfirm, order.OperationReadyToShip, order.OperationDeliver},
		order.Shipping:    {order.OperationConfirm, order.OperationReadyToShip, order.OperationShip, order.OperationCancel},
		order.Delivered:   order.Operations(),
		order.Cancelled:   order.Operations(),
	}

	for status, illegal := range ops {
		for _, op := range illegal {
			t.Run(status.String()+"/"+string(op), func(t *testing.T) {
				store := new(MockStore)
				machine := orderstate.NewContext(store, discardLogger())
				o := newOrder(t, status)

				assert.False(t, machine.Can(o, op))
				for range 2 {
					result := machine.Apply(t.Context(), o, op, "reason")

					assert.False(t, result.OK())
					assert.Equal(t, orderstate.OutcomeRejected, result.Outcome)
					require.ErrorIs(t, result.Err, errs.ErrTransitionIsNotAllowed)
					assert.Equal(t, status, result.From)
					assert.Equal(t, status, result.To)
				}

				assert.Equal(t, status, o.Status())
				assert.Equal(t, "Unpaid", o.PaymentStatus())
				assert.Empty(t, o.OrderNotes())
				assert.Equal(t, 0, o.Version())
				store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			})
		}
	}
}

func TestContext_PersistFailure_KeepsInMemoryMutation(t *testing.T) {
	ctx := t.Context()
	store := new(MockStore)
	store.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("connection reset")).Once()
	machine := orderstate.NewContext(store, discardLogger())
	o := newOrder(t, order.Pending)

	result := machine.Confirm(ctx, o)

	assert.False(t, result.OK())
	assert.Equal(t, orderstate.OutcomePersistFailed, result.Outcome)
	require.EqualError(t, result.Err, "connection reset")
	assert.Equal(t, order.ReadyToShip, o.Status())
	assert.Equal(t, order.ReadyToShip, result.To)
	store.AssertExpectations(t)
}

func TestContext_VersionConflict(t *testing.T) {
	ctx := t.Context()
	conflict := errs.NewVersionIsInvalidErrorWithCause("order", errors.New("stale"))
	store := new(MockStore)
	store.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(conflict).Once()
	machine := orderstate.NewContext(store, discardLogger())
	o := newOrder(t, order.ReadyToShip)

	result := machine.Cancel(ctx, o, "customer request")

	assert.False(t, result.OK())
	assert.Equal(t, orderstate.OutcomeConflict, result.Outcome)
	require.ErrorIs(t, result.Err, errs.ErrVersionIsInvalid)
	store.AssertExpectations(t)
}

func TestContext_ContextCancelledDuringSave_IsPersistFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	store := orderstate.StoreFunc(func(ctx context.Context, _ *order.Order) error {
		return ctx.Err()
	})
	machine := orderstate.NewContext(store, discardLogger())

	result := machine.Confirm(ctx, newOrder(t, order.Pending))

	assert.Equal(t, orderstate.OutcomePersistFailed, result.Outcome)
	require.ErrorIs(t, result.Err, context.Canceled)
}

func TestContext_InvalidOrders(t *testing.T) {
	tests := []struct {
		name  string
		order *order.Order
	}{
		{name: "nil order", order: nil},
		{name: "zero value order", order: &order.Order{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			machine := orderstate.NewContext(store, discardLogger())

			assert.NotPanics(t, func() {
				for _, op := range order.Operations() {
					assert.False(t, machine.Can(tt.order, op))

					result := machine.Apply(t.Context(), tt.order, op, "reason")
					assert.False(t, result.OK())
					assert.Equal(t, orderstate.OutcomeInvalid, result.Outcome)
					require.ErrorIs(t, result.Err, order.ErrOrderIsNotConstructed)
				}
			})
			store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestContext_UnknownOperation(t *testing.T) {
	store := new(MockStore)
	machine := orderstate.NewContext(store, discardLogger())
	o := newOrder(t, order.Pending)

	result := machine.Apply(t.Context(), o, order.Operation("refund"), "")

	assert.Equal(t, orderstate.OutcomeInvalid, result.Outcome)
	require.ErrorIs(t, result.Err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, o.Status())
	assert.False(t, machine.Can(o, order.Operation("refund")))
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContext_NotifiesObservers(t *testing.T) {
	ctx := t.Context()
	store := new(MockStore)
	store.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	first := &recordingObserver{}
	second := &recordingObserver{}
	machine := orderstate.NewContext(store, discardLogger(), first, second)
	o := newOrder(t, order.Pending)

	machine.Confirm(ctx, o)
	machine.Confirm(ctx, o)

	for _, observer := range []*recordingObserver{first, second} {
		require.Len(t, observer.results, 2)
		assert.Equal(t, orderstate.OutcomeApplied, observer.results[0].Outcome)
		assert.Equal(t, orderstate.OutcomeRejected, observer.results[1].Outcome)
		assert.True(t, observer.results[0].OrderID.IsEqual(o.ID()))
	}
}

func TestContext_Logging(t *testing.T) {
	ctx := t.Context()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := new(MockStore)
	store.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	store.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("disk full")).Once()
	machine := orderstate.NewContext(store, logger)
	o := newOrder(t, order.Pending)

	machine.Confirm(ctx, o)
	machine.Confirm(ctx, o)
	machine.Ship(ctx, o)
	machine.Deliver(ctx, nil)

	entries := logEntries(t, buf)
	require.Len(t, entries, 4)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, o.ID().String(), entries[0]["order_id"])
	assert.Equal(t, "confirm", entries[0]["operation"])
	assert.Equal(t, "ReadyToShip", entries[0]["state"])
	assert.Equal(t, "order_state_context", entries[0]["component"])

	assert.Equal(t, "WARN", entries[1]["level"])
	assert.Equal(t, "rejected", entries[1]["outcome"])
	assert.Equal(t, "ReadyToShip", entries[1]["state"])

	assert.Equal(t, "ERROR", entries[2]["level"])
	assert.Equal(t, "ship", entries[2]["operation"])
	assert.Equal(t, o.ID().String(), entries[2]["order_id"])
	assert.Equal(t, "disk full", entries[2]["error"])

	assert.Equal(t, "WARN", entries[3]["level"])
	assert.Equal(t, "invalid", entries[3]["outcome"])
	assert.Empty(t, entries[3]["order_id"])
}

func TestResult_OK(t *testing.T) {
	for _, outcome := range orderstate.Outcomes() {
		result := orderstate.Result{Outcome: outcome}
		assert.Equal(t, outcome == orderstate.OutcomeApplied, result.OK(), string(outcome))
	}
}
