package payment_event

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
)

var receivedAt = time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	event := &domain.PaymentEvent{
		ID:                "3f1c2a9e-7c55-4a4e-9f3b-0d6f1b2c3d4e",
		TransmissionID:    "tx-1",
		Event:             "transaction.updated",
		TransactionStatus: "APPROVED",
		Reference:         "SRV_7_99_xyz",
		Kind:              domain.KindService,
		UserID:            "7",
		ItemID:            "99",
		AmountInCents:     150000,
		Outcome:           domain.OutcomeRouted,
		ReceivedAt:        receivedAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payment_events (id,transmission_id,event,transaction_status,reference,kind,user_id,item_id,amount_in_cents,outcome,error,received_at) VALUES")).
		WithArgs(event.ID, "tx-1", "transaction.updated", "APPROVED", "SRV_7_99_xyz",
			"SRV", "7", "99", int64(150000), "routed", nil, receivedAt).
		WillReturnRows(sqlmock.NewRows([]string{"received_at"}).AddRow(receivedAt))

	created, err := repo.Create(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, event.ID, created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_NullsForUnparsedReference(t *testing.T) {
	repo, mock := newMock(t)

	event := &domain.PaymentEvent{
		ID:                "a",
		TransmissionID:    "tx-2",
		Event:             "transaction.updated",
		TransactionStatus: "APPROVED",
		Reference:         "SUB_42",
		Outcome:           domain.OutcomeMalformed,
		Error:             ptr.Ptr("malformed payment reference"),
		ReceivedAt:        receivedAt,
	}

	mock.ExpectQuery("INSERT INTO payment_events").
		WithArgs("a", "tx-2", "transaction.updated", "APPROVED", "SUB_42",
			nil, nil, nil, int64(0), "malformed_reference", "malformed payment reference", receivedAt).
		WillReturnRows(sqlmock.NewRows([]string{"received_at"}).AddRow(receivedAt))

	_, err := repo.Create(context.Background(), event)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Errors(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery("INSERT INTO payment_events").WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), &domain.PaymentEvent{ID: "a"})
		assert.ErrorIs(t, err, ErrDuplicateEvent)
	})

	t.Run("connection error", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery("INSERT INTO payment_events").WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(context.Background(), &domain.PaymentEvent{ID: "a"})
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_GetWithFilter(t *testing.T) {
	repo, mock := newMock(t)

	kind := domain.KindService
	outcome := domain.OutcomeFailed
	from := receivedAt.Add(-24 * time.Hour)

	rows := sqlmock.NewRows(columns).
		AddRow("id-1", "tx-1", "transaction.updated", "APPROVED", "SRV_7_99_xyz", "SRV", "7", "99", int64(150000), "downstream_failed", "status 503", receivedAt).
		AddRow("id-2", "tx-2", "transaction.updated", "APPROVED", "SRV_8_10_abc", "SRV", "8", "10", int64(5000), "downstream_failed", nil, from)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_events WHERE kind = $1 AND outcome = $2 AND received_at >= $3 ORDER BY received_at DESC LIMIT 20")).
		WithArgs("SRV", "downstream_failed", from).
		WillReturnRows(rows)

	events, err := repo.GetWithFilter(context.Background(), domain.PaymentEventsFilter{
		Kind:    &kind,
		Outcome: &outcome,
		From:    &from,
		Limit:   20,
	})
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, domain.KindService, events[0].Kind)
	assert.Equal(t, "7", events[0].UserID)
	require.NotNil(t, events[0].Error)
	assert.Equal(t, "status 503", *events[0].Error)
	assert.Nil(t, events[1].Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_DefaultLimitAndNulls(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows(columns).
		AddRow("id-1", "tx-1", "transaction.updated", "APPROVED", "SUB_42", nil, nil, nil, int64(0), "malformed_reference", "bad", receivedAt)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_events ORDER BY received_at DESC LIMIT 50")).
		WillReturnRows(rows)

	events, err := repo.GetWithFilter(context.Background(), domain.PaymentEventsFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Kind)
	assert.Empty(t, events[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_QueryError(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("FROM payment_events").WillReturnError(errors.New("timeout"))

	_, err := repo.GetWithFilter(context.Background(), domain.PaymentEventsFilter{Reference: ptr.Ptr("SUB_42")})
	assert.ErrorIs(t, err, ErrExecQuery)
}
