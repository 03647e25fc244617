package payment_event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

const (
	tableName = "payment_events"

	// uniqueViolation код ошибки PostgreSQL при нарушении уникальности
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"transmission_id",
	"event",
	"transaction_status",
	"reference",
	"kind",
	"user_id",
	"item_id",
	"amount_in_cents",
	"outcome",
	"error",
	"received_at",
}

// Repository журнал платежных событий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет проверенное событие вебхука
func (r *Repository) Create(ctx context.Context, event *domain.PaymentEvent) (*domain.PaymentEvent, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			event.ID,
			event.TransmissionID,
			event.Event,
			event.TransactionStatus,
			event.Reference,
			nullString(string(event.Kind)),
			nullString(event.UserID),
			nullString(event.ItemID),
			event.AmountInCents,
			event.Outcome,
			event.Error,
			event.ReceivedAt,
		).
		Suffix("RETURNING received_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&event.ReceivedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: id=%s", ErrDuplicateEvent, event.ID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return event, nil
}

// GetWithFilter получает события журнала, новые первыми.
// Все поля фильтра кроме Limit опциональны; From включительно, To не включительно.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.PaymentEventsFilter) ([]*domain.PaymentEvent, error) {
	selectBuilder := psqlbuilder.Select(columns...).From(tableName)

	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": string(*filter.Kind)})
	}
	if filter.Outcome != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"outcome": string(*filter.Outcome)})
	}
	if filter.Reference != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reference": *filter.Reference})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"received_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"received_at": *filter.To})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPaymentEventsLimit
	}
	selectBuilder = selectBuilder.OrderBy("received_at DESC").Limit(uint64(limit))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// scanEvents сканирует строки журнала
func (r *Repository) scanEvents(rows *sql.Rows) ([]*domain.PaymentEvent, error) {
	events := make([]*domain.PaymentEvent, 0)

	for rows.Next() {
		var (
			event                domain.PaymentEvent
			kind, userID, itemID sql.NullString
			errText              sql.NullString
		)

		err := rows.Scan(
			&event.ID,
			&event.TransmissionID,
			&event.Event,
			&event.TransactionStatus,
			&event.Reference,
			&kind,
			&userID,
			&itemID,
			&event.AmountInCents,
			&event.Outcome,
			&errText,
			&event.ReceivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEvents - scan row: %v", ErrScanRow, err)
		}

		event.Kind = domain.PaymentKind(kind.String)
		event.UserID = userID.String
		event.ItemID = itemID.String
		if errText.Valid {
			event.Error = &errText.String
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEvents - rows iteration: %v", ErrScanRow, err)
	}

	return events, nil
}

// nullString пустая строка хранится как NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
