package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
)

// DBExecutor общий интерфейс для *sql.DB и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const (
	defaultDBName          = "postgres"
	defaultCollectInterval = 15 * time.Second
)

// DB обертка над *sql.DB, замеряющая длительность запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает db и запускает сбор статистики пула с интервалом interval до закрытия stopCh
func Wrap(db *sql.DB, m *metrics.Metrics, dbName string, interval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}
	go wrapped.collectPoolStats(dbName, interval, stopCh)
	return wrapped
}

// WrapWithDefault Wrap с настройками по умолчанию
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	return Wrap(db, m, defaultDBName, defaultCollectInterval, stopCh)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(operation string, started time.Time) {
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (d *DB) collectPoolStats(dbName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordPoolStats(dbName)

		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordPoolStats(dbName string) {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
	d.metrics.DBInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
	d.metrics.DBIdle.WithLabelValues(dbName).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(dbName).Set(float64(stats.WaitCount))
}
