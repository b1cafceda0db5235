package sqlstore

import (
	"context"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"

	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage"
)

// Connection is the slice of the pgx API the stores issue queries through.
// Both *pgxpool.Pool and pgx.Tx satisfy it.
type Connection interface {
	pgxscan.Querier
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type txKey struct{}

// delegatingConnection routes queries to the transaction carried by the
// context when there is one, and to the pool otherwise. Stores never have to
// know whether they run inside WithTransaction.
type delegatingConnection struct {
	pool *pgxpool.Pool
}

func (c delegatingConnection) connection(ctx context.Context) Connection {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return c.pool
}

func (c delegatingConnection) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return c.connection(ctx).Query(ctx, sql, args...)
}

func (c delegatingConnection) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return c.connection(ctx).Exec(ctx, sql, args...)
}

type ConnectionSource struct {
	Connection Connection

	log  *logging.Logger
	pool *pgxpool.Pool
}

func NewConnectionSource(ctx context.Context, log *logging.Logger, connConfig ConnectionConfig) (*ConnectionSource, error) {
	poolConfig, err := connConfig.GetPoolConfig()
	if err != nil {
		return nil, errors.Wrap(err, "creating connection pool config")
	}

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}

	return &ConnectionSource{
		Connection: delegatingConnection{pool: pool},
		log:        log.Named(namedLogger),
		pool:       pool,
	}, nil
}

// WithTransaction runs fn inside a database transaction. The connection
// carried by the context routes every store call issued from fn through that
// transaction. The error returned by fn is passed through unchanged after
// rollback. Nested calls join the enclosing transaction.
func (s *ConnectionSource) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.log.Error("failed to roll back transaction", logging.Error(rbErr))
		}
		return err
	}

	return errors.Wrap(tx.Commit(ctx), "committing transaction")
}

func (s *ConnectionSource) Close() {
	s.pool.Close()
}

// wrapE maps driver level failures onto the shared storage sentinels.
func (s *ConnectionSource) wrapE(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return storage.ErrNotFound
	case isUniqueViolation(err):
		return storage.ErrDuplicateKey
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
