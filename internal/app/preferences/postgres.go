package preferences

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DBTX is the subset of pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps preferences in the user_preferences table.
type PostgresStore struct {
	db     DBTX
	logger *zap.Logger
	psql   sq.StatementBuilderType
	now    func() time.Time
}

func NewPostgresStore(db DBTX, logger *zap.Logger) *PostgresStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{
		db:     db,
		logger: logger,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		now:    time.Now,
	}
}

func (s *PostgresStore) Get(ctx context.Context, owner, key string) (bool, error) {
	userID, err := uuid.Parse(owner)
	if err != nil {
		return false, errors.Wrapf(err, "preference owner %q", owner)
	}

	query, args, err := s.psql.
		Select("value").
		From("user_preferences").
		Where("user_id = ? AND pref_key = ?", userID, key).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build preference query")
	}

	var value bool
	if err := s.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		s.logger.Error("Failed to read preference",
			zap.String("user_id", owner), zap.String("key", key), zap.Error(err))
		return false, errors.Wrap(err, "read preference")
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, owner, key string, value bool) error {
	userID, err := uuid.Parse(owner)
	if err != nil {
		return errors.Wrapf(err, "preference owner %q", owner)
	}

	query, args, err := s.psql.
		Insert("user_preferences").
		Columns("user_id", "pref_key", "value", "updated_at").
		Values(userID, key, value, s.now().UTC()).
		Suffix("ON CONFLICT (user_id, pref_key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build preference upsert")
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.logger.Error("Failed to write preference",
			zap.String("user_id", owner), zap.String("key", key), zap.Error(err))
		return errors.Wrap(err, "write preference")
	}
	return nil
}
