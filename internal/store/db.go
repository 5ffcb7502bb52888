package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/stockroom/internal/dependency"
	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
	"github.com/jmoiron/sqlx"
)

const (
	errDeadlock        = 1213
	errLockWaitTimeout = 1205
)

type ltx struct {
	*sqlx.Tx
}

func (t ltx) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, fmt.Errorf("already in transaction")
}

type txDB interface {
	Commit() error
	Rollback() error
}

func (ms *MYSQLStore) DB() dependency.DB {
	return ms.db
}

// Tx starts transaction and executes the function passing to it a store bound
// to this transaction. It automatically rolls the transaction back if function
// returns an error. If the error has been caused by a deadlock, it calls the
// function again, so the function should return store errors unchanged or
// wrap them using %w.
func (ms *MYSQLStore) Tx(ctx context.Context, f func(context.Context, *MYSQLStore) error) error {
	for {
		tx, err := ms.TxBegin(ctx)
		if err != nil {
			return err
		}
		err = f(ctx, tx)
		if err == nil {
			if err = tx.TxCommit(ctx); err == nil {
				return nil
			}
		}
		_ = tx.TxRollback(ctx)
		if ms.IsErrorRepeat(err) {
			continue
		}
		return err
	}
}

// InTx returns true if the object is in transaction
func (ms *MYSQLStore) InTx() bool {
	return ms.txDB != nil
}

func (ms *MYSQLStore) TxBegin(ctx context.Context) (*MYSQLStore, error) {
	tx, err := ms.DB().BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return nil, err
	}

	return &MYSQLStore{
		db:   ltx{Tx: tx},
		txDB: tx,
		ts:   ms.Now(),
	}, nil
}

// Now returns current time for the store. It is frozen during transactions.
func (ms *MYSQLStore) Now() time.Time {
	if ms.ts.IsZero() {
		return time.Now()
	}
	return ms.ts
}

func (ms *MYSQLStore) TxCommit(ctx context.Context) error {
	if ms.txDB == nil {
		return fmt.Errorf("not in transaction")
	}
	err := ms.txDB.Commit()
	if err == nil {
		ms.db = nil
		ms.txDB = nil
	}
	return err
}

func (ms *MYSQLStore) TxRollback(ctx context.Context) error {
	if ms.txDB == nil {
		return fmt.Errorf("not in transaction")
	}
	err := ms.txDB.Rollback()
	if err == nil {
		ms.db = nil
		ms.txDB = nil
	}
	return err
}

func (ms *MYSQLStore) IsErrorRepeat(err error) bool {
	var e *mysql.MySQLError
	if errors.As(err, &e) {
		return e.Number == errDeadlock || e.Number == errLockWaitTimeout
	}
	return false
}

func namedQuery(query string, params map[string]any) (string, []any, error) {
	queryNamed := namedParameterQuery.NewNamedParameterQuery(query)
	queryNamed.SetValuesFromMap(params)
	return sqlx.In(queryNamed.GetParsedQuery(), queryNamed.GetParsedParameters()...)
}

func QueryListNamed[T any](
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) ([]T, error) {
	query, args, err := namedQuery(query, params)
	if err != nil {
		return nil, fmt.Errorf("in: %w", err)
	}

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	target := []T{}
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		target = append(target, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return target, nil
}

func QueryCountNamed(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) (int32, error) {
	query, args, err := namedQuery(query, params)
	if err != nil {
		return 0, fmt.Errorf("sqlx in: %w", err)
	}

	var count int32
	if err := conn.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("query row scan: %w", err)
	}

	return count, nil
}

// nolint: interfacer
func ExecNamed(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) error {
	query, args, argsErr := namedQuery(query, params)
	if argsErr != nil {
		return fmt.Errorf("sqlx In: %w", argsErr)
	}
	_, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ExecContext: %w", err)
	}

	return nil
}

// BulkInsert performs a bulk insert operation. Columns are taken in the given
// order from every row.
func BulkInsert(ctx context.Context, conn dependency.DB, tableName string, columns []string, rows []map[string]any) error {
	if len(rows) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(rows))
	values := make([]any, 0, len(rows)*len(columns))
	for _, row := range rows {
		placeholders := make([]string, 0, len(columns))
		for _, column := range columns {
			placeholders = append(placeholders, "?")
			values = append(values, row[column])
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(valueStrings, ", "),
	)

	_, err := conn.ExecContext(ctx, query, values...)
	if err != nil {
		return fmt.Errorf("BulkInsert failed: %w", err)
	}

	return nil
}

// activeRange builds the WHERE clause selecting rows that are not soft deleted
// and were created inside rng.
func activeRange(rng entity.DateRange) (string, map[string]any) {
	where := []string{"deleted_at IS NULL"}
	params := map[string]any{}
	if rng.Start != nil {
		where = append(where, "created_at >= :start")
		params["start"] = *rng.Start
	}
	if rng.End != nil {
		where = append(where, "created_at < :end")
		params["end"] = *rng.End
	}
	return strings.Join(where, " AND "), params
}

// requireActive fails with gerr.ErrNotFound unless table has an active row with id.
func requireActive(ctx context.Context, conn dependency.DB, table, id string) error {
	n, err := QueryCountNamed(ctx, conn,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id = :id AND deleted_at IS NULL`, table),
		map[string]any{"id": id},
	)
	if err != nil {
		return fmt.Errorf("can't check %s %s: %w", table, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, gerr.ErrNotFound)
	}
	return nil
}

// softDelete marks an active row of table as deleted.
func softDelete(ctx context.Context, ms *MYSQLStore, table, id string) error {
	return ms.Tx(ctx, func(ctx context.Context, tx *MYSQLStore) error {
		if err := requireActive(ctx, tx.DB(), table, id); err != nil {
			return err
		}
		ts := tx.Now().Unix()
		return ExecNamed(ctx, tx.DB(),
			fmt.Sprintf(`UPDATE %s SET deleted_at = :ts, updated_at = :ts WHERE id = :id`, table),
			map[string]any{"id": id, "ts": ts},
		)
	})
}
