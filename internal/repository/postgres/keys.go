package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/config"
	"github.com/frontandrew/mechanicshop/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// keyAllocator выдает значения целочисленных первичных ключей
type keyAllocator interface {
	// Next резервирует следующий ключ. Вызывается только внутри транзакции
	Next(ctx context.Context, gw *database.Gateway, table, column string) (int, error)

	// Peek возвращает вероятный следующий ключ, ничего не резервируя
	Peek(ctx context.Context, gw *database.Gateway, table, column string) (int, error)
}

func newKeyAllocator(strategy string) keyAllocator {
	if strategy == config.IDStrategySequence {
		return sequenceKeys{}
	}
	return maxKeys{}
}

// maxKeys - MAX(column)+1 под SHARE ROW EXCLUSIVE блокировкой таблицы.
// Блокировка держится до конца транзакции, поэтому два параллельных
// процесса не получат одинаковый ключ.
type maxKeys struct{}

func (m maxKeys) Next(ctx context.Context, gw *database.Gateway, table, column string) (int, error) {
	lock := fmt.Sprintf("LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE", pgx.Identifier{table}.Sanitize())
	if _, err := gw.ExecuteUpdate(ctx, lock); err != nil {
		return 0, fmt.Errorf("lock %s: %w", table, err)
	}
	return m.Peek(ctx, gw, table, column)
}

func (maxKeys) Peek(ctx context.Context, gw *database.Gateway, table, column string) (int, error) {
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s",
		pgx.Identifier{column}.Sanitize(), pgx.Identifier{table}.Sanitize())

	result, err := gw.ExecuteQueryRows(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("next %s.%s: %w", table, column, err)
	}
	return scalarInt(result)
}

// sequenceKeys - штатная последовательность <table>_<column>_seq
type sequenceKeys struct{}

func sequenceName(table, column string) string {
	return table + "_" + column + "_seq"
}

func (sequenceKeys) Next(ctx context.Context, gw *database.Gateway, table, column string) (int, error) {
	seq := sequenceName(table, column)

	if _, err := gw.ExecuteQueryCount(ctx, "SELECT nextval($1::text::regclass)", seq); err != nil {
		return 0, fmt.Errorf("nextval %s: %w", seq, err)
	}

	id, err := gw.CurrentSequenceValue(ctx, seq)
	if err != nil {
		return 0, err
	}
	if id == database.NoSequenceValue {
		return 0, fmt.Errorf("sequence %s returned no value", seq)
	}
	return id, nil
}

func (sequenceKeys) Peek(ctx context.Context, gw *database.Gateway, table, column string) (int, error) {
	seq := sequenceName(table, column)
	query := fmt.Sprintf(
		"SELECT last_value + CASE WHEN is_called THEN 1 ELSE 0 END FROM %s",
		pgx.Identifier{seq}.Sanitize(),
	)

	result, err := gw.ExecuteQueryRows(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("peek %s: %w", seq, err)
	}
	return scalarInt(result)
}

// scalarInt читает единственное целое из результата вида SELECT <expr>
func scalarInt(result *domain.Table) (int, error) {
	if result.Len() == 0 || len(result.Rows[0]) == 0 {
		return 0, fmt.Errorf("expected a single value, got %d rows", result.Len())
	}
	return strconv.Atoi(result.Rows[0][0])
}
