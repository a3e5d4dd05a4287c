package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// NoSequenceValue возвращается CurrentSequenceValue, если последовательность
// еще не использовалась в текущей сессии
const NoSequenceValue = -1

// SQLSTATE 55000: currval вызван до nextval в этой сессии
const codeObjectNotInPrerequisiteState = "55000"

// Querier - общее подмножество *pgxpool.Pool и pgx.Tx
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Gateway - единственная точка обращения к реляционному хранилищу.
// Не открывает транзакций сам: их границы задает вызывающий,
// передавая pgx.Tx вместо пула.
type Gateway struct {
	q Querier
}

// NewGateway создает gateway поверх пула или транзакции
func NewGateway(q Querier) *Gateway {
	return &Gateway{q: q}
}

// ExecuteUpdate выполняет INSERT/UPDATE/DELETE/DDL и возвращает число затронутых строк
func (g *Gateway) ExecuteUpdate(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := g.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ExecuteQueryCount выполняет запрос и возвращает только количество строк
func (g *Gateway) ExecuteQueryCount(ctx context.Context, sql string, args ...any) (int, error) {
	rows, err := g.q.Query(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	return count, nil
}

// ExecuteQueryRows выполняет запрос и возвращает все строки, приведенные к тексту,
// в порядке выдачи БД
func (g *Gateway) ExecuteQueryRows(ctx context.Context, sql string, args ...any) (*domain.Table, error) {
	rows, err := g.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := &domain.Table{}
	for _, fd := range rows.FieldDescriptions() {
		table.Columns = append(table.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		record := make([]string, len(values))
		for i, v := range values {
			record[i] = FormatValue(v)
		}
		table.Rows = append(table.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// CurrentSequenceValue возвращает последнее значение последовательности,
// выданное в этой сессии, или NoSequenceValue
func (g *Gateway) CurrentSequenceValue(ctx context.Context, name string) (int, error) {
	var value int64
	err := g.q.QueryRow(ctx, "SELECT currval($1::text::regclass)", name).Scan(&value)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, pgx.ErrNoRows) ||
			(errors.As(err, &pgErr) && pgErr.Code == codeObjectNotInPrerequisiteState) {
			return NoSequenceValue, nil
		}
		return 0, fmt.Errorf("currval %s: %w", name, err)
	}

	return int(value), nil
}

// FormatValue приводит значение колонки к тексту так, как его показывает psql
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		if val {
			return "t"
		}
		return "f"
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(domain.DateLayout)
		}
		return val.Format(time.RFC3339)
	case driver.Valuer:
		// pgtype.Numeric и прочие pgtype-обертки
		dv, err := val.Value()
		if err != nil {
			return fmt.Sprint(v)
		}
		return FormatValue(dv)
	default:
		return fmt.Sprint(val)
	}
}
