package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/frontandrew/mechanicshop/internal/domain"
	"github.com/frontandrew/mechanicshop/internal/pkg/config"
	"github.com/frontandrew/mechanicshop/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func expectMaxKey(mock pgxmock.PgxPoolIface, table, column string, next int64) {
	mock.ExpectExec(regexp.QuoteMeta(`LOCK TABLE "` + table + `" IN SHARE ROW EXCLUSIVE MODE`)).
		WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX("` + column + `"), 0) + 1 FROM "` + table + `"`)).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(next))
}

func TestStore_WithinTransaction_Commit(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock, config.IDStrategyMax)

	mock.ExpectBegin()
	expectMaxKey(mock, "customer", "id", 8)
	mock.ExpectExec("INSERT INTO customer").
		WithArgs(8, "Anna", "Smirnova", "(555)123-4567", "Main st Riverside").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	customer := &domain.Customer{
		FirstName: "Anna",
		LastName:  "Smirnova",
		Phone:     "(555)123-4567",
		Address:   "Main st Riverside",
	}
	err := store.WithinTransaction(context.Background(), func(ctx context.Context, repos *repository.Repositories) error {
		return repos.Customers.Create(ctx, customer)
	})

	require.NoError(t, err)
	assert.Equal(t, 8, customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithinTransaction_Rollback(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock, config.IDStrategyMax)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO car").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	expectMaxKey(mock, "owns", "ownership_id", 3)
	mock.ExpectExec("INSERT INTO owns").
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err := store.WithinTransaction(context.Background(), func(ctx context.Context, repos *repository.Repositories) error {
		if err := repos.Cars.Create(ctx, &domain.Car{VIN: "ABCDEF1234567890", Make: "Ford", Model: "Focus", Year: 2001}); err != nil {
			return err
		}
		return repos.Ownerships.Create(ctx, &domain.Ownership{CustomerID: 1, VIN: "ABCDEF1234567890"})
	})

	assert.EqualError(t, err, "connection lost")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithinTransaction_BeginFails(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock, config.IDStrategyMax)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := store.WithinTransaction(context.Background(), func(ctx context.Context, repos *repository.Repositories) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestSequenceKeys(t *testing.T) {
	mock := newMock(t)
	store := NewStore(mock, config.IDStrategySequence)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT nextval($1::text::regclass)")).
		WithArgs("mechanic_id_seq").
		WillReturnRows(pgxmock.NewRows([]string{"nextval"}).AddRow(int64(12)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT currval($1::text::regclass)")).
		WithArgs("mechanic_id_seq").
		WillReturnRows(pgxmock.NewRows([]string{"currval"}).AddRow(int64(12)))
	mock.ExpectExec("INSERT INTO mechanic").
		WithArgs(12, "Oleg", "Ivanov", 7).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	mechanic := &domain.Mechanic{FirstName: "Oleg", LastName: "Ivanov", Experience: 7}
	err := store.WithinTransaction(context.Background(), func(ctx context.Context, repos *repository.Repositories) error {
		return repos.Mechanics.Create(ctx, mechanic)
	})

	require.NoError(t, err)
	assert.Equal(t, 12, mechanic.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextID_Preview(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		setup    func(mock pgxmock.PgxPoolIface)
		want     int
	}{
		{
			name:     "max: пустая таблица начинается с 1",
			strategy: config.IDStrategyMax,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX("rid"), 0) + 1 FROM "service_request"`)).
					WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(int64(1)))
			},
			want: 1,
		},
		{
			name:     "sequence: last_value + is_called",
			strategy: config.IDStrategySequence,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM "service_request_rid_seq"`)).
					WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(int64(31)))
			},
			want: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := NewStore(mock, tt.strategy).Repositories().ServiceRequests.NextID(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExistenceChecks(t *testing.T) {
	mock := newMock(t)
	repos := NewStore(mock, config.IDStrategyMax).Repositories()
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM customer WHERE id = $1")).WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(int32(1)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM car WHERE vin = $1")).WithArgs("NOSUCH1234567890").
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM closed_request WHERE wid = $1")).WithArgs(9).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(int32(1)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM mechanic WHERE id = $1")).WithArgs(2).
		WillReturnError(errors.New("syntax error"))

	ok, err := repos.Customers.Exists(ctx, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repos.Cars.ExistsByVIN(ctx, "NOSUCH1234567890")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repos.ClosedRequests.ExistsForRequest(ctx, 9)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repos.Mechanics.Exists(ctx, 2)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClosedRequest_WIDEqualsRID(t *testing.T) {
	mock := newMock(t)
	repos := NewStore(mock, config.IDStrategyMax).Repositories()

	date := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO closed_request").
		WithArgs(17, 17, 4, date, "replaced brakes", 250).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	closed := &domain.ClosedRequest{RID: 17, MechanicID: 4, Date: date, Comment: "replaced brakes", Bill: 250}
	require.NoError(t, repos.ClosedRequests.Create(context.Background(), closed))

	assert.Equal(t, 17, closed.WID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReports_PassThresholds(t *testing.T) {
	mock := newMock(t)
	reports := NewStore(mock, config.IDStrategyMax).Repositories().Reports
	ctx := context.Background()

	mock.ExpectQuery("FROM closed_request").WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"wid", "bill"}).AddRow(int32(1), int32(50)))
	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(customer_id) > $1")).WithArgs(20).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE car.year < $1 AND sr.odometer >= $2")).WithArgs(1995, 50000).
		WillReturnRows(pgxmock.NewRows([]string{"vin"}))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY count DESC LIMIT $1")).WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"make", "model", "count"}).
			AddRow("Ford", "Focus", int64(5)).
			AddRow("Audi", "A4", int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total DESC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "fname", "lname", "total"}))

	table, err := reports.ClosedRequestsWithBillBelow(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "50"}}, table.Rows)

	_, err = reports.CustomersWithMoreCarsThan(ctx, 20)
	require.NoError(t, err)

	_, err = reports.CarsBeforeYearWithOdometer(ctx, 1995, 50000)
	require.NoError(t, err)

	table, err = reports.TopCarsByServiceCount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Ford", "Focus", "5"}, {"Audi", "A4", "4"}}, table.Rows)

	_, err = reports.CustomersByTotalBill(ctx)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
