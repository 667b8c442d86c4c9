//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateUser(t *testing.T, db DBLike, name, cashBalance string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (name, cash_balance) VALUES ($1, $2::numeric) RETURNING id",
		name, cashBalance).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreatePharmacy(t *testing.T, db DBLike, name, cashBalance string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO pharmacies (name, cash_balance) VALUES ($1, $2::numeric) RETURNING id",
		name, cashBalance).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateMask(t *testing.T, db DBLike, pharmacyID int64, name, price string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO masks (pharmacy_id, name, price) VALUES ($1, $2, $3::numeric) RETURNING id",
		pharmacyID, name, price).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateOpeningHour takes times as "HH:MM".
func CreateOpeningHour(t *testing.T, db DBLike, pharmacyID int64, day, open, close string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO opening_hours (pharmacy_id, day_of_week, open_time, close_time) VALUES ($1, $2, $3::time, $4::time)",
		pharmacyID, day, open, close)
	require.NoError(t, err)
}

func CreateTransaction(t *testing.T, db DBLike, userID, pharmacyID, maskID int64, amount string, date time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO transactions (user_id, pharmacy_id, mask_id, transaction_amount, transaction_date)
		 VALUES ($1, $2, $3, $4::numeric, $5) RETURNING id`,
		userID, pharmacyID, maskID, amount, date).Scan(&id)
	require.NoError(t, err)
	return id
}

// BalanceOf reads cash_balance of a users or pharmacies row as text.
func BalanceOf(t *testing.T, db DBLike, table string, id int64) string {
	t.Helper()

	var balance string
	err := db.QueryRow(context.Background(),
		"SELECT cash_balance::text FROM "+table+" WHERE id = $1", id).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// Ledger holds the ids created by SeedLedger.
type Ledger struct {
	Alice, Bob                         int64
	DFW, Carepoint                     int64
	TrueBarrier, MaskT, SecondSmile    int64
	AliceFirstTx, AliceSecondTx, BobTx int64
}

// SeedLedger inserts two users, two pharmacies with masks and opening hours,
// and three January 2021 transactions.
//
//	DFW Wellness: Mon, Wed 08:00-12:00
//	Carepoint:    Mon 10:00-18:00, Sat 20:00-02:00
func SeedLedger(t *testing.T, db DBLike) Ledger {
	t.Helper()

	var l Ledger
	l.Alice = CreateUser(t, db, "Alice", "100.00")
	l.Bob = CreateUser(t, db, "Bob", "50.00")

	l.DFW = CreatePharmacy(t, db, "DFW Wellness", "300.00")
	l.Carepoint = CreatePharmacy(t, db, "Carepoint", "500.00")

	l.TrueBarrier = CreateMask(t, db, l.DFW, "True Barrier (green) (3 per pack)", "13.70")
	l.MaskT = CreateMask(t, db, l.DFW, "MaskT (green) (10 per pack)", "41.86")
	l.SecondSmile = CreateMask(t, db, l.Carepoint, "Second Smile (black) (3 per pack)", "6.96")

	CreateOpeningHour(t, db, l.DFW, "Mon", "08:00", "12:00")
	CreateOpeningHour(t, db, l.DFW, "Wed", "08:00", "12:00")
	CreateOpeningHour(t, db, l.Carepoint, "Mon", "10:00", "18:00")
	CreateOpeningHour(t, db, l.Carepoint, "Sat", "20:00", "02:00")

	l.AliceFirstTx = CreateTransaction(t, db, l.Alice, l.DFW, l.TrueBarrier, "13.70",
		time.Date(2021, 1, 4, 15, 18, 51, 0, time.UTC))
	l.AliceSecondTx = CreateTransaction(t, db, l.Alice, l.Carepoint, l.SecondSmile, "20.88",
		time.Date(2021, 1, 31, 23, 59, 59, 0, time.UTC))
	l.BobTx = CreateTransaction(t, db, l.Bob, l.DFW, l.MaskT, "41.86",
		time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC))

	return l
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identity sequences
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
