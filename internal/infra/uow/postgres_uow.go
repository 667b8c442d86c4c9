package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"mask-ledger/internal/infra"
	"mask-ledger/internal/infra/converter"
	"mask-ledger/internal/infra/repository"
	sqlc "mask-ledger/internal/infra/sqlc/generated"
	"mask-ledger/internal/pkg/errs"
	"mask-ledger/internal/pkg/pgconv"
	"mask-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted plus explicit row locks serialises purchases per user.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newPgTx(pgxTx, u.q))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return conflict(err)
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return conflict(errMaxRetriesExceeded)
}

// conflict tags an exhausted retry so callers can answer 409.
func conflict(err error) error {
	return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrConflict)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	userRepo        shared.UserRepository
	pharmacyRepo    shared.PharmacyRepository
	maskRepo        shared.MaskRepository
	openingHourRepo shared.OpeningHourRepository
	transactionRepo shared.TransactionRepository
	commandReads    shared.CommandReads
}

func newPgTx(dbtx sqlc.DBTX, q *sqlc.Queries) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q)
	}
	return t.userRepo
}

func (t *pgTx) Pharmacies() shared.PharmacyRepository {
	if t.pharmacyRepo == nil {
		t.pharmacyRepo = repository.NewPharmacyRepository(t.q)
	}
	return t.pharmacyRepo
}

func (t *pgTx) Masks() shared.MaskRepository {
	if t.maskRepo == nil {
		t.maskRepo = repository.NewMaskRepository(t.q)
	}
	return t.maskRepo
}

func (t *pgTx) OpeningHours() shared.OpeningHourRepository {
	if t.openingHourRepo == nil {
		t.openingHourRepo = repository.NewOpeningHourRepository(t.q)
	}
	return t.openingHourRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.q)
	}
	return t.transactionRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{q: t.q, dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX
}

func (r *commandReads) MaskByID(ctx context.Context, id int64) (*shared.MaskSnapshot, error) {
	row, err := r.q.GetMaskByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mask not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get mask by id", err)
	}
	return converter.MaskSnapshotFromRow(row)
}

func (r *commandReads) PharmacyByName(ctx context.Context, name string) (*shared.PharmacySnapshot, error) {
	row, err := r.q.GetPharmacyByName(ctx, r.dbtx, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pharmacy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pharmacy by name", err)
	}
	return converter.PharmacySnapshotFromRow(row)
}

func (r *commandReads) MaskByPharmacyAndName(ctx context.Context, pharmacyID int64, name string) (*shared.MaskSnapshot, error) {
	row, err := r.q.GetMaskByPharmacyAndName(ctx, r.dbtx, sqlc.GetMaskByPharmacyAndNameParams{
		PharmacyID: pharmacyID,
		Name:       name,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mask not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get mask by pharmacy and name", err)
	}
	return converter.MaskSnapshotFromRow(row)
}
