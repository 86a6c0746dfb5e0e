// Package storage persists accounts, transactions and goals in SQLite.
// Amounts are stored as decimal strings next to their currency metadata so a
// read reconstructs the exact Money value that was written.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mindledger/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveAccount inserts the account or updates an existing row with the same
// id (used when archiving).
func (r *SQLiteRepository) SaveAccount(ctx context.Context, a core.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, name, currency_code, fraction_digits, type, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, status = excluded.status`,
		a.ID.String(), a.Name, a.Currency.Code, a.Currency.FractionDigits,
		string(a.Type), string(a.Status), a.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

// FindAccount implements ledger.AccountReader.
func (r *SQLiteRepository) FindAccount(ctx context.Context, id uuid.UUID) (core.Account, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, currency_code, fraction_digits, type, status, created_at
		FROM accounts WHERE id = ?`, id.String())

	a, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return core.Account{}, false, nil
	}
	if err != nil {
		return core.Account{}, false, fmt.Errorf("find account: %w", err)
	}
	return a, true, nil
}

// ListAccounts implements ledger.AccountReader.
func (r *SQLiteRepository) ListAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, currency_code, fraction_digits, type, status, created_at
		FROM accounts ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// SaveTransaction appends a transaction row.
func (r *SQLiteRepository) SaveTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	cur := t.Amount.Currency()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, account_id, occurred_on, direction, amount, currency_code, fraction_digits, memo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.AccountID.String(), t.OccurredOn.String(), string(t.Direction),
		t.Amount.Amount(), cur.Code, cur.FractionDigits, t.Memo,
		t.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

// ListTransactions implements ledger.TransactionReader. Rows come back in
// insertion order.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, occurred_on, direction, amount, currency_code, fraction_digits, memo, created_at
		FROM transactions WHERE account_id = ? ORDER BY created_at, id`, accountID.String())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			t                  core.Transaction
			id, accID          string
			occurredOn, amount string
			code               string
			fractionDigits     int
			createdAt          string
		)
		if err := rows.Scan(&id, &accID, &occurredOn, &t.Direction, &amount, &code, &fractionDigits, &t.Memo, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if t.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse transaction id: %w", err)
		}
		if t.AccountID, err = uuid.Parse(accID); err != nil {
			return nil, fmt.Errorf("parse account id: %w", err)
		}
		if t.OccurredOn, err = core.ParseDate(occurredOn); err != nil {
			return nil, fmt.Errorf("parse occurred-on date: %w", err)
		}
		if t.Amount, err = core.ParseMoney(amount, core.Currency{Code: code, FractionDigits: fractionDigits}); err != nil {
			return nil, fmt.Errorf("parse transaction amount: %w", err)
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created-at: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// SaveGoal appends a life-goal row.
func (r *SQLiteRepository) SaveGoal(ctx context.Context, g core.LifeGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	cur := g.Target.Currency()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (id, title, target_amount, currency_code, fraction_digits, target_date, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID.String(), g.Title, g.Target.Amount(), cur.Code, cur.FractionDigits,
		g.TargetDate.String(), string(g.Status), g.Notes,
		g.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

// ListGoals returns all goals in insertion order.
func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]core.LifeGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, target_amount, currency_code, fraction_digits, target_date, status, notes, created_at
		FROM goals ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []core.LifeGoal
	for rows.Next() {
		var (
			g                  core.LifeGoal
			id, target         string
			code               string
			fractionDigits     int
			targetDate, stamps string
		)
		if err := rows.Scan(&id, &g.Title, &target, &code, &fractionDigits, &targetDate, &g.Status, &g.Notes, &stamps); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		if g.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse goal id: %w", err)
		}
		if g.Target, err = core.ParseMoney(target, core.Currency{Code: code, FractionDigits: fractionDigits}); err != nil {
			return nil, fmt.Errorf("parse goal target: %w", err)
		}
		if g.TargetDate, err = core.ParseDate(targetDate); err != nil {
			return nil, fmt.Errorf("parse goal target date: %w", err)
		}
		if g.CreatedAt, err = time.Parse(time.RFC3339Nano, stamps); err != nil {
			return nil, fmt.Errorf("parse created-at: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (core.Account, error) {
	var (
		a              core.Account
		id, code       string
		fractionDigits int
		createdAt      string
	)
	if err := row.Scan(&id, &a.Name, &code, &fractionDigits, &a.Type, &a.Status, &createdAt); err != nil {
		return core.Account{}, err
	}
	var err error
	if a.ID, err = uuid.Parse(id); err != nil {
		return core.Account{}, fmt.Errorf("parse account id: %w", err)
	}
	a.Currency = core.Currency{Code: code, FractionDigits: fractionDigits}
	if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return core.Account{}, fmt.Errorf("parse created-at: %w", err)
	}
	return a, nil
}
