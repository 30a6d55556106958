package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
)

// ProgressFunc is called after each row written by SaveDataset.
type ProgressFunc func(done, total int)

// DatasetSize is the number of rows SaveDataset writes for ds.
func DatasetSize(ds model.Dataset) int {
	return 1 + len(ds.Transactions) + len(ds.Savings) + len(ds.Investments)
}

// SaveDataset replaces the stored dataset with ds in a single transaction.
func (s *SQLiteStorage) SaveDataset(ctx context.Context, ds model.Dataset, progress ProgressFunc) (err error) {
	if err = validateContext(ctx); err != nil {
		return err
	}
	if err = validateDataset(&ds); err != nil {
		return err
	}
	if progress == nil {
		progress = func(int, int) {}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"profiles", "transactions", "savings_goals", "investments"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	total := DatasetSize(ds)
	done := 0
	step := func() {
		done++
		progress(done, total)
	}

	p := ds.Profile
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO profiles (id, name, email, total_savings, total_investments, savings_rate, investment_return)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Email, p.TotalSavings, p.TotalInvestments, p.SavingsRate, p.InvestmentReturn,
	); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	step()

	if err = insertRows(ctx, tx, `
		INSERT INTO transactions (id, date, description, category, type, amount, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ds.Transactions, step,
		func(i int, t model.Transaction) []any {
			return []any{t.ID, t.Date.UTC(), t.Description, t.Category, string(t.Type), t.Amount, i}
		},
	); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	if err = insertRows(ctx, tx, `
		INSERT INTO savings_goals (id, name, target_amount, current_amount, deadline, position)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ds.Savings, step,
		func(i int, g model.SavingsGoal) []any {
			return []any{g.ID, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline.UTC(), i}
		},
	); err != nil {
		return fmt.Errorf("failed to save savings goals: %w", err)
	}

	if err = insertRows(ctx, tx, `
		INSERT INTO investments (id, name, type, initial_value, current_value, roi, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ds.Investments, step,
		func(i int, inv model.Investment) []any {
			return []any{inv.ID, inv.Name, string(inv.Type), inv.InitialValue, inv.CurrentValue, inv.ROI, i}
		},
	); err != nil {
		return fmt.Errorf("failed to save investments: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

func insertRows[T any](ctx context.Context, tx *sql.Tx, query string, rows []T, step func(), args func(int, T) []any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, args(i, row)...); err != nil {
			return err
		}
		step()
	}
	return nil
}

// LoadProfile returns the stored user profile.
func (s *SQLiteStorage) LoadProfile(ctx context.Context) (model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return model.UserProfile{}, err
	}

	var p model.UserProfile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, total_savings, total_investments, savings_rate, investment_return
		FROM profiles ORDER BY id LIMIT 1`,
	).Scan(&p.ID, &p.Name, &p.Email, &p.TotalSavings, &p.TotalInvestments, &p.SavingsRate, &p.InvestmentReturn)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProfile{}, fmt.Errorf("%w: user profile", common.ErrNotFound)
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// LoadTransactions returns every stored transaction in insertion order.
func (s *SQLiteStorage) LoadTransactions(ctx context.Context) ([]model.Transaction, error) {
	return queryRows(ctx, s.db, `
		SELECT id, date, description, category, type, amount
		FROM transactions ORDER BY position, id`,
		func(rows *sql.Rows) (model.Transaction, error) {
			var (
				t     model.Transaction
				date  time.Time
				ttype string
			)
			if err := rows.Scan(&t.ID, &date, &t.Description, &t.Category, &ttype, &t.Amount); err != nil {
				return t, err
			}
			parsed, err := model.ParseTransactionType(ttype)
			if err != nil {
				return t, err
			}
			t.Date = date.UTC()
			t.Type = parsed
			return t, nil
		})
}

// LoadSavings returns every stored savings goal in insertion order.
func (s *SQLiteStorage) LoadSavings(ctx context.Context) ([]model.SavingsGoal, error) {
	return queryRows(ctx, s.db, `
		SELECT id, name, target_amount, current_amount, deadline
		FROM savings_goals ORDER BY position, id`,
		func(rows *sql.Rows) (model.SavingsGoal, error) {
			var (
				g        model.SavingsGoal
				deadline time.Time
			)
			if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &deadline); err != nil {
				return g, err
			}
			g.Deadline = deadline.UTC()
			return g, nil
		})
}

// LoadInvestments returns every stored investment in insertion order.
func (s *SQLiteStorage) LoadInvestments(ctx context.Context) ([]model.Investment, error) {
	return queryRows(ctx, s.db, `
		SELECT id, name, type, initial_value, current_value, roi
		FROM investments ORDER BY position, id`,
		func(rows *sql.Rows) (model.Investment, error) {
			var (
				inv   model.Investment
				itype string
			)
			if err := rows.Scan(&inv.ID, &inv.Name, &itype, &inv.InitialValue, &inv.CurrentValue, &inv.ROI); err != nil {
				return inv, err
			}
			inv.Type = model.ParseAssetType(itype)
			return inv, nil
		})
}

func queryRows[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return out, nil
}

// LoadDataset reads every category at once.
func (s *SQLiteStorage) LoadDataset(ctx context.Context) (model.Dataset, error) {
	var (
		ds  model.Dataset
		err error
	)
	if ds.Profile, err = s.LoadProfile(ctx); err != nil {
		return model.Dataset{}, err
	}
	if ds.Transactions, err = s.LoadTransactions(ctx); err != nil {
		return model.Dataset{}, err
	}
	if ds.Savings, err = s.LoadSavings(ctx); err != nil {
		return model.Dataset{}, err
	}
	if ds.Investments, err = s.LoadInvestments(ctx); err != nil {
		return model.Dataset{}, err
	}
	return ds, nil
}
