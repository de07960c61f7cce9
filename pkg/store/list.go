package store

import "fmt"

// TransactionRow is a persisted transaction as rendered by the export
// surface. It satisfies the csv package's Record interface.
type TransactionRow struct {
	PostedAt    string
	Description string
	Category    string
	Value       float64
}

func (r TransactionRow) Date() string    { return r.PostedAt }
func (r TransactionRow) Payee() string   { return r.Description }
func (r TransactionRow) Memo() string    { return r.Category }
func (r TransactionRow) Amount() float64 { return r.Value }

// ListTransactions returns all persisted transactions ordered by posting
// date, optionally restricted to one account (accountID > 0).
func (s *Store) ListTransactions(accountID int64) ([]TransactionRow, error) {
	query := `SELECT t.posted_at, t.description, IFNULL(c.name, ''), CAST(t.amount AS REAL)
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id`
	args := []any{}
	if accountID > 0 {
		query += " WHERE t.account_id = ?"
		args = append(args, accountID)
	}
	query += " ORDER BY t.posted_at, t.id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var out []TransactionRow
	for rows.Next() {
		var r TransactionRow
		if err := rows.Scan(&r.PostedAt, &r.Description, &r.Category, &r.Value); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
