package dataset

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/katalvlaran/costar/collab"
)

// PostgresSource loads groups from a two-column (group key, member) query.
//
// Rows must arrive grouped: consecutive rows with the same key form one group
// and members keep row order, so the query should ORDER BY key then position.
type PostgresSource struct {
	DatabaseURL string
	Query       string
}

// rowScanner is the subset of pgx.Rows the grouping loop needs.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// Load connects, runs Query and groups the rows.
func (s PostgresSource) Load(ctx context.Context) ([]collab.Group, error) {
	conn, err := pgx.Connect(ctx, s.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("dataset: connecting to database: %w", err)
	}
	defer conn.Close(context.WithoutCancel(ctx))

	rows, err := conn.Query(ctx, s.Query)
	if err != nil {
		return nil, fmt.Errorf("dataset: querying groups: %w", err)
	}
	defer rows.Close()

	return groupRows(rows)
}

// Describe returns the database host and name, never the credentials.
func (s PostgresSource) Describe() string {
	u, err := url.Parse(s.DatabaseURL)
	if err != nil {
		return "postgres"
	}

	return "postgres://" + u.Host + u.Path
}

// groupRows folds (key, member) rows into groups in arrival order.
func groupRows(rows rowScanner) ([]collab.Group, error) {
	var (
		groups []collab.Group
		seen   = make(map[string]int)
		rowNo  int
	)
	for rows.Next() {
		rowNo++
		var key, member string
		if err := rows.Scan(&key, &member); err != nil {
			return nil, fmt.Errorf("dataset: scanning row %d: %w", rowNo, err)
		}
		key, member = strings.TrimSpace(key), strings.TrimSpace(member)
		if key == "" || member == "" {
			return nil, fmt.Errorf("%w: row %d: empty group key or member", ErrMalformedRecord, rowNo)
		}

		if n := len(groups); n > 0 && groups[n-1].Key == key {
			groups[n-1].Members = append(groups[n-1].Members, member)
			continue
		}
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: row %d: %q first seen at row %d; order the query by group key", ErrDuplicateGroup, rowNo, key, first)
		}
		seen[key] = rowNo
		groups = append(groups, collab.Group{Key: key, Members: []string{member}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: iterating rows: %w", err)
	}

	return groups, nil
}
