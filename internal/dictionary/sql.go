package dictionary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"

	// Drivers selectable through dictionary.driver.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultTable is the table LoadSQL reads when none is configured.
const DefaultTable = "dictionary_entries"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// LoadSQL reads all rows of table into a store. The definitions and
// examples columns hold JSON arrays of strings and may be NULL.
func LoadSQL(ctx context.Context, db *sql.DB, table string) (*Store, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid dictionary table name: %q", table)
	}

	query, args, err := sq.Select("word", "pronunciation", "chinese", "definitions", "examples").
		From(table).
		OrderBy("word").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build dictionary query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionary table: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                     Entry
			pron, chinese         sql.NullString
			definitions, examples sql.NullString
		)
		if err := rows.Scan(&e.Word, &pron, &chinese, &definitions, &examples); err != nil {
			return nil, fmt.Errorf("failed to scan dictionary row: %w", err)
		}
		e.Pronunciation = pron.String
		e.Chinese = chinese.String
		if e.Definitions, err = decodeList(definitions); err != nil {
			return nil, fmt.Errorf("word %q: definitions: %w", e.Word, err)
		}
		if e.Examples, err = decodeList(examples); err != nil {
			return nil, fmt.Errorf("word %q: examples: %w", e.Word, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary rows: %w", err)
	}

	return NewStore(entries)
}

// OpenSQL connects with driver and dsn, loads table and closes the
// connection again; the store keeps no reference to the database.
func OpenSQL(ctx context.Context, driver, dsn, table string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	return LoadSQL(ctx, db, table)
}

func decodeList(v sql.NullString) ([]string, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(v.String), &list); err != nil {
		return nil, err
	}
	return list, nil
}
