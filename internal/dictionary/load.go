package dictionary

import (
	"context"
	"fmt"
)

// Options selects where the dictionary is loaded from.
type Options struct {
	Source string // builtin, file or sql
	Path   string // file source
	Driver string // sql source: sqlite3, mysql or pgx
	DSN    string
	Table  string
}

// Load builds the store described by opts.
func Load(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Source {
	case "", "builtin":
		return Builtin(), nil
	case "file":
		if opts.Path == "" {
			return nil, fmt.Errorf("dictionary file path is required")
		}
		return LoadFile(opts.Path)
	case "sql":
		if opts.Driver == "" || opts.DSN == "" {
			return nil, fmt.Errorf("dictionary driver and dsn are required")
		}
		return OpenSQL(ctx, opts.Driver, opts.DSN, opts.Table)
	default:
		return nil, fmt.Errorf("unknown dictionary source: %s", opts.Source)
	}
}
