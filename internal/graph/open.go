package graph

import (
	"context"
	"fmt"
)

// Options selects and configures a storage backend. Only the fields for the
// chosen backend are consulted.
type Options struct {
	Backend string

	// Path is the SQLite database file.
	Path string

	// URI, Username, and Password configure the Neo4j driver.
	URI      string
	Username string
	Password string

	// DSN and Graph configure the PostgreSQL/AGE backend.
	DSN   string
	Graph string
}

// Open constructs the store named by opts.Backend. The memory backend comes
// preloaded with the sample snapshot so the engine works without any server.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		store := NewMemoryStore()
		if err := store.LoadSnapshot(SampleSnapshot()); err != nil {
			return nil, fmt.Errorf("loading sample snapshot: %w", err)
		}
		return store, nil

	case BackendSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite backend requires a database path")
		}
		return OpenSQLite(opts.Path)

	case BackendNeo4j:
		if opts.URI == "" {
			return nil, fmt.Errorf("neo4j backend requires a URI")
		}
		return OpenNeo4j(ctx, opts.URI, opts.Username, opts.Password)

	case BackendPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres backend requires a DSN")
		}
		graph := opts.Graph
		if graph == "" {
			graph = "jobgraph"
		}
		return OpenPostgres(ctx, opts.DSN, graph)

	default:
		return nil, fmt.Errorf("unknown store backend %q (want %s, %s, %s, or %s)",
			opts.Backend, BackendMemory, BackendSQLite, BackendNeo4j, BackendPostgres)
	}
}
