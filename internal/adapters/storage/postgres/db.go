package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"zoo-management/internal/platform/logger"
	"zoo-management/internal/schema"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema ejecuta el DDL de los descriptores recibidos. Idempotente
// (IF NOT EXISTS), no versiona ni migra: el catálogo se arma al arranque
// con schema.Tables y se pasa por acá.
func EnsureSchema(ctx context.Context, db *sql.DB, tables []schema.Table, log logger.Logger) error {
	if log == nil {
		log = logger.NewFromEnv()
	}

	for _, t := range tables {
		if _, err := db.ExecContext(ctx, schema.CreateSQL(t)); err != nil {
			return mapError(err)
		}
		for _, stmt := range schema.IndexSQL(t) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return mapError(err)
			}
		}
		log.Info("table ensured", map[string]any{"table": t.Name, "indexes": len(t.Indexes)})
	}
	return nil
}
