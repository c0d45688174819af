// Package pg provides PostgreSQL connection management with migrations and
// health checking.
//
// It wraps the pgx driver with application-level retry logic, connection pool
// tuning, and integrated schema migration support using goose. Connection
// establishment uses exponential backoff to ride out transient network issues
// during startup.
//
// All configuration is handled through the Config struct with environment
// variable mapping; see Config for the knobs and their defaults.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal("postgres:", err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, logger); err != nil {
//		log.Fatal("migrations:", err)
//	}
//
// Healthcheck returns a probe function suitable for readiness endpoints. It
// performs a lightweight ping that verifies connectivity without touching any
// table.
package pg
