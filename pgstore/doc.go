// Package pgstore backs the validate store interfaces with PostgreSQL using
// the pgx/v5 driver. It keeps a very small API surface: a Config populated
// from environment variables, a Connect helper with retry logic, a
// Healthcheck closure for readiness endpoints, and a Store adapter that
// turns tables and equality filters into parameterized SQL built with
// squirrel.
//
// # Architecture
//
//   - Config  – declarative struct whose fields are populated from
//     environment variables via github.com/caarlos0/env
//   - Connect – opens a *pgxpool.Pool based on Config, retrying with
//     backoff until the database becomes available
//   - Store   – implements validate.Store; Table resolution validates
//     identifiers eagerly, row access happens lazily per query
//
// Table and field names are checked against a strict identifier pattern
// because identifiers cannot be parameterized in SQL; anything else is
// rejected with ErrInvalidIdentifier before a query is ever built.
//
// # Usage
//
//	var cfg pgstore.Config
//	if err := env.Parse(&cfg); err != nil {
//	    panic(err)
//	}
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	store := pgstore.New(pool, pgstore.WithTableFormat("users", "{{name}} <{{email}}>"))
//	exists := validate.NewRecordExists(store, "users", validate.WithLabelField("name"))
package pgstore
