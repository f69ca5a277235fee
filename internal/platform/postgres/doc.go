// Package postgres implements the store interfaces on top of PostgreSQL,
// accessed through database/sql with the pgx driver. Driver errors are
// translated into the store package's sentinel errors at this boundary so
// nothing pgx-specific leaks upward.
package postgres
