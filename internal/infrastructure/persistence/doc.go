// Package persistence implements the repository contracts of the domain
// packages on top of GORM, supporting PostgreSQL in production and SQLite
// for tests.
package persistence
