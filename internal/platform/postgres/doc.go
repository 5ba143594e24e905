// Package postgres provides PostgreSQL implementations of the store
// interfaces. All access goes through parameterized statements; no SQL is
// ever built from user input.
package postgres
