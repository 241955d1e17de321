// Package history persists batch run summaries in a local SQLite
// database so past runs can be listed and compared.
package history
