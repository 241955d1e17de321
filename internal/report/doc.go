// Package report renders batch summaries in multiple output formats:
// human-readable text for the terminal, JSON for tool integration, and
// Markdown for documentation.
package report
