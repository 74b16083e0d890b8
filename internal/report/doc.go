// Package report renders document analyses for people and machines.
//
// Supported formats are plain text for terminals, JSON, Markdown and HTML.
// HTML is produced by rendering the Markdown form with goldmark.
package report
