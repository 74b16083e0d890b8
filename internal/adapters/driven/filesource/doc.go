// Package filesource loads certificate files from disk and watches
// directories for new uploads.
//
// Load resolves a file's media kind from its extension, falling back to
// content sniffing, and rejects anything that is neither an image nor a PDF
// before the analysis core is reached. Watcher wraps fsnotify and reports
// created or rewritten files one at a time.
package filesource
