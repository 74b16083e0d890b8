// Package ner holds the entity recognizer adapters and the factory that
// builds one from settings.
//
// Adapters:
//   - rules: offline pattern recogniser (default)
//   - ollama: asks a local Ollama model to label spans
//   - command: runs an external program that answers with JSON spans
package ner
