// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem, under the certcheck
// config directory (see DefaultDir).
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable NER prompt templates
//   - KeywordStore: YAML reference keyword lists
package file
