// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TextExtractor: Reads text out of an image or PDF
//   - ExtractorRegistry: Selects the extractor for a media kind
//   - ConfigStore: Application configuration
//   - KeywordSource: Reference keyword lists
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EntityRecognizer: Named-entity recognition. Without it, entity bundles are empty.
//   - PromptStore: Custom NER prompts. Without it, built-in prompts are used.
//   - CommandRunner: Subprocess execution. Defaults to os/exec.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
