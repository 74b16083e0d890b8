// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The analysis pipeline runs leaf first: NormalizeText, the keyword
// matchers, the entity extractor, the scorer, domain.Classify and
// finally AssembleReport. Every stage except entity extraction is a
// pure function of its inputs.
//
// Services are pure Go with no CGO or external dependencies.
package services
