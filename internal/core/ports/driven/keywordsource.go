package driven

import "github.com/custodia-labs/certcheck/internal/core/domain"

// KeywordSource provides the reference keyword lists.
// Implementations may read a user-editable file or return the built-in lists.
type KeywordSource interface {
	// Load returns the active keyword lists.
	// Implementations validate the lists before returning them.
	Load() (domain.KeywordLists, error)
}
