package analyze

import "errors"

// ErrNoAnalysisService is returned when analysis is requested without a service.
var ErrNoAnalysisService = errors.New("analysis service not available")
