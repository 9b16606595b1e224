package domain

import (
	"errors"
	"fmt"
)

// ErrNoFeatures - обратное геокодирование вернуло пустой список
var ErrNoFeatures = errors.New("no features returned for coordinates")

// UpstreamStatusError - геокодер ответил статусом не из 2xx
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
