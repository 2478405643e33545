package classifier

import "fmt"

// Error represents an error response from the classifier service.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("classifier error: %d", e.StatusCode)
}
