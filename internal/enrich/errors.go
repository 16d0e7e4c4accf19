package enrich

import (
	"fmt"
)

// errUnexpectedStatus marks a non-200 upstream response.
type errUnexpectedStatus int

func (e errUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status code %d", int(e))
}
