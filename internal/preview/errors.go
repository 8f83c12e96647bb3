package preview

import (
	"errors"
	"fmt"

	"github.com/frly/client-go/internal/types"
)

// ErrSuperseded is returned by Refresh when a newer batch was dispatched
// while this one was in flight. The caller already has (or will get) fresher
// data; the superseded result is discarded, never published.
var ErrSuperseded = errors.New("preview batch superseded by a newer refresh")

func errUnknownSectionType(t types.SectionType) error {
	return fmt.Errorf("no preview for section type %q", t)
}
