package chord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/noteflow/note"
	"github.com/pkg/errors"
)

// CreateChordKey names a chord independent of voicing, "0:maj" for any
// C major.
func CreateChordKey(root int, quality string) string {
	return fmt.Sprintf("%d:%s", mod12(root), quality)
}

// ParseChordKey accepts "0:maj" or "C:maj" and returns the canonical key.
func ParseChordKey(key string) (string, error) {
	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.Errorf("chord key %q is not root:quality", key)
	}
	root, err := strconv.Atoi(parts[0])
	if err != nil {
		pc, ok := note.ParseClass(parts[0])
		if !ok {
			return "", errors.Errorf("chord key %q has an unknown root", key)
		}
		root = pc
	}
	return CreateChordKey(root, parts[1]), nil
}
