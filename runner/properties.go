package runner

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lintelhq/lintel-cli/props"
)

var valueEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"\n", "\\n",
	"\r", "\\r",
)

// WriteProperties serializes a property map as key=value lines, sorted by key
// so output is deterministic. Values are escaped so they stay on one line.
func WriteProperties(w io.Writer, properties props.Properties) error {
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		_, err := fmt.Fprintf(w, "%s=%s\n", key, valueEscaper.Replace(properties[key]))
		if err != nil {
			return err
		}
	}
	return nil
}
