package phasor

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseField parses one raw text field as a float64. The error names the
// field so callers can report which input was bad. Substituting a default
// for unparseable input is deliberately not done here; that policy belongs
// to the session.
func ParseField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: cannot parse %q as a number", name, raw)
	}
	return v, nil
}
