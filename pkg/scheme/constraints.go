package scheme

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	dottedTripleRe = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+$`)
	digitsRe       = regexp.MustCompile(`^[0-9]+$`)
)

// String accepts any string value.
func String() func(any) error {
	return func(value any) error {
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected a string, got %T", value)
		}
		return nil
	}
}

// Sequence accepts any sequence value.
func Sequence() func(any) error {
	return func(value any) error {
		if _, ok := value.([]any); !ok {
			return fmt.Errorf("expected a sequence, got %T", value)
		}
		return nil
	}
}

// Match accepts scalar values whose string form matches re.
// Numeric scalars are converted the way source files commonly carry them
// (an unquoted build number decodes as an integer).
func Match(re *regexp.Regexp) func(any) error {
	return func(value any) error {
		s, ok := scalarString(value)
		if !ok {
			return fmt.Errorf("expected a scalar, got %T", value)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("%q does not match %q", s, re.String())
		}
		return nil
	}
}

// DottedTriple accepts version strings of three dot-separated non-negative
// integers, e.g. "2.0.1".
func DottedTriple() func(any) error {
	return Match(dottedTripleRe)
}

// Digits accepts non-empty strings of decimal digits, e.g. build numbers.
func Digits() func(any) error {
	return Match(digitsRe)
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
