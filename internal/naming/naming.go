// Package naming derives the identifiers used in generated code from a raw
// module name.
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	oerrors "github.com/ci4mod/cli/internal/errors"
)

// strictNameRegex matches names that are valid PHP class and namespace
// segments and safe as a single path component.
var strictNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ModuleName is the normalized form of a user-supplied module name.
// The zero value is not valid; construct it with Normalize or NormalizeStrict.
type ModuleName struct {
	raw    string
	pascal string
	lower  string
}

// Raw returns the name exactly as supplied.
func (n ModuleName) Raw() string { return n.raw }

// Pascal returns the name with its first character upper-cased. It is used
// for namespaces, class names and directory names.
func (n ModuleName) Pascal() string { return n.pascal }

// Lower returns the fully lower-cased name. It is used as the route prefix
// and as the database table name.
func (n ModuleName) Lower() string { return n.lower }

// String implements fmt.Stringer.
func (n ModuleName) String() string { return n.pascal }

// InvalidNameError reports a module name that cannot be normalized.
type InvalidNameError struct {
	// Name is the rejected input.
	Name string

	// Reason explains the rejection.
	Reason string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: %s", e.Name, e.Reason)
}

// Unwrap lets errors.Is match the validation sentinel.
func (e *InvalidNameError) Unwrap() error {
	return oerrors.ErrValidation
}

// Normalize derives a ModuleName from raw input.
//
// Only blank input is rejected. The input is otherwise taken verbatim:
// separators, spaces and reserved words pass through unchanged.
func Normalize(raw string) (ModuleName, error) {
	if strings.TrimSpace(raw) == "" {
		return ModuleName{}, &InvalidNameError{Name: raw, Reason: "name cannot be empty"}
	}

	return ModuleName{
		raw:    raw,
		pascal: upperFirst(raw),
		lower:  strings.ToLower(raw),
	}, nil
}

// NormalizeStrict is Normalize plus a character check: the name must start
// with a letter or underscore and contain only ASCII letters, digits and
// underscores.
func NormalizeStrict(raw string) (ModuleName, error) {
	name, err := Normalize(raw)
	if err != nil {
		return ModuleName{}, err
	}

	if !strictNameRegex.MatchString(raw) {
		for _, r := range raw {
			if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
				return ModuleName{}, &InvalidNameError{
					Name:   raw,
					Reason: fmt.Sprintf("contains invalid character %q", r),
				}
			}
		}
		return ModuleName{}, &InvalidNameError{Name: raw, Reason: "must start with a letter or underscore"}
	}

	return name, nil
}

// upperFirst upper-cases the first rune of s and leaves the rest untouched.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
