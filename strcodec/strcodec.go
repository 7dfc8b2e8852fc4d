// Package strcodec implements a length-prefixed codec for lists of strings.
//
// Each payload is emitted as its decimal byte length, the delimiter,
// then the payload itself. Payload boundaries come from the length prefix,
// so payloads are free to contain the delimiter character.
package strcodec

import "strings"

// Delimiter separates the length prefix from the payload.
// The delimiter itself is never scanned for inside payload content.
const Delimiter = '#'

const (
	// ErrMalformed is returned when a decoded input does not follow the length-prefixed format.
	ErrMalformed Error = "strcodec: malformed input"
)

// Error is an error interface implementation
// that allows declaring the package's errors with the `const` keyword.
type Error string

func (err Error) Error() string { return string(err) }

// Encode serialises a list of strings into a single string.
//
// Decode is its exact left inverse:
// Decode(Encode(strs)) yields strs for any list of strings,
// including empty strings and strings containing the Delimiter.
func Encode(strs []string) string {
	var out strings.Builder
	enc := NewListEncoder(&out)
	for _, s := range strs {
		_ = enc.Encode(s) // strings.Builder cannot fail
	}
	return out.String()
}

// Decode parses a string produced by Encode back into the original list of strings.
func Decode(s string) ([]string, error) {
	var out = make([]string, 0)
	dec := NewListDecoder(strings.NewReader(s))
	for dec.Next() {
		out = append(out, dec.Value())
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
