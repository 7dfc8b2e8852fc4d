package strcodec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NewListEncoder returns a ListEncoder that streams length-prefixed strings into w.
func NewListEncoder(w io.Writer) *ListEncoder {
	return &ListEncoder{w: w}
}

// ListEncoder writes strings one by one into the underlying writer.
// Each Encode call emits one complete frame, nothing is buffered.
type ListEncoder struct {
	w io.Writer
}

// Encode will encode a string in the underlying io writer.
func (e *ListEncoder) Encode(s string) error {
	frame := strconv.Itoa(len(s)) + string(Delimiter) + s
	_, err := io.WriteString(e.w, frame)
	return err
}

// Close represents the finishing of the list encoding process.
func (e *ListEncoder) Close() error {
	if closer, ok := e.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// NewListDecoder returns a ListDecoder that reads length-prefixed strings from r.
func NewListDecoder(r io.Reader) *ListDecoder {
	return &ListDecoder{src: r, r: bufio.NewReader(r)}
}

// ListDecoder reads back the frames of an encoded string list.
//
// Usage follows the iterator protocol:
//
//	for dec.Next() {
//		v := dec.Value()
//	}
//	if err := dec.Err(); err != nil { ... }
type ListDecoder struct {
	src io.Reader
	r   *bufio.Reader

	value string
	err   error
}

// Next will ensure that Value returns the next item when executed.
// If the next value is not retrievable, Next returns false
// and ensures Err() will return the error cause.
func (d *ListDecoder) Next() bool {
	if d.err != nil {
		return false
	}
	prefix, err := d.r.ReadString(Delimiter)
	if err == io.EOF {
		if prefix != "" {
			d.err = fmt.Errorf("%w: length prefix without delimiter", ErrMalformed)
		}
		return false
	}
	if err != nil {
		d.err = err
		return false
	}
	length, err := strconv.Atoi(strings.TrimSuffix(prefix, string(Delimiter)))
	if err != nil || length < 0 {
		d.err = fmt.Errorf("%w: invalid length prefix %q", ErrMalformed, prefix)
		return false
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(d.r, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			d.err = fmt.Errorf("%w: payload shorter than its length prefix", ErrMalformed)
		} else {
			d.err = err
		}
		return false
	}
	d.value = string(payload)
	return true
}

// Value returns the current value in the decoder.
// The action is repeatable without side effects.
func (d *ListDecoder) Value() string { return d.value }

// Err return the error cause.
func (d *ListDecoder) Err() error { return d.err }

// Close is required to make it able to cancel decoding where resources
// are being used behind the scene, for all other cases it simply returns nil.
func (d *ListDecoder) Close() error {
	if closer, ok := d.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
