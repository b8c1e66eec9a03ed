package arrayvec

import (
	"unicode/utf8"

	"github.com/djdv/go-arrayvec/internal/slots"
)

type (
	// String is a text buffer of up to [String.Cap] bytes,
	// stored in a block allocated once by [NewString].
	// Writes that would not fit are rejected with a [CapacityError]
	// rather than truncated.
	// Concurrent access must be guarded by the caller.
	String struct {
		storage slots.Block[byte]
		length  int
	}
)

// NewString creates an empty [String] which can hold up to capacity bytes.
func NewString(capacity int) (*String, error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &String{
		storage: slots.New[byte](capacity),
	}, nil
}

// StringFrom creates a [String] with the given capacity, holding text.
func StringFrom(capacity int, text string) (*String, error) {
	str, err := NewString(capacity)
	if err != nil {
		return nil, err
	}
	if _, err := str.WriteString(text); err != nil {
		return nil, err
	}
	return str, nil
}

// Len returns the number of bytes held.
func (s *String) Len() int { return s.length }

// Cap returns the fixed capacity in bytes.
func (s *String) Cap() int { return s.storage.Len() }

// Remaining returns how many more bytes fit.
func (s *String) Remaining() int { return s.Cap() - s.length }

// IsEmpty reports whether the string holds no bytes.
func (s *String) IsEmpty() bool { return s.length == 0 }

// IsFull reports whether the string is at capacity.
func (s *String) IsFull() bool { return s.length == s.Cap() }

// WriteString appends text.
// Either all of text fits and is appended, or nothing is written
// and a [CapacityError] carrying text is returned.
func (s *String) WriteString(text string) (int, error) {
	if len(text) > s.Remaining() {
		return 0, NewCapacityError(text)
	}
	n := copy(s.storage.View(s.length, s.length+len(text)), text)
	s.length += n
	if debugging {
		assert(s.length <= s.Cap(),
			"write exceeded capacity")
	}
	return n, nil
}

// WriteRune appends the UTF-8 encoding of r.
// Invalid runes are written as [utf8.RuneError].
// If the encoding does not fit, nothing is written
// and a [CapacityError] carrying r is returned.
func (s *String) WriteRune(r rune) (int, error) {
	encoded := r
	size := utf8.RuneLen(encoded)
	if size < 0 {
		encoded = utf8.RuneError
		size = utf8.RuneLen(encoded)
	}
	if size > s.Remaining() {
		return 0, NewCapacityError(r)
	}
	n := utf8.EncodeRune(s.storage.View(s.length, s.length+size), encoded)
	s.length += n
	return n, nil
}

// Pop removes and returns the last rune;
// if the string is empty it returns 0 and false.
// A trailing byte that is not valid UTF-8 is removed
// on its own and returned as [utf8.RuneError].
func (s *String) Pop() (rune, bool) {
	if s.length == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.bytes())
	s.storage.Zero(s.length-size, s.length)
	s.length -= size
	return r, true
}

// Truncate shortens the string to n bytes.
// n is clamped to [0, Len]. If n would split a rune,
// an error wrapping [ErrNotRuneBoundary] is returned
// and the string is left unmodified.
func (s *String) Truncate(n int) error {
	n = max(n, 0)
	if n >= s.length {
		return nil
	}
	if !utf8.RuneStart(s.storage.Load(n)) {
		return boundaryError(n)
	}
	s.storage.Zero(n, s.length)
	s.length = n
	return nil
}

// Clear removes all bytes.
func (s *String) Clear() {
	s.storage.Zero(0, s.length)
	s.length = 0
}

// String returns a copy of the text held.
func (s *String) String() string { return string(s.bytes()) }

func (s *String) bytes() []byte { return s.storage.View(0, s.length) }
