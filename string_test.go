package arrayvec_test

import (
	"errors"
	"io"
	"testing"
	"unicode/utf8"

	"github.com/djdv/go-arrayvec"
)

// Compile-time interface checks.
var _ interface {
	io.StringWriter
	WriteRune(rune) (int, error)
} = (*arrayvec.String)(nil)

func TestString(t *testing.T) {
	t.Run("write string", writeString)
	t.Run("write string overflow", writeStringOverflow)
	t.Run("write rune", writeRune)
	t.Run("write rune overflow", writeRuneOverflow)
	t.Run("pop", popRunes)
	t.Run("truncate", truncateString)
	t.Run("clear", clearString)
}

func writeString(t *testing.T) {
	t.Parallel()
	str := newString(t, 8)
	for _, part := range []string{"ab", "", "cdef"} {
		n, err := str.WriteString(part)
		if err != nil {
			t.Fatal(err)
		}
		if n != len(part) {
			t.Fatalf("WriteString reported %d bytes, want %d", n, len(part))
		}
	}
	checkString(t, str, "abcdef", "after writes")
	if got := str.Remaining(); got != 2 {
		t.Fatalf("unexpected remaining capacity: %d", got)
	}
}

func writeStringOverflow(t *testing.T) {
	t.Parallel()
	const rejected = "xyz"
	str, err := arrayvec.StringFrom(4, "ab")
	if err != nil {
		t.Fatal(err)
	}
	n, err := str.WriteString(rejected)
	if n != 0 {
		t.Fatalf("overflowing write reported %d bytes written", n)
	}
	var capErr arrayvec.CapacityError[string]
	if !errors.As(err, &capErr) || capErr.Element() != rejected {
		t.Fatalf("expected CapacityError carrying %q, got: %v", rejected, err)
	}
	checkString(t, str, "ab", "after rejected write")
	if _, err := arrayvec.StringFrom(1, "ab"); !errors.Is(err, arrayvec.ErrInsufficientCapacity) {
		t.Fatalf("StringFrom accepted text longer than its capacity: %v", err)
	}
}

func writeRune(t *testing.T) {
	t.Parallel()
	str := newString(t, 16)
	for _, r := range []rune{'a', 'é', '世', '🙂'} {
		n, err := str.WriteRune(r)
		if err != nil {
			t.Fatal(err)
		}
		if want := utf8.RuneLen(r); n != want {
			t.Fatalf("WriteRune(%q) reported %d bytes, want %d", r, n, want)
		}
	}
	checkString(t, str, "aé世🙂", "after rune writes")
	if _, err := str.WriteRune(-1); err != nil {
		t.Fatal(err)
	}
	checkString(t, str, "aé世🙂�", "after invalid rune")
}

func writeRuneOverflow(t *testing.T) {
	t.Parallel()
	str, err := arrayvec.StringFrom(3, "ab")
	if err != nil {
		t.Fatal(err)
	}
	const rejected = 'é'
	_, err = str.WriteRune(rejected)
	var capErr arrayvec.CapacityError[rune]
	if !errors.As(err, &capErr) || capErr.Element() != rejected {
		t.Fatalf("expected CapacityError carrying %q, got: %v", rejected, err)
	}
	checkString(t, str, "ab", "after rejected rune")
	if _, err := str.WriteRune('c'); err != nil {
		t.Fatal(err)
	}
	if !str.IsFull() {
		t.Fatal("expected string to be full")
	}
}

func popRunes(t *testing.T) {
	t.Parallel()
	str, err := arrayvec.StringFrom(8, "a世")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []rune{'世', 'a'} {
		got, ok := str.Pop()
		if !ok || got != want {
			t.Fatalf("Pop returned %q %t, want %q", got, ok, want)
		}
	}
	if got, ok := str.Pop(); ok {
		t.Fatalf("Pop on an empty string returned %q", got)
	}
	if !str.IsEmpty() {
		t.Fatal("expected string to be empty")
	}
	t.Run("invalid trailing byte", func(t *testing.T) {
		t.Parallel()
		str, err := arrayvec.StringFrom(4, "a\xff")
		if err != nil {
			t.Fatal(err)
		}
		got, ok := str.Pop()
		if !ok || got != utf8.RuneError {
			t.Fatalf("Pop returned %q %t, want %q", got, ok, utf8.RuneError)
		}
		checkString(t, str, "a", "after popping an invalid byte")
	})
}

func truncateString(t *testing.T) {
	t.Parallel()
	str, err := arrayvec.StringFrom(8, "aé")
	if err != nil {
		t.Fatal(err)
	}
	if err := str.Truncate(2); !errors.Is(err, arrayvec.ErrNotRuneBoundary) {
		t.Fatalf("expected rune boundary error, got: %v", err)
	}
	checkString(t, str, "aé", "after rejected truncate")
	if err := str.Truncate(10); err != nil {
		t.Fatal(err)
	}
	if err := str.Truncate(1); err != nil {
		t.Fatal(err)
	}
	checkString(t, str, "a", "after truncate")
}

func clearString(t *testing.T) {
	t.Parallel()
	str, err := arrayvec.StringFrom(2, "ab")
	if err != nil {
		t.Fatal(err)
	}
	str.Clear()
	checkString(t, str, "", "after clear")
	if _, err := str.WriteString("cd"); err != nil {
		t.Fatal(err)
	}
}

func newString(tb testing.TB, capacity int) *arrayvec.String {
	tb.Helper()
	str, err := arrayvec.NewString(capacity)
	if err != nil {
		tb.Fatal(err)
	}
	return str
}

func checkString(tb testing.TB, str *arrayvec.String, want, action string) {
	tb.Helper()
	got := str.String()
	if got == want && str.Len() == len(want) {
		return
	}
	tb.Fatalf(
		"unexpected string contents %s"+
			"\n\tgot: %q"+
			"\n\twant: %q",
		action, got, want)
}
