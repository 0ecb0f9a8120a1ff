// Package terminal reports what the output stream can render: whether it
// is a TTY, whether ANSI colour should be used, and which character
// encoding it declares.
package terminal

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - The writer is not a TTY
//   - The NO_COLOR environment variable is set
//   - The TERM environment variable is set to "dumb"
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	// Respect NO_COLOR standard (https://no-color.org)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTTY
}

// Encoder is implemented by writers that declare their character encoding.
type Encoder interface {
	Encoding() string
}

// Encoding returns the character encoding name declared for w, or "" when
// the stream declares none.
//
// Writers implementing [Encoder] report their own encoding. Files inherit
// the charset of the process locale. Any other writer has no encoding.
func Encoding(w io.Writer) string {
	if e, ok := w.(Encoder); ok {
		return e.Encoding()
	}
	if _, ok := w.(*os.File); ok {
		return LocaleCharset()
	}
	return ""
}

// LocaleCharset returns the charset of the current locale, following the
// POSIX precedence LC_ALL, LC_CTYPE, LANG. The "C" and "POSIX" locales
// name no codeset and report "", the same as an unset locale.
func LocaleCharset() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return charsetOf(v)
		}
	}
	return ""
}

// charsetOf extracts the codeset from a locale name such as
// "en_US.UTF-8@euro".
func charsetOf(locale string) string {
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	_, codeset, found := strings.Cut(locale, ".")
	if !found {
		return ""
	}
	return codeset
}
