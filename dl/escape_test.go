package dl

import (
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestURIUnescape(t *testing.T) {
	w := expect.WrapT(t)

	got, ok := uriUnescape("%20AB", true)
	w.As("percent-decode query").ShouldBeEqual(ok, true)
	w.As("percent-decode query value").ShouldBeEqual(got, " AB")

	got, ok = uriUnescape("+", false)
	w.As("literal plus in path mode ok").ShouldBeEqual(ok, true)
	w.As("literal plus in path mode value").ShouldBeEqual(got, "+")

	got, ok = uriUnescape("+", true)
	w.As("plus means space in query mode").ShouldBeEqual(got, " ")

	_, ok = uriUnescape("A%00B", false)
	w.As("illegal NUL rejected").ShouldBeEqual(ok, false)
}

func TestURIUnescapeOffEndAndNonHex(t *testing.T) {
	w := expect.WrapT(t)

	got, _ := uriUnescape("ABC%2", false)
	w.As("off end left literal").ShouldBeEqual(got, "ABC%2")

	got, _ = uriUnescape("A%4gB", false)
	w.As("non hex digit left literal").ShouldBeEqual(got, "A%4gB")
}

func TestURIEscape(t *testing.T) {
	w := expect.WrapT(t)

	w.As("path escapes plus").ShouldBeEqual(uriEscape("ABC+123", false), "ABC%2B123")
	w.As("query escapes plus").ShouldBeEqual(uriEscape("XYZ+QWERTY", true), "XYZ%2BQWERTY")
	w.As("query escapes space as plus").ShouldBeEqual(uriEscape("A B", true), "A+B")
	w.As("path escapes space as percent").ShouldBeEqual(uriEscape("A B", false), "A%20B")
}

func TestPadGTIN(t *testing.T) {
	w := expect.WrapT(t)
	w.As("8 digits").ShouldBeEqual(padGTIN("09520123"), "00000009520123")
	w.As("already 14").ShouldBeEqual(padGTIN("12312312312333"), "12312312312333")
}
