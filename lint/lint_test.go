package lint

import (
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestCSET82(t *testing.T) {
	w := expect.WrapT(t)

	type tc struct {
		name  string
		value string
		ok    bool
	}
	cases := []tc{
		{"plain digits", "12345", true},
		{"mixed alnum", "ABC123xyz", true},
		{"punctuation", `!"%&'()*+,-./:;<=>?_`, true},
		{"illegal char", "ABC[123]", false},
	}
	for _, c := range cases {
		r := CSET82(c.value)
		w.As(c.name).ShouldBeEqual(r.OK(), c.ok)
	}
}

func TestCSET39(t *testing.T) {
	w := expect.WrapT(t)
	w.As("valid").ShouldBeEqual(CSET39("ABC-123").OK(), true)
	w.As("lowercase rejected").ShouldBeEqual(CSET39("abc").OK(), false)
}

func TestNumeric(t *testing.T) {
	w := expect.WrapT(t)
	w.As("digits").ShouldBeEqual(Numeric("0123456789").OK(), true)
	w.As("letter").ShouldBeEqual(Numeric("12a4").OK(), false)
}

func TestCheckDigit(t *testing.T) {
	w := expect.WrapT(t)

	// 12345678901231 is a widely used GS1 test-vector GTIN with a valid
	// check digit (used throughout the reference GS1 syntax engine's own
	// test suite).
	w.As("valid GTIN").ShouldBeEqual(CheckDigit("12345678901231").OK(), true)

	r := CheckDigit("12345678901234")
	w.As("invalid GTIN code").ShouldBeEqual(r.Code, IncorrectCheckDigit)

	w.As("too short").ShouldBeEqual(CheckDigit("1").Code, CheckDigitTooShort)
}

func TestYYMMDD(t *testing.T) {
	w := expect.WrapT(t)
	w.As("valid").ShouldBeEqual(YYMMDD("251231").OK(), true)
	w.As("bad month").ShouldBeEqual(YYMMDD("251331").Code, IllegalMonth)
	w.As("bad day").ShouldBeEqual(YYMMDD("250230").Code, IllegalDay)
	w.As("leap day ok").ShouldBeEqual(YYMMDD("240229").OK(), true)
	w.As("non-leap day rejected").ShouldBeEqual(YYMMDD("230229").OK(), false)
}

func TestYYMMD0(t *testing.T) {
	w := expect.WrapT(t)
	w.As("zero day allowed").ShouldBeEqual(YYMMD0("250100").OK(), true)
}

func TestHHMM(t *testing.T) {
	w := expect.WrapT(t)
	w.As("valid").ShouldBeEqual(HHMM("2359").OK(), true)
	w.As("bad hour").ShouldBeEqual(HHMM("2459").Code, IllegalHour)
	w.As("bad minute").ShouldBeEqual(HHMM("2360").Code, IllegalMinute)
}

func TestISO3166(t *testing.T) {
	w := expect.WrapT(t)
	w.As("known code").ShouldBeEqual(ISO3166("840").OK(), true)
	w.As("unknown code").ShouldBeEqual(ISO3166("999").Code, InvalidISO3166CountryCode)
}

func TestPosInSeqSlash(t *testing.T) {
	w := expect.WrapT(t)
	w.As("valid").ShouldBeEqual(PosInSeqSlash("2/5").OK(), true)
	w.As("pos exceeds total").ShouldBeEqual(PosInSeqSlash("6/5").OK(), false)
	w.As("missing slash").ShouldBeEqual(PosInSeqSlash("25").OK(), false)
}

func TestCSET64(t *testing.T) {
	w := expect.WrapT(t)
	w.As("base64url ok").ShouldBeEqual(CSET64("Abc123-_").OK(), true)
	w.As("padding char rejected").ShouldBeEqual(CSET64("Abc=").Code, InvalidCSET64Character)
}

func TestISO3166List(t *testing.T) {
	w := expect.WrapT(t)
	w.As("two codes").ShouldBeEqual(ISO3166List("840276").OK(), true)
	w.As("ragged length").ShouldBeEqual(ISO3166List("8402").OK(), false)
	w.As("bad second code").ShouldBeEqual(ISO3166List("840999").Code, InvalidISO3166CountryCode)
}

func TestKeyOff1(t *testing.T) {
	w := expect.WrapT(t)

	// 1234567890128 carries a valid check digit; prefixing an extension
	// digit moves the key one byte right.
	w.As("offset key").ShouldBeEqual(KeyOff1("01234567890128").OK(), true)

	r := KeyOff1("01234567890123")
	w.As("offset bad digit").ShouldBeEqual(r.Code, IncorrectCheckDigit)
	w.As("position shifted").ShouldBeEqual(r.ErrPos, 13)
}

func TestLatitudeLongitude(t *testing.T) {
	w := expect.WrapT(t)
	w.As("equator").ShouldBeEqual(Latitude("0900000000").OK(), true)
	w.As("north pole").ShouldBeEqual(Latitude("1800000000").OK(), true)
	w.As("beyond pole").ShouldBeEqual(Latitude("1800000001").Code, InvalidLatitude)
	w.As("prime meridian").ShouldBeEqual(Longitude("1800000000").OK(), true)
	w.As("beyond antimeridian").ShouldBeEqual(Longitude("3600000001").Code, InvalidLongitude)
}
