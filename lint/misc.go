package lint

import "strings"

// iso3166Numeric is a representative subset of ISO 3166-1 numeric country
// codes, enough to exercise the linter contract without reproducing the
// full assignment table.
var iso3166Numeric = map[string]bool{
	"004": true, "008": true, "012": true, "031": true, "036": true,
	"040": true, "044": true, "050": true, "056": true, "076": true,
	"124": true, "156": true, "170": true, "188": true, "191": true,
	"203": true, "208": true, "214": true, "218": true, "246": true,
	"250": true, "276": true, "300": true, "344": true, "348": true,
	"356": true, "372": true, "376": true, "380": true, "392": true,
	"410": true, "428": true, "440": true, "442": true, "458": true,
	"484": true, "528": true, "554": true, "578": true, "608": true,
	"616": true, "620": true, "642": true, "643": true, "702": true,
	"703": true, "705": true, "710": true, "724": true, "752": true,
	"756": true, "792": true, "804": true, "826": true, "840": true,
}

// ISO3166 validates that value is a known 3-digit ISO 3166-1 numeric
// country code.
func ISO3166(value string) Result {
	if r := Numeric(value); !r.OK() {
		return r
	}
	if len(value) != 3 || !iso3166Numeric[value] {
		return Result{Code: InvalidISO3166CountryCode, ErrPos: 0, ErrLen: len(value)}
	}
	return Result{}
}

// ISO3166List validates a concatenation of one or more consecutive 3-digit
// ISO 3166-1 numeric country codes.
func ISO3166List(value string) Result {
	if len(value)%3 != 0 || len(value) == 0 {
		return Result{Code: InvalidISO3166CountryCode, ErrPos: 0, ErrLen: len(value)}
	}
	for i := 0; i < len(value); i += 3 {
		if r := ISO3166(value[i : i+3]); !r.OK() {
			r.ErrPos += i
			return r
		}
	}
	return Result{}
}

// Key validates that value begins with a GS1 key (such as a GLN or GTIN)
// whose trailing digit is a correct check digit over the entire value.
func Key(value string) Result {
	return CheckDigit(value)
}

// KeyOff1 validates a GS1 key check digit the same way Key does, but where
// the key is offset by one leading non-key character (for example, an
// extension digit prefixing a GDTI).
func KeyOff1(value string) Result {
	if len(value) < 1 {
		return Result{Code: CheckDigitTooShort, ErrPos: 0, ErrLen: len(value)}
	}
	r := CheckDigit(value[1:])
	if !r.OK() {
		r.ErrPos++
	}
	return r
}

// PosInSeqSlash validates a "position/total" component such as "2/5": two
// runs of digits separated by a single '/', with position in [1, total].
func PosInSeqSlash(value string) Result {
	idx := strings.IndexByte(value, '/')
	if idx <= 0 || idx == len(value)-1 {
		return Result{Code: InvalidPositionInSequence, ErrPos: 0, ErrLen: len(value)}
	}
	pos, posOK := atoiDigits(value[:idx])
	total, totOK := atoiDigits(value[idx+1:])
	if !posOK || !totOK || pos < 1 || total < 1 || pos > total {
		return Result{Code: InvalidPositionInSequence, ErrPos: 0, ErrLen: len(value)}
	}
	return Result{}
}

func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// Latitude validates a fixed-point N10 component representing a latitude
// in ten-millionths of a degree offset from -90, in the range
// [0, 1800000000].
func Latitude(value string) Result {
	if r := Numeric(value); !r.OK() {
		return r
	}
	n, ok := atoiDigits(value)
	if !ok || n > 1800000000 {
		return Result{Code: InvalidLatitude, ErrPos: 0, ErrLen: len(value)}
	}
	return Result{}
}

// Longitude validates a fixed-point N10 component representing a longitude
// in ten-millionths of a degree offset from -180, in the range
// [0, 3600000000].
func Longitude(value string) Result {
	if r := Numeric(value); !r.OK() {
		return r
	}
	n, ok := atoiDigits(value)
	if !ok || int64(n) > 3600000000 {
		return Result{Code: InvalidLongitude, ErrPos: 0, ErrLen: len(value)}
	}
	return Result{}
}
