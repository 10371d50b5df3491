package lint

// daysInMonth reports the number of days in the given two-digit month of a
// two-digit GS1 year. GS1 dates use a 51-year sliding window in the real
// standard; for calendar-validity purposes (leap years) treat "YY" as
// 2000+YY, which is adequate for judging whether DD is in range.
func daysInMonth(yy, mm int) int {
	switch mm {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		year := 2000 + yy
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func parseDigits2(value string, pos int) (int, bool) {
	if pos+2 > len(value) {
		return 0, false
	}
	a, b := value[pos], value[pos+1]
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// yymmdd validates a 6-digit YYMMDD date, optionally permitting DD == 00 to
// mean "the whole month" when allowZeroDay is set.
func yymmdd(value string, allowZeroDay bool) Result {
	if len(value) != 6 {
		return Result{Code: InvalidNonDigitCharacter, ErrPos: 0, ErrLen: len(value)}
	}
	yy, ok := parseDigits2(value, 0)
	if !ok {
		return Result{Code: InvalidNonDigitCharacter, ErrPos: 0, ErrLen: 2}
	}
	mm, ok := parseDigits2(value, 2)
	if !ok {
		return Result{Code: InvalidNonDigitCharacter, ErrPos: 2, ErrLen: 2}
	}
	if mm < 1 || mm > 12 {
		return Result{Code: IllegalMonth, ErrPos: 2, ErrLen: 2}
	}
	dd, ok := parseDigits2(value, 4)
	if !ok {
		return Result{Code: InvalidNonDigitCharacter, ErrPos: 4, ErrLen: 2}
	}
	if dd == 0 && allowZeroDay {
		return Result{}
	}
	if dd < 1 || dd > daysInMonth(yy, mm) {
		return Result{Code: IllegalDay, ErrPos: 4, ErrLen: 2}
	}
	return Result{}
}

// YYMMDD validates a fully-specified 6-digit calendar date.
func YYMMDD(value string) Result { return yymmdd(value, false) }

// YYMMD0 validates a 6-digit date where DD may be "00" to mean the entire
// month (used by AIs such as best-before-date variants).
func YYMMD0(value string) Result { return yymmdd(value, true) }

// HHMM validates a 4-digit 24-hour clock time.
func HHMM(value string) Result {
	if len(value) != 4 {
		return Result{Code: InvalidNonDigitCharacter, ErrPos: 0, ErrLen: len(value)}
	}
	hh, ok := parseDigits2(value, 0)
	if !ok {
		return Result{Code: InvalidNonDigitCharacter, ErrPos: 0, ErrLen: 2}
	}
	if hh > 23 {
		return Result{Code: IllegalHour, ErrPos: 0, ErrLen: 2}
	}
	mm, ok := parseDigits2(value, 2)
	if !ok {
		return Result{Code: InvalidNonDigitCharacter, ErrPos: 2, ErrLen: 2}
	}
	if mm > 59 {
		return Result{Code: IllegalMinute, ErrPos: 2, ErrLen: 2}
	}
	return Result{}
}
