// Package lint implements the per-component character-set and semantic
// validators dispatched by the AI dictionary.
//
// Each linter is a pure function of a component's value: it never mutates
// engine state, and its only output is a Result describing success or the
// first violation found. Linters are deliberately simple, narrow checks;
// the dictionary is responsible for sequencing them (character-set linter
// first, then any additional linters) and for turning the first failure
// into the AI-level markup string.
package lint

import "fmt"

// Code enumerates the granular linter failures a component value can
// produce. The zero value, OK, means the value passed every linter it was
// run through.
type Code int

const (
	OK Code = iota
	InvalidNonDigitCharacter
	InvalidCSET82Character
	InvalidCSET39Character
	InvalidCSET64Character
	IncorrectCheckDigit
	CheckDigitTooShort
	IllegalYear
	IllegalMonth
	IllegalDay
	IllegalHour
	IllegalMinute
	InvalidISO3166CountryCode
	InvalidKeyStructure
	InvalidKeyCheckDigit
	InvalidLatitude
	InvalidLongitude
	InvalidPositionInSequence
)

var codeNames = [...]string{
	OK:                        "no issues were detected by the linter",
	InvalidNonDigitCharacter:  "a non-digit character was found where a digit was expected",
	InvalidCSET82Character:    "a non-CSET82 character was found where a CSET82 character was expected",
	InvalidCSET39Character:    "a non-CSET39 character was found where a CSET39 character was expected",
	InvalidCSET64Character:    "a non-CSET64 character was found where a CSET64 character was expected",
	IncorrectCheckDigit:       "the numeric check digit is incorrect",
	CheckDigitTooShort:        "the component is too short to perform a check digit calculation",
	IllegalYear:               "the year component is not a valid two-digit year",
	IllegalMonth:              "the month component is not in the range 01-12",
	IllegalDay:                "the day component is not valid for its month",
	IllegalHour:               "the hour component is not in the range 00-23",
	IllegalMinute:             "the minute component is not in the range 00-59",
	InvalidISO3166CountryCode: "the value is not a recognised ISO 3166 numeric country code",
	InvalidKeyStructure:       "the value does not have the structure required of a GS1 key",
	InvalidKeyCheckDigit:      "the key embedded in the value has an incorrect check digit",
	InvalidLatitude:           "the latitude value is out of range",
	InvalidLongitude:          "the longitude value is out of range",
	InvalidPositionInSequence: "the position-in-sequence value is invalid",
}

// String returns a human-readable description of the code.
func (c Code) String() string {
	if int(c) >= 0 && int(c) < len(codeNames) && codeNames[c] != "" {
		return codeNames[c]
	}
	return fmt.Sprintf("unknown linter code %d", int(c))
}

// Result is the outcome of running a single linter over a component value.
// A zero Result (Code == OK) means the linter found no problem.
type Result struct {
	Code   Code
	ErrPos int // byte offset within the component value of the first bad character
	ErrLen int // length of the offending span, at least 1 when Code != OK
}

// OK reports whether r represents a successful validation.
func (r Result) OK() bool { return r.Code == OK }

// Func validates a single component value. It must be a pure function of
// value: no I/O, no shared state, no panics on malformed input.
type Func func(value string) Result
