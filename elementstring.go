package gs1

import (
	"fmt"
	"strings"

	"github.com/gs1-tools/syntax-engine/ai"
	"github.com/gs1-tools/syntax-engine/canon"
)

// ParseBracketed converts human-authored bracketed AI syntax, such as
// "(01)12345678901231(10)ABC123", into the canonical unbracketed form and
// a parsed-AI list, then runs the cross-AI validator table over the
// result. The backslash before an opening bracket inside a value (e.g.
// "(10)12345\(11)991225") escapes a literal '(' rather than starting a
// new AI.
func ParseBracketed(input string, dict *ai.Dictionary, permitUnknownAIs bool) ([]canon.ParsedAI, string, *canon.Error) {
	return parseBracketed(input, dict, permitUnknownAIs, defaultValidationTable())
}

func parseBracketed(input string, dict *ai.Dictionary, permitUnknownAIs bool, table [numValidations]validationEntry) ([]canon.ParsedAI, string, *canon.Error) {
	if len(input) > canon.MaxInputLength {
		return nil, "", canon.NewError(canon.InvalidAIData, "input exceeds the maximum supported length")
	}

	var list []canon.ParsedAI
	var buf strings.Builder

	p := 0
	fnc1req := true
	for p < len(input) {
		if input[p] != '(' {
			return nil, "", canon.NewError(canon.InvalidAIData, "expected '(' to start an AI")
		}
		p++

		closeIdx := strings.IndexByte(input[p:], ')')
		if closeIdx < 0 {
			return nil, "", canon.NewError(canon.InvalidAIData, "unterminated AI: missing ')'")
		}
		code := input[p : p+closeIdx]

		entry, ok := dict.Lookup(code, len(code), permitUnknownAIs)
		if !ok {
			return nil, "", canon.NewError(canon.AIUnrecognised, "AI ("+code+") is not recognised")
		}

		if fnc1req {
			buf.WriteByte('^')
		}
		buf.WriteString(code)
		fnc1req = entry.RequiresFNC1

		p += closeIdx + 1
		if p >= len(input) {
			return nil, "", canon.NewError(canon.InvalidAIData, "AI ("+code+") has no value")
		}

		valueStart := buf.Len()
		r := p
		for {
			next := strings.IndexByte(input[r:], '(')
			var nextAbs int
			if next < 0 {
				nextAbs = len(input)
			} else {
				nextAbs = r + next
			}

			if nextAbs < len(input) && nextAbs > 0 && input[nextAbs-1] == '\\' {
				// The bracket is an escaped data character: keep
				// everything up to the backslash, then a literal '('.
				buf.WriteString(input[r : nextAbs-1])
				buf.WriteByte('(')
				r = nextAbs + 1
				continue
			}

			buf.WriteString(input[r:nextAbs])
			p = nextAbs
			break
		}
		value := buf.String()[valueStart:]

		if err := checkAIValueLengthAndContent(entry, code, value); err != nil {
			return nil, "", err
		}

		if len(list) >= canon.MaxAIs {
			return nil, "", canon.NewError(canon.TooManyAIs, "too many AIs in element string")
		}
		list = append(list, canon.ParsedAI{
			Kind:        canon.KindAIValue,
			Entry:       entry,
			AI:          code,
			Value:       value,
			DLPathOrder: canon.AttrSentinel,
		})
	}

	canonical := buf.String()
	if err := runLinters(list); err != nil {
		return nil, "", err
	}
	if err := runValidations(list, table); err != nil {
		return nil, "", err
	}
	return list, canonical, nil
}

// checkAIValueLengthAndContent performs the length and '^'-exclusion
// checks that happen before per-component linting, since reporting a
// checksum failure on a value that is simply the wrong length is not
// useful.
func checkAIValueLengthAndContent(entry *ai.Entry, code, value string) *canon.Error {
	if value == "" {
		return canon.NewError(canon.EmptyAIValue, "AI ("+code+") value is empty")
	}
	if len(value) < entry.MinLength() || len(value) > entry.MaxLength() {
		return canon.NewError(canon.AIDataHasIncorrectLength, "AI ("+code+") value has an invalid length")
	}
	if strings.IndexByte(value, '^') >= 0 {
		return canon.NewError(canon.ValueContainsFNC1Character, "AI ("+code+") value contains an illegal '^' character")
	}
	return nil
}

// ParseUnbracketed validates the canonical unbracketed form
// ("^0112345678901231^10ABC123") and, when extractAIs is set, returns the
// parsed-AI list, with the cross-AI validators run over the result.
// extractAIs=false performs
// the same per-AI length and linter checks (used after ParseBracketed has
// already produced the canonical buffer) without allocating a second list;
// it does not run the cross-AI validators.
//
// extractAIs=true additionally refuses to resolve a prefix to the
// zero-length "generic unknown" pseudo-entry, since an AI's length cannot
// be recovered from raw data without knowing it in advance.
func ParseUnbracketed(input string, dict *ai.Dictionary, permitUnknownAIs, extractAIs bool) ([]canon.ParsedAI, *canon.Error) {
	return parseUnbracketed(input, dict, permitUnknownAIs, extractAIs, defaultValidationTable())
}

func parseUnbracketed(input string, dict *ai.Dictionary, permitUnknownAIs, extractAIs bool, table [numValidations]validationEntry) ([]canon.ParsedAI, *canon.Error) {
	if len(input) > canon.MaxInputLength {
		return nil, canon.NewError(canon.InvalidAIData, "input exceeds the maximum supported length")
	}
	if len(input) == 0 || input[0] != '^' {
		return nil, canon.NewError(canon.InvalidAIData, "unbracketed AI data must start with FNC1 ('^')")
	}
	p := 1
	if p >= len(input) {
		return nil, canon.NewError(canon.InvalidAIData, "unbracketed AI data is empty")
	}

	var list []canon.ParsedAI
	for p < len(input) {
		entry, ok := dict.Lookup(input[p:], 0, permitUnknownAIs)
		if !ok || (extractAIs && entry.Code == "") {
			return nil, canon.NewError(canon.NoAIForPrefix, fmt.Sprintf("no AI matches a prefix of the data at position %d", p))
		}

		code := input[p : p+len(entry.Code)]
		p += len(entry.Code)

		// A fixed-length AI's value runs for exactly its schema length and
		// needs no terminating FNC1; a variable-length AI's value runs to
		// the next FNC1 or end-of-input.
		sep := strings.IndexByte(input[p:], '^')
		sepAbs := len(input)
		if sep >= 0 {
			sepAbs = p + sep
		}
		r := sepAbs
		if !entry.RequiresFNC1 {
			if fixedEnd := p + entry.MinLength(); fixedEnd < r {
				r = fixedEnd
			}
		}

		value := input[p:r]
		if err := checkAIValueLengthAndContent(entry, code, value); err != nil {
			if entry.RequiresFNC1 && len(value) > entry.MaxLength() {
				return nil, canon.NewError(canon.AIDataIsTooLong, "AI ("+code+") value is longer than permitted")
			}
			return nil, err
		}
		if valOK, result := entry.ValidateValue(value); !valOK {
			return nil, canon.NewLinterError(code, value, result)
		}

		if extractAIs {
			if len(list) >= canon.MaxAIs {
				return nil, canon.NewError(canon.TooManyAIs, "too many AIs in element string")
			}
			list = append(list, canon.ParsedAI{
				Kind:        canon.KindAIValue,
				Entry:       entry,
				AI:          code,
				Value:       value,
				DLPathOrder: canon.AttrSentinel,
			})
		}

		p = r
		if p < len(input) && input[p] == '^' {
			p++
		}
	}

	if extractAIs {
		if err := runValidations(list, table); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// runLinters runs each parsed AI's component linters, short-circuiting on
// the first failure. ParseBracketed calls this once after the whole
// element string has been lexed, so syntax errors surface before any
// value-content diagnostics.
func runLinters(list []canon.ParsedAI) *canon.Error {
	for _, p := range list {
		ok, result := p.Entry.ValidateValue(p.Value)
		if !ok {
			return canon.NewLinterError(p.AI, p.Value, result)
		}
	}
	return nil
}
