// Package ai implements the GS1 Application Identifier dictionary and
// the lookup engine that resolves a string prefix to a dictionary entry,
// synthesising pseudo-entries for unknown AIs when that is permitted.
package ai

import "github.com/gs1-tools/syntax-engine/lint"

// CharSet identifies which GS1 character set a component's value must
// satisfy.
type CharSet int

const (
	// CSetN is the numeric character set.
	CSetN CharSet = iota
	// CSetX is GS1 AI encodable character set 82.
	CSetX
	// CSetY is GS1 AI encodable character set 39.
	CSetY
	// CSetZ is the base64url-derived character set 64.
	CSetZ
)

func (c CharSet) String() string {
	switch c {
	case CSetN:
		return "N"
	case CSetX:
		return "X"
	case CSetY:
		return "Y"
	case CSetZ:
		return "Z"
	default:
		return "?"
	}
}

// Optionality marks whether a component must be present.
type Optionality int

const (
	Mandatory Optionality = iota
	Optional
)

// Component is one fixed- or variable-length field within an AI's value.
type Component struct {
	CharSet     CharSet
	Min, Max    int
	Optionality Optionality
	Linters     []lint.Func
}

func (c Component) charSetLinter() lint.Func {
	switch c.CharSet {
	case CSetN:
		return lint.Numeric
	case CSetX:
		return lint.CSET82
	case CSetY:
		return lint.CSET39
	case CSetZ:
		return lint.CSET64
	default:
		return lint.Numeric
	}
}

// DLAttrClass classifies whether an AI may appear as a Digital Link URI
// attribute (query-string) AI.
type DLAttrClass int

const (
	// DLAttrNone means the AI may never appear as a DL attribute (for
	// example, a path key or qualifier).
	DLAttrNone DLAttrClass = iota
	// DLAttrPermitted means the AI is an established DL attribute.
	DLAttrPermitted
	// DLAttrUnknown means the AI is not in the dictionary at all; whether
	// it is allowed as a DL attribute depends on engine configuration.
	DLAttrUnknown
)

// Entry is one Application Identifier's schema: its code, whether it
// requires the FNC1 (^) separator, its DL-attribute classification, its
// ordered components, and its raw cross-AI attribute string (the
// space-separated "dlpkey", "ex=" and "req=" tokens).
type Entry struct {
	Code         string
	RequiresFNC1 bool
	DLAttr       DLAttrClass
	Components   []Component
	Attrs        string
}

// MinLength returns the sum of the minimum lengths of mandatory
// components (the shortest legal value for this AI).
func (e *Entry) MinLength() int {
	n := 0
	for _, c := range e.Components {
		if c.Optionality == Mandatory {
			n += c.Min
		}
	}
	return n
}

// MaxLength returns the sum of the maximum lengths of all components (the
// longest legal value for this AI).
func (e *Entry) MaxLength() int {
	n := 0
	for _, c := range e.Components {
		n += c.Max
	}
	return n
}

// ValidateValue runs the character-set linter then each component's
// additional linters, in order, over value, splitting value across
// components according to their declared lengths. The first failing
// linter short-circuits validation for the whole AI.
// Error positions in the returned Result are relative to the start of
// the full AI value, not the failing component.
func (e *Entry) ValidateValue(value string) (bool, lint.Result) {
	pos := 0
	for i, c := range e.Components {
		remaining := len(value) - pos
		if remaining <= 0 {
			if c.Optionality == Optional {
				continue
			}
			return false, lint.Result{Code: lint.InvalidNonDigitCharacter, ErrPos: pos}
		}

		length := c.Min
		if i == len(e.Components)-1 {
			// The final component absorbs whatever remains of the value;
			// every AI in this dictionary front-loads its fixed-length
			// components so only the trailing one is ever variable.
			length = remaining
		}
		if length > remaining {
			length = remaining
		}
		if length < c.Min || length > c.Max {
			return false, lint.Result{Code: lint.InvalidNonDigitCharacter, ErrPos: pos, ErrLen: length}
		}

		part := value[pos : pos+length]
		if r := c.charSetLinter()(part); !r.OK() {
			r.ErrPos += pos
			return false, r
		}
		for _, extra := range c.Linters {
			if r := extra(part); !r.OK() {
				r.ErrPos += pos
				return false, r
			}
		}
		pos += length
	}
	return true, lint.Result{}
}
