// Package canon defines the shared, parser-agnostic data model: the
// canonical unbracketed buffer, the parsed-AI list that
// references it, and the engine error/linter-error channels used to report
// failures. Both the element-string parser and the DL URI parser build
// the same ParsedAI records so that downstream components (the
// cross-AI validators, the DL URI generator) never need to know which
// input form produced them.
package canon

import (
	"fmt"

	"github.com/gs1-tools/syntax-engine/ai"
	"github.com/gs1-tools/syntax-engine/lint"
)

// AttrSentinel marks a ParsedAI as belonging to the attribute set rather
// than occupying a position in a DL path.
const AttrSentinel = ai.AttrSentinel

// MaxAIs bounds the number of AIs a single parse may produce.
const MaxAIs = ai.MaxAIs

// MaxInputLength bounds the length, in bytes, of any input accepted by
// the element-string and DL URI parsers.
const MaxInputLength = 8191

// Kind distinguishes an ordinary AI/value pair from a query-string segment
// that the DL URI parser chose not to interpret as an AI at all.
type Kind int

const (
	// KindAIValue is a normal parsed AI/value pair.
	KindAIValue Kind = iota
	// KindDLIgnored is a DL URI query segment that was preserved verbatim
	// because it didn't look like an AI (no '=', or digits matching no
	// known or vivifiable AI were rejected earlier).
	KindDLIgnored
)

// ParsedAI is one entry in the engine's parsed-AI list. AI and Value
// are the AI code and its value exactly as they appear in (or would
// appear in) the canonical unbracketed buffer; Entry is nil only for
// KindDLIgnored entries.
type ParsedAI struct {
	Kind        Kind
	Entry       *ai.Entry
	AI          string
	Value       string
	DLPathOrder int
}

// IsAttribute reports whether this AI occupies no DL path position.
func (p ParsedAI) IsAttribute() bool { return p.DLPathOrder == AttrSentinel }

// NeedsFNC1Prefix reports whether the AI at position i in a parsed-AI list
// needs a leading '^' in the canonical buffer: every AI needs one unless
// it is immediately preceded by a fixed-length AI, whose known length lets
// a reader find the boundary without a separator. The first AI has no
// predecessor, so it always needs the prefix.
func NeedsFNC1Prefix(i int, prev *ai.Entry) bool {
	if i == 0 {
		return true
	}
	return prev == nil || prev.RequiresFNC1
}

// BuildCanonical renders a parsed-AI list (in the order given) as an
// unbracketed AI data string, prefixing '^' per NeedsFNC1Prefix. Only
// KindAIValue entries are rendered; KindDLIgnored entries have no AI code
// and never appear in the canonical buffer.
func BuildCanonical(list []ParsedAI) string {
	var buf []byte
	var prev *ai.Entry
	first := true
	for _, p := range list {
		if p.Kind != KindAIValue {
			continue
		}
		if NeedsFNC1Prefix(boolToIdx(first), prev) {
			buf = append(buf, '^')
		}
		buf = append(buf, p.AI...)
		buf = append(buf, p.Value...)
		prev = p.Entry
		first = false
	}
	return string(buf)
}

func boolToIdx(first bool) int {
	if first {
		return 0
	}
	return 1
}

// Code enumerates the engine-level error conditions.
type Code int

const (
	NoError Code = iota
	URIContainsIllegalCharacters
	URISchemeMustBeHTTPorHTTPS
	URIContainsIllegalDomainCharacters
	AIUnrecognised
	NoAIForPrefix
	AIDataHasIncorrectLength
	AIDataIsTooLong
	AIValueContainsIllegalCharacters
	DuplicateAI
	TooManyAIs
	AINotPresentInDLpath
	InvalidKeyQualifierSequence
	AIShouldBeInPathInfo
	AIIsNotValidDataAttribute
	EmptyAIValue
	ValueContainsFNC1Character
	CannotCreateDLURIWithoutPrimaryKeyAI
	InvalidAIPairs
	RequiredAIsNotSatisfied
	InstancesOfAIHaveDifferentValues
	SerialNotPresent
	LinterError
	MissingDomainOrPathInfo
	NoGS1KeysFoundInPathInfo
	AIValueElementIsEmpty
	DecodedAIValueContainsIllegalNUL
	UnknownAIInQueryParams
	DomainContainsIllegalCharacters
	// InvalidAIData covers malformed element-string syntax that has no
	// narrower code of its own: an unterminated bracket, a value with no
	// content, or unbracketed data missing its leading FNC1.
	InvalidAIData
)

var codeNames = [...]string{
	NoError:                              "no error",
	URIContainsIllegalCharacters:         "URI_CONTAINS_ILLEGAL_CHARACTERS",
	URISchemeMustBeHTTPorHTTPS:           "URI_SCHEME_MUST_BE_HTTP_OR_HTTPS",
	URIContainsIllegalDomainCharacters:   "URI_CONTAINS_ILLEGAL_DOMAIN_CHARACTERS",
	AIUnrecognised:                       "AI_UNRECOGNISED",
	NoAIForPrefix:                        "NO_AI_FOR_PREFIX",
	AIDataHasIncorrectLength:             "AI_DATA_HAS_INCORRECT_LENGTH",
	AIDataIsTooLong:                      "AI_DATA_IS_TOO_LONG",
	AIValueContainsIllegalCharacters:     "AI_VALUE_CONTAINS_ILLEGAL_CHARACTERS",
	DuplicateAI:                          "DUPLICATE_AI",
	TooManyAIs:                           "TOO_MANY_AIS",
	AINotPresentInDLpath:                 "AI_NOT_PRESENT_IN_DL_PATH",
	InvalidKeyQualifierSequence:          "INVALID_KEY_QUALIFIER_SEQUENCE",
	AIShouldBeInPathInfo:                 "AI_SHOULD_BE_IN_PATH_INFO",
	AIIsNotValidDataAttribute:            "AI_IS_NOT_VALID_DATA_ATTRIBUTE",
	EmptyAIValue:                         "EMPTY_AI_VALUE",
	ValueContainsFNC1Character:           "VALUE_CONTAINS_FNC1_CHARACTER",
	CannotCreateDLURIWithoutPrimaryKeyAI: "CANNOT_CREATE_DL_URI_WITHOUT_PRIMARY_KEY_AI",
	InvalidAIPairs:                       "INVALID_AI_PAIRS",
	RequiredAIsNotSatisfied:              "REQUIRED_AIS_NOT_SATISFIED",
	InstancesOfAIHaveDifferentValues:     "INSTANCES_OF_AI_HAVE_DIFFERENT_VALUES",
	SerialNotPresent:                     "SERIAL_NOT_PRESENT",
	LinterError:                          "LINTER_ERROR",
	MissingDomainOrPathInfo:              "URI_MISSING_DOMAIN_AND_PATH_INFO",
	NoGS1KeysFoundInPathInfo:             "NO_GS1_DL_KEYS_FOUND_IN_PATH_INFO",
	AIValueElementIsEmpty:                "AI_VALUE_ELEMENT_IS_EMPTY",
	DecodedAIValueContainsIllegalNUL:     "DECODED_AI_VALUE_CONTAINS_ILLEGAL_NULL",
	UnknownAIInQueryParams:               "UNKNOWN_AI_IN_QUERY_PARAMS",
	DomainContainsIllegalCharacters:      "DOMAIN_CONTAINS_ILLEGAL_CHARACTERS",
	InvalidAIData:                        "INVALID_AI_DATA",
}

// String returns the enumeration's symbolic name.
func (c Code) String() string {
	if int(c) >= 0 && int(c) < len(codeNames) && codeNames[c] != "" {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is the engine's error value: an engine-level Code plus a
// human-readable message, and -- when Code is LinterError -- the
// originating linter's Code and three-part markup string
// "(AI)goodPrefix|badSpan|goodSuffix".
type Error struct {
	Code       Code
	Message    string
	LinterCode lint.Code
	Markup     string
}

func (e *Error) Error() string {
	if e.Markup != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Markup)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a plain engine-level error.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewLinterError builds a LinterError wrapping a component linter failure,
// constructing the markup string from the AI code, the value, and the
// linter's reported error span.
func NewLinterError(aiCode, value string, r lint.Result) *Error {
	pos := r.ErrPos
	length := r.ErrLen
	if pos > len(value) {
		pos = len(value)
	}
	if pos+length > len(value) {
		length = len(value) - pos
	}
	markup := fmt.Sprintf("(%s)%s|%s|%s", aiCode, value[:pos], value[pos:pos+length], value[pos+length:])
	return &Error{
		Code:       LinterError,
		Message:    r.Code.String(),
		LinterCode: r.Code,
		Markup:     markup,
	}
}
