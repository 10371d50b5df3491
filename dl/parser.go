package dl

import (
	"strings"

	"github.com/gs1-tools/syntax-engine/ai"
	"github.com/gs1-tools/syntax-engine/canon"
)

// Options configures ParseURI with the engine configuration flags that
// bear on DL URI parsing.
type Options struct {
	PermitUnknownAIs                 bool
	PermitZeroSuppressedGTINinDLuris bool
	UnknownAINotDLAttrEnabled        bool
}

// ParseURI decodes a GS1 Digital Link URI into the canonical parsed-AI
// list. It performs every check up to and including the
// post-parse path/query placement rules, but does not run the cross-AI
// validators -- the caller (the root engine) runs those once over
// the combined list so that dl never needs to import the root package.
func ParseURI(input string, dict *ai.Dictionary, idx *KeyQualifierIndex, opts Options) ([]canon.ParsedAI, *canon.Error) {
	if len(input) > canon.MaxInputLength {
		return nil, canon.NewError(canon.URIContainsIllegalCharacters, "URI exceeds the maximum supported length")
	}
	if !isURICharacters(input) {
		return nil, canon.NewError(canon.URIContainsIllegalCharacters, "URI contains characters outside the permitted URI alphabet")
	}

	rest, ok := stripScheme(input)
	if !ok {
		return nil, canon.NewError(canon.URISchemeMustBeHTTPorHTTPS, "URI scheme must be http or https, in consistent case")
	}

	slash := strings.IndexByte(rest, '/')
	if slash < 1 {
		return nil, canon.NewError(canon.MissingDomainOrPathInfo, "URI is missing a domain and/or path info")
	}
	domain := rest[:slash]
	if containsBadDomainCharacter(domain) {
		return nil, canon.NewError(canon.DomainContainsIllegalCharacters, "domain contains characters illegal in a domain name")
	}

	pathAndMore := rest[slash:]
	if h := strings.IndexByte(pathAndMore, '#'); h >= 0 {
		pathAndMore = pathAndMore[:h]
	}
	pathInfo, query := pathAndMore, ""
	if q := strings.IndexByte(pathAndMore, '?'); q >= 0 {
		pathInfo, query = pathAndMore[:q], pathAndMore[q+1:]
	}

	segs := splitPath(pathInfo)

	stem := findDLPathStem(segs, dict, idx, opts.PermitUnknownAIs)
	if stem < 0 {
		return nil, canon.NewError(canon.NoGS1KeysFoundInPathInfo, "no GS1 DL primary key found in path info")
	}
	dlSegs := segs[stem:]

	var list []canon.ParsedAI
	var pathCodes []string

	for i := 0; i+1 < len(dlSegs); i += 2 {
		if len(list) >= canon.MaxAIs {
			return nil, canon.NewError(canon.TooManyAIs, "too many AIs")
		}
		code, rawValue := dlSegs[i], dlSegs[i+1]
		if rawValue == "" {
			return nil, canon.NewError(canon.AIValueElementIsEmpty, "AI "+code+" has an empty value in path info")
		}
		entry, found := dict.Lookup(code, len(code), opts.PermitUnknownAIs)
		if !found {
			return nil, canon.NewError(canon.AIUnrecognised, "AI "+code+" is not recognised")
		}
		value, decOK := uriUnescape(rawValue, false)
		if !decOK {
			return nil, canon.NewError(canon.DecodedAIValueContainsIllegalNUL, "decoded value for AI "+code+" contains an illegal NUL byte")
		}
		if entry.Code == "01" && opts.PermitZeroSuppressedGTINinDLuris {
			value = padGTIN(value)
		}
		if err := checkLengthAndLint(entry, code, value); err != nil {
			return nil, err
		}
		list = append(list, canon.ParsedAI{
			Kind: canon.KindAIValue, Entry: entry, AI: code, Value: value,
			DLPathOrder: len(pathCodes),
		})
		pathCodes = append(pathCodes, entry.Code)
	}

	if !idx.Contains(pathCodes) {
		return nil, canon.NewError(canon.InvalidKeyQualifierSequence, "path AI sequence is not a valid key-qualifier association")
	}

	for _, seg := range strings.Split(query, "&") {
		if seg == "" {
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			list = append(list, canon.ParsedAI{Kind: canon.KindDLIgnored, Value: seg, DLPathOrder: canon.AttrSentinel})
			continue
		}
		code, rawValue := seg[:eq], seg[eq+1:]
		if isAllDigits(code) {
			entry, found := dict.Lookup(code, len(code), opts.PermitUnknownAIs)
			if !found {
				return nil, canon.NewError(canon.UnknownAIInQueryParams, "unknown AI "+code+" in query params")
			}
			if rawValue == "" {
				return nil, canon.NewError(canon.AIValueElementIsEmpty, "AI "+code+" has an empty value in query params")
			}
			value, decOK := uriUnescape(rawValue, true)
			if !decOK {
				return nil, canon.NewError(canon.DecodedAIValueContainsIllegalNUL, "decoded value for AI "+code+" contains an illegal NUL byte")
			}
			if entry.Code == "01" {
				value = padGTIN(value)
			}
			if err := checkLengthAndLint(entry, code, value); err != nil {
				return nil, err
			}
			if len(list) >= canon.MaxAIs {
				return nil, canon.NewError(canon.TooManyAIs, "too many AIs")
			}
			list = append(list, canon.ParsedAI{
				Kind: canon.KindAIValue, Entry: entry, AI: code, Value: value,
				DLPathOrder: canon.AttrSentinel,
			})
			continue
		}
		list = append(list, canon.ParsedAI{Kind: canon.KindDLIgnored, Value: seg, DLPathOrder: canon.AttrSentinel})
	}

	if err := validateAttributePlacement(list, pathCodes, idx, opts.UnknownAINotDLAttrEnabled); err != nil {
		return nil, err
	}

	return list, nil
}

func stripScheme(s string) (string, bool) {
	for _, scheme := range [...]string{"https://", "HTTPS://", "http://", "HTTP://"} {
		if strings.HasPrefix(s, scheme) {
			return s[len(scheme):], true
		}
	}
	return "", false
}

func splitPath(pathInfo string) []string {
	trimmed := strings.TrimPrefix(pathInfo, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// findDLPathStem scans segs right-to-left for the rightmost /AI/value pair
// whose AI is a DL primary key; everything to its left is the stem. It
// returns the index into segs where that pair begins, or -1 if none is
// found.
func findDLPathStem(segs []string, dict *ai.Dictionary, idx *KeyQualifierIndex, permitUnknownAIs bool) int {
	i := len(segs)
	for i >= 2 {
		code := segs[i-2]
		entry, found := dict.Lookup(code, len(code), permitUnknownAIs)
		if !found {
			return -1
		}
		if idx.IsPrimaryKey(entry.Code) {
			return i - 2
		}
		i -= 2
	}
	return -1
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func checkLengthAndLint(entry *ai.Entry, code, value string) *canon.Error {
	if len(value) < entry.MinLength() {
		return canon.NewError(canon.AIDataHasIncorrectLength, "AI "+code+" value is shorter than its minimum length")
	}
	if len(value) > entry.MaxLength() {
		return canon.NewError(canon.AIDataIsTooLong, "AI "+code+" value is longer than its maximum length")
	}
	if strings.ContainsRune(value, '^') {
		return canon.NewError(canon.AIValueContainsIllegalCharacters, "AI "+code+" value must not contain the FNC1 sentinel")
	}
	if ok, result := entry.ValidateValue(value); !ok {
		return canon.NewLinterError(code, value, result)
	}
	return nil
}

func validateAttributePlacement(list []canon.ParsedAI, pathCodes []string, idx *KeyQualifierIndex, unknownAINotDLAttrEnabled bool) *canon.Error {
	for i, p := range list {
		if p.Kind != canon.KindAIValue || !p.IsAttribute() {
			continue
		}
		for j := 0; j < i; j++ {
			p2 := list[j]
			if p2.Kind == canon.KindAIValue && p2.AI == p.AI {
				return canon.NewError(canon.DuplicateAI, "duplicate AI "+p.AI)
			}
		}
		if p.Entry.DLAttr == ai.DLAttrNone || (p.Entry.DLAttr == ai.DLAttrUnknown && unknownAINotDLAttrEnabled) {
			return canon.NewError(canon.AIIsNotValidDataAttribute, "AI "+p.AI+" is not a valid DL URI data attribute")
		}
		for j := 1; j <= len(pathCodes); j++ {
			if idx.WouldBeValidAt(pathCodes, j, p.Entry.Code) {
				return canon.NewError(canon.AIShouldBeInPathInfo, "AI "+p.AI+" should be in path info")
			}
		}
	}
	return nil
}
