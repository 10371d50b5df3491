package gs1

import (
	"strings"

	"github.com/gs1-tools/syntax-engine/ai"
	"github.com/gs1-tools/syntax-engine/canon"
)

// ValidationCode names one of the cross-AI validators an Engine runs over
// a complete parsed-AI list.
type ValidationCode int

const (
	// MutexAIs rejects AI pairs that a dictionary entry's "ex=" attribute
	// marks as mutually exclusive.
	MutexAIs ValidationCode = iota
	// RequisiteAIs rejects an AI whose "req=" attribute names a group of
	// AIs that must accompany it, none of which is wholly present.
	RequisiteAIs
	// RepeatedAIs rejects two occurrences of the same AI code carrying
	// different values.
	RepeatedAIs
	// DigSigSerialKey rejects a digital signature (8030) accompanied by a
	// 253, 255 or 8003 key that lacks its serial component.
	DigSigSerialKey
	// UnknownAINotDLAttr is a placeholder entry: the check it names is
	// applied by the DL URI parser itself, not by a function in this
	// table, so its fn is always nil.
	UnknownAINotDLAttr

	numValidations
)

// validationEntry is one row of an Engine's validation table: whether the
// check can be disabled, whether it currently is, and the function that
// implements it (nil for UnknownAINotDLAttr, which the DL parser enforces
// directly).
type validationEntry struct {
	locked  bool
	enabled bool
	fn      func([]canon.ParsedAI) *canon.Error
}

// defaultValidationTable returns the engine's validators in their
// as-shipped locked/enabled state. MutexAIs, RepeatedAIs and
// DigSigSerialKey are locked on: disabling them would let a generated or
// re-parsed element string silently violate the General Specifications.
// RequisiteAIs and UnknownAINotDLAttr may be switched off by a caller that
// needs to process data it knows to be incomplete.
func defaultValidationTable() [numValidations]validationEntry {
	return [numValidations]validationEntry{
		MutexAIs:           {locked: true, enabled: true, fn: validateAImutex},
		RequisiteAIs:       {locked: false, enabled: true, fn: validateAIrequisites},
		RepeatedAIs:        {locked: true, enabled: true, fn: validateAIrepeats},
		DigSigSerialKey:    {locked: true, enabled: true, fn: validateDigSigRequiresSerialisedKey},
		UnknownAINotDLAttr: {locked: false, enabled: true, fn: nil},
	}
}

// runValidations executes each enabled validator in table order, stopping
// at (and returning) the first failure.
func runValidations(list []canon.ParsedAI, table [numValidations]validationEntry) *canon.Error {
	for _, v := range table {
		if v.enabled && v.fn != nil {
			if err := v.fn(list); err != nil {
				return err
			}
		}
	}
	return nil
}

// numericPrefixLen returns the length of s's leading run of ASCII digits,
// stopping at the first non-digit (such as the 'n' wildcard character
// used in attribute tokens like "392n").
func numericPrefixLen(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// aiExists reports whether list contains a KindAIValue entry whose code
// shares token's numeric prefix (so a wildcard token like "392n" matches
// any of 3921-3929), ignoring any entry whose code agrees with ignoreCode
// over token's full length -- which excludes the very AI being validated
// from matching itself in its own attribute list.
func aiExists(list []canon.ParsedAI, token, ignoreCode string) (canon.ParsedAI, bool) {
	prefixLen := numericPrefixLen(token)
	for _, p := range list {
		if p.Kind != canon.KindAIValue {
			continue
		}
		if len(p.AI) < prefixLen || p.AI[:prefixLen] != token[:prefixLen] {
			continue
		}
		if ignoreCode != "" && len(p.AI) >= len(token) && len(ignoreCode) >= len(token) &&
			p.AI[:len(token)] == ignoreCode[:len(token)] {
			continue
		}
		return p, true
	}
	return canon.ParsedAI{}, false
}

// attrTokens splits an Entry's space-separated Attrs string and returns
// the ones beginning with prefix, with prefix stripped.
func attrTokens(entry *ai.Entry, prefix string) []string {
	if entry == nil {
		return nil
	}
	var out []string
	for _, field := range strings.Fields(entry.Attrs) {
		if strings.HasPrefix(field, prefix) {
			out = append(out, strings.TrimPrefix(field, prefix))
		}
	}
	return out
}

// validateAImutex implements MutexAIs: an entry's "ex=a,b,c" attribute
// names AIs (or wildcard prefixes) that must never coexist with it.
func validateAImutex(list []canon.ParsedAI) *canon.Error {
	for _, p := range list {
		if p.Kind != canon.KindAIValue {
			continue
		}
		for _, group := range attrTokens(p.Entry, "ex=") {
			for _, token := range strings.Split(group, ",") {
				matched, ok := aiExists(list, token, p.AI)
				if !ok {
					continue
				}
				return canon.NewError(canon.InvalidAIPairs,
					"AI ("+p.AI+") may not be used with AI ("+matched.AI+")")
			}
		}
	}
	return nil
}

// validateAIrequisites implements RequisiteAIs: an entry's
// "req=a+b,c" attribute names one or more comma-separated groups, each a
// '+'-joined set of AIs every one of which must be present. Any single
// wholly-satisfied group is sufficient.
func validateAIrequisites(list []canon.ParsedAI) *canon.Error {
	for _, p := range list {
		if p.Kind != canon.KindAIValue {
			continue
		}
		for _, raw := range attrTokens(p.Entry, "req=") {
			satisfied := false
			for _, group := range strings.Split(raw, ",") {
				groupOK := true
				for _, token := range strings.Split(group, "+") {
					if _, ok := aiExists(list, token, p.AI); !ok {
						groupOK = false
						break
					}
				}
				if groupOK {
					satisfied = true
					break
				}
			}
			if !satisfied {
				return canon.NewError(canon.RequiredAIsNotSatisfied,
					"AI ("+p.AI+") requires one of the AI groups \""+raw+"\" to be present")
			}
		}
	}
	return nil
}

// validateAIrepeats implements RepeatedAIs: the same AI code appearing
// more than once (as can happen when element strings from multiple
// symbols on one label are concatenated) must carry the same value every
// time.
func validateAIrepeats(list []canon.ParsedAI) *canon.Error {
	for i, p := range list {
		if p.Kind != canon.KindAIValue {
			continue
		}
		for _, q := range list[i+1:] {
			if q.Kind != canon.KindAIValue || q.AI != p.AI {
				continue
			}
			if q.Value != p.Value {
				return canon.NewError(canon.InstancesOfAIHaveDifferentValues,
					"AI ("+p.AI+") occurs more than once with different values")
			}
		}
	}
	return nil
}

// validateDigSigRequiresSerialisedKey implements DigSigSerialKey: when a
// digital signature (8030) is present, every 253, 255 or 8003 key that
// accompanies it must include its optional serial component -- a bare
// minimum-length key cannot itself be what the signature covers.
func validateDigSigRequiresSerialisedKey(list []canon.ParsedAI) *canon.Error {
	if _, ok := aiExists(list, "8030", ""); !ok {
		return nil
	}
	for _, p := range list {
		if p.Kind != canon.KindAIValue {
			continue
		}
		if p.AI != "253" && p.AI != "255" && p.AI != "8003" {
			continue
		}
		if p.Entry != nil && len(p.Value) == p.Entry.MinLength() {
			return canon.NewError(canon.SerialNotPresent,
				"AI ("+p.AI+") must include a serial component when used with AI (8030)")
		}
	}
	return nil
}
