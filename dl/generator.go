package dl

import (
	"strings"

	"github.com/gs1-tools/syntax-engine/ai"
	"github.com/gs1-tools/syntax-engine/canon"
)

// DefaultStem is the canonical GS1 Digital Link resolver domain used when
// the caller supplies none.
const DefaultStem = "https://id.gs1.org"

// GenerateURI synthesises a canonical DL URI from a parsed AI list:
// the first primary-key AI anchors the path, the key-qualifier sequence
// covering the most of the remaining AIs extends it, and everything else
// becomes a query attribute. stem, if empty, defaults to DefaultStem;
// any single trailing '/' is trimmed.
func GenerateURI(list []canon.ParsedAI, stem string, idx *KeyQualifierIndex, unknownAINotDLAttrEnabled bool) (string, *canon.Error) {
	if stem == "" {
		stem = DefaultStem
	}
	stem = strings.TrimSuffix(stem, "/")

	key, keyEntry := pickPrimaryKey(list, idx)
	if keyEntry == nil {
		return "", canon.NewError(canon.CannotCreateDLURIWithoutPrimaryKeyAI, "no AI in the parsed list is a valid DL primary key")
	}

	present := map[string]bool{}
	for _, p := range list {
		if p.Kind == canon.KindAIValue {
			present[p.Entry.Code] = true
		}
	}
	chain := idx.BestChain(key, present)

	ordered := assignPathOrder(list, chain)

	var buf strings.Builder
	buf.WriteString(stem)
	for i := range chain {
		for _, p := range ordered {
			if p.Kind == canon.KindAIValue && p.DLPathOrder == i {
				buf.WriteByte('/')
				buf.WriteString(p.AI)
				buf.WriteByte('/')
				buf.WriteString(uriEscape(p.Value, false))
				break
			}
		}
	}
	buf.WriteByte('?')

	seen := map[string]bool{}
	for _, emitFixed := range [...]bool{true, false} {
		for _, p := range ordered {
			if p.Kind != canon.KindAIValue || !p.IsAttribute() {
				continue
			}
			if p.Entry.RequiresFNC1 == emitFixed {
				continue
			}
			if seen[p.AI] {
				continue
			}
			seen[p.AI] = true

			if p.Entry.DLAttr == ai.DLAttrNone || (p.Entry.DLAttr == ai.DLAttrUnknown && unknownAINotDLAttrEnabled) {
				return "", canon.NewError(canon.AIIsNotValidDataAttribute, "AI "+p.AI+" is not a valid DL URI data attribute")
			}
			buf.WriteString(p.AI)
			buf.WriteByte('=')
			buf.WriteString(uriEscape(p.Value, true))
			buf.WriteByte('&')
		}
	}

	out := buf.String()
	return strings.TrimRight(out, "?&"), nil
}

func pickPrimaryKey(list []canon.ParsedAI, idx *KeyQualifierIndex) (string, *ai.Entry) {
	for _, p := range list {
		if p.Kind != canon.KindAIValue {
			continue
		}
		if idx.IsPrimaryKey(p.Entry.Code) {
			return p.Entry.Code, p.Entry
		}
	}
	return "", nil
}

// assignPathOrder returns a copy of list with DLPathOrder set for every
// entry whose code appears in chain (0 for the key, 1, 2, … for
// qualifiers in chain order); every other AI is marked as an attribute.
func assignPathOrder(list []canon.ParsedAI, chain []string) []canon.ParsedAI {
	out := make([]canon.ParsedAI, len(list))
	copy(out, list)
	for i := range out {
		if out[i].Kind != canon.KindAIValue {
			continue
		}
		out[i].DLPathOrder = canon.AttrSentinel
		for ci, code := range chain {
			if out[i].Entry.Code == code {
				out[i].DLPathOrder = ci
				break
			}
		}
	}
	return out
}
