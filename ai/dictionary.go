package ai

import (
	"sort"

	"github.com/pkg/errors"
)

const (
	// MinAILen and MaxAILen bound the length, in digits, of an AI code.
	MinAILen = 2
	MaxAILen = 4
	// MaxAIs is the largest number of AIs a single engine state may hold
	// parsed at once.
	MaxAIs = 16
)

// AttrSentinel marks a parsed AI as a DL attribute rather than occupying a
// position in the DL path.
const AttrSentinel = -1

// Dictionary is an immutable, sorted set of AI entries plus the derived
// per-prefix length table used for vivifying unknown AIs.
type Dictionary struct {
	entries []*Entry

	// lengthByPrefix records, for each two-digit prefix that appears in
	// entries, the single AI code length every entry sharing that prefix
	// must have.
	lengthByPrefix map[string]int
	// fixedLengthByPrefix records whether every entry sharing a prefix has
	// a fixed (min == max) total value length; used only when vivifying.
	fixedLengthByPrefix map[string]bool
}

// NewDictionary builds a Dictionary from entries, sorting them and
// deriving the per-prefix tables. It fails if two entries sharing a
// two-digit prefix declare different code lengths, which would make AI
// boundaries ambiguous in raw data.
func NewDictionary(entries []*Entry) (*Dictionary, error) {
	sorted := make([]*Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Code == sorted[i-1].Code {
			return nil, errors.Errorf("duplicate AI code %q in dictionary", sorted[i].Code)
		}
	}

	lengthByPrefix := map[string]int{}
	fixedByPrefix := map[string]bool{}
	seenPrefix := map[string]bool{}
	for _, e := range sorted {
		if len(e.Code) < 2 {
			return nil, errors.Errorf("AI code %q is shorter than the minimum prefix length", e.Code)
		}
		prefix := e.Code[:2]
		if want, ok := lengthByPrefix[prefix]; ok && want != len(e.Code) {
			return nil, errors.Errorf(
				"dictionary corrupt: prefix %q has AIs of both length %d and %d",
				prefix, want, len(e.Code))
		}
		lengthByPrefix[prefix] = len(e.Code)

		fixed := e.MinLength() == e.MaxLength()
		if !seenPrefix[prefix] {
			fixedByPrefix[prefix] = fixed
			seenPrefix[prefix] = true
		} else {
			fixedByPrefix[prefix] = fixedByPrefix[prefix] && fixed
		}
	}

	return &Dictionary{
		entries:             sorted,
		lengthByPrefix:      lengthByPrefix,
		fixedLengthByPrefix: fixedByPrefix,
	}, nil
}

// Entries returns the dictionary's entries in sorted order. Callers must
// not mutate the returned slice or its elements.
func (d *Dictionary) Entries() []*Entry {
	return d.entries
}

// search performs a binary search for the single entry whose Code is a
// prefix of data (or equal to it). Because no two entries in a
// well-formed dictionary have one code as a strict prefix of the other,
// at most one of the two candidates adjacent to the insertion point can
// match.
func (d *Dictionary) search(data string) (*Entry, bool) {
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Code >= data
	})
	for _, idx := range [2]int{i - 1, i} {
		if idx < 0 || idx >= len(d.entries) {
			continue
		}
		e := d.entries[idx]
		if len(e.Code) <= len(data) && data[:len(e.Code)] == e.Code {
			return e, true
		}
	}
	return nil, false
}

// isPrefixOfEntry reports whether prefix is itself a proper prefix of some
// dictionary entry's code (used to forbid vivifying a code that some
// longer, known AI already claims).
func (d *Dictionary) isPrefixOfEntry(prefix string) bool {
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Code >= prefix
	})
	if i >= len(d.entries) {
		return false
	}
	e := d.entries[i]
	return len(e.Code) > len(prefix) && e.Code[:len(prefix)] == prefix
}
