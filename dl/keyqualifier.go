package dl

import (
	"sort"
	"strings"

	"github.com/gs1-tools/syntax-engine/ai"
)

// KeyQualifierIndex is a sorted list of space-joined "K [Q1 [Q2 ...]]"
// path AI sequences, built once from an AI Dictionary and reused for the
// lifetime of an engine. Binary search makes both "is this path valid"
// and "would inserting this AI make it valid" O(log n).
type KeyQualifierIndex struct {
	sequences []string
}

// BuildIndex derives the full key-qualifier lattice from entries, reading
// each entry's "dlpkey" / "dlpkey=Q1,Q2|Q3" attribute tokens.
func BuildIndex(entries []*ai.Entry) *KeyQualifierIndex {
	var all []string
	for _, e := range entries {
		for _, token := range strings.Fields(e.Attrs) {
			switch {
			case token == "dlpkey":
				all = append(all, addChains(e.Code, "")...)
			case strings.HasPrefix(token, "dlpkey="):
				for _, chain := range strings.Split(token[len("dlpkey="):], "|") {
					all = append(all, addChains(e.Code, chain)...)
				}
			}
		}
	}
	sort.Strings(all)
	return &KeyQualifierIndex{sequences: all}
}

// addChains enumerates every prefix-preserving subsequence of the
// comma-separated qualifiers chain, as 2^n entries rooted at key.
func addChains(key, chain string) []string {
	var qualifiers []string
	if chain != "" {
		qualifiers = strings.Split(chain, ",")
	}
	entries := []string{key}
	for _, q := range qualifiers {
		n := len(entries)
		for k := 0; k < n; k++ {
			entries = append(entries, entries[k]+" "+q)
		}
	}
	return entries
}

// Contains reports whether seq (an ordered list of AI codes) is a
// recognised key-qualifier sequence.
func (idx *KeyQualifierIndex) Contains(seq []string) bool {
	return idx.indexOf(seq) != -1
}

func (idx *KeyQualifierIndex) indexOf(seq []string) int {
	joined := strings.Join(seq, " ")
	i := sort.SearchStrings(idx.sequences, joined)
	if i < len(idx.sequences) && idx.sequences[i] == joined {
		return i
	}
	return -1
}

// IsPrimaryKey reports whether code alone is a valid one-element
// key-qualifier sequence (i.e. a DL primary key).
func (idx *KeyQualifierIndex) IsPrimaryKey(code string) bool {
	return idx.Contains([]string{code})
}

// WouldBeValidAt reports whether inserting code at position j (0-indexed)
// within path (a path AI code sequence not containing code) would produce
// a recognised key-qualifier sequence.
func (idx *KeyQualifierIndex) WouldBeValidAt(path []string, j int, code string) bool {
	seq := make([]string, 0, len(path)+1)
	seq = append(seq, path[:j]...)
	seq = append(seq, code)
	seq = append(seq, path[j:]...)
	return idx.Contains(seq)
}

// BestChain finds the key-qualifier sequence starting with key that
// maximises the number of its qualifier AIs present in codesPresent
// (a set of AI codes carried by the parsed AI list), breaking ties by
// first occurrence in the sorted index.
func (idx *KeyQualifierIndex) BestChain(key string, codesPresent map[string]bool) []string {
	best := []string{key}
	bestCount := -1
	for _, s := range idx.sequences {
		fields := strings.Fields(s)
		if len(fields) == 0 || fields[0] != key {
			continue
		}
		count := 0
		for _, q := range fields[1:] {
			if codesPresent[q] {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = fields
		}
	}
	return best
}
