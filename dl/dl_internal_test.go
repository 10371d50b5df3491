package dl

import (
	"testing"

	"github.com/gs1-tools/syntax-engine/ai"
)

func testDictAndIndex(t *testing.T) (*ai.Dictionary, *KeyQualifierIndex) {
	t.Helper()
	d, err := ai.NewDictionary(ai.DefaultEntries())
	if err != nil {
		t.Fatalf("building test dictionary: %v", err)
	}
	return d, BuildIndex(d.Entries())
}
