package dl

import (
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestBuildIndexEnumeratesChains(t *testing.T) {
	w := expect.WrapT(t)
	_, idx := testDictAndIndex(t)

	w.As("bare key").ShouldBeEqual(idx.Contains([]string{"01"}), true)
	w.As("full chain").ShouldBeEqual(idx.Contains([]string{"01", "22", "10", "21"}), true)
	w.As("partial chain").ShouldBeEqual(idx.Contains([]string{"01", "10"}), true)
	w.As("out of order rejected").ShouldBeEqual(idx.Contains([]string{"01", "21", "22"}), false)
	w.As("unrelated sequence rejected").ShouldBeEqual(idx.Contains([]string{"01", "8003"}), false)
}

func TestIsPrimaryKey(t *testing.T) {
	w := expect.WrapT(t)
	_, idx := testDictAndIndex(t)

	w.As("gtin is a key").ShouldBeEqual(idx.IsPrimaryKey("01"), true)
	w.As("batch/lot is not a key").ShouldBeEqual(idx.IsPrimaryKey("10"), false)
}

func TestWouldBeValidAt(t *testing.T) {
	w := expect.WrapT(t)
	_, idx := testDictAndIndex(t)

	w.As("10 valid after 01").ShouldBeEqual(idx.WouldBeValidAt([]string{"01"}, 1, "10"), true)
	w.As("99 never valid in path").ShouldBeEqual(idx.WouldBeValidAt([]string{"01"}, 1, "99"), false)
}

func TestBestChain(t *testing.T) {
	w := expect.WrapT(t)
	_, idx := testDictAndIndex(t)

	chain := idx.BestChain("01", map[string]bool{"01": true, "22": true, "10": true, "21": true})
	w.As("full chain selected").ShouldBeEqual(len(chain), 4)
}
