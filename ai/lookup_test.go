package ai

import (
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func testDict(t *testing.T) *Dictionary {
	d, err := NewDictionary(DefaultEntries())
	if err != nil {
		t.Fatalf("building test dictionary: %v", err)
	}
	return d
}

func TestLookupKnownAI(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	e, ok := d.Lookup("0112312312312333", 0, false)
	w.As("found").ShouldBeEqual(ok, true)
	w.As("code").ShouldBeEqual(e.Code, "01")
}

func TestLookupExactLenMismatch(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	_, ok := d.Lookup("0112312312312333", 3, false)
	w.As("wrong exact length rejected").ShouldBeEqual(ok, false)
}

func TestLookupUnknownAIRejectedWithoutVivification(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	_, ok := d.Lookup("77001234", 0, false)
	w.As("unknown AI rejected").ShouldBeEqual(ok, false)
}

func TestLookupVivifiesGenericUnknownAI(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	// No AI in the default dictionary starts with "77", so that prefix has
	// no declared length; when permitted, the lookup falls back to the
	// generic-unknown pseudo-entry (declared length indeterminate).
	e, ok := d.Lookup("77001234", 0, true)
	w.As("vivified").ShouldBeEqual(ok, true)
	w.As("unknown class").ShouldBeEqual(e.DLAttr, DLAttrUnknown)
	w.As("length indeterminate").ShouldBeEqual(e.Code, "")
}

func TestLookupRefusesToShadowKnownLongerAI(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	// "80" is a proper prefix of many known 4-digit AIs (8003, 8004, ...),
	// so exactLen=2 must never vivify it even when permitted.
	_, ok := d.Lookup("8000000000000000", 2, true)
	w.As("refuses to shadow").ShouldBeEqual(ok, false)
}

func TestLookupOutOfRangeExactLen(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	_, ok := d.Lookup("0112312312312333", 5, true)
	w.As("exactLen out of [2,4] rejected").ShouldBeEqual(ok, false)
}

func TestLookupVivifiesWithExactLength(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	// An unknown prefix with no declared length takes its code length from
	// the caller (a bracketed or DL parse knows exactly where the AI ends).
	e, ok := d.Lookup("891", 3, true)
	w.StopOnMismatch().As("vivified").ShouldBeEqual(ok, true)
	w.As("code").ShouldBeEqual(e.Code, "891")
	w.As("variable length assumed").ShouldBeEqual(e.RequiresFNC1, true)
	w.As("unknown class").ShouldBeEqual(e.DLAttr, DLAttrUnknown)
}
