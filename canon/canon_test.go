package canon

import (
	"testing"

	"github.com/gs1-tools/syntax-engine/ai"
	"github.com/gs1-tools/syntax-engine/lint"
	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestBuildCanonicalFixedThenVariable(t *testing.T) {
	w := expect.WrapT(t)

	gtin := &ai.Entry{Code: "01", RequiresFNC1: false}
	cpv := &ai.Entry{Code: "22", RequiresFNC1: true}
	batch := &ai.Entry{Code: "10", RequiresFNC1: true}
	serial := &ai.Entry{Code: "21", RequiresFNC1: true}

	list := []ParsedAI{
		{Kind: KindAIValue, Entry: gtin, AI: "01", Value: "12312312312333"},
		{Kind: KindAIValue, Entry: cpv, AI: "22", Value: "TEST"},
		{Kind: KindAIValue, Entry: batch, AI: "10", Value: "ABC"},
		{Kind: KindAIValue, Entry: serial, AI: "21", Value: "XYZ"},
	}

	got := BuildCanonical(list)
	w.As("canonical buffer").ShouldBeEqual(got, "^011231231231233322TEST^10ABC^21XYZ")
}

func TestBuildCanonicalSkipsDLIgnored(t *testing.T) {
	w := expect.WrapT(t)

	sscc := &ai.Entry{Code: "00", RequiresFNC1: false}
	list := []ParsedAI{
		{Kind: KindAIValue, Entry: sscc, AI: "00", Value: "006141411234567890"},
		{Kind: KindDLIgnored, Value: "foo"},
	}
	got := BuildCanonical(list)
	w.As("ignored entries excluded").ShouldBeEqual(got, "^00006141411234567890")
}

func TestCodeString(t *testing.T) {
	w := expect.WrapT(t)
	w.As("known code").ShouldBeEqual(DuplicateAI.String(), "DUPLICATE_AI")
}

func TestNewLinterErrorMarkup(t *testing.T) {
	w := expect.WrapT(t)
	r := lint.Result{Code: lint.IncorrectCheckDigit, ErrPos: 13, ErrLen: 1}
	err := NewLinterError("01", "12345678901234", r)
	w.As("code").ShouldBeEqual(err.Code, LinterError)
	w.As("markup").ShouldBeEqual(err.Markup, "(01)1234567890123|4|")
}
