package dl

import (
	"testing"

	"github.com/gs1-tools/syntax-engine/canon"
	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func defaultOpts() Options {
	return Options{PermitUnknownAIs: true}
}

func TestParseURISSCCPath(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	list, err := ParseURI("https://a/00/006141411234567890", d, idx, defaultOpts())
	w.ShouldSucceed(errAsError(err))
	w.As("canonical").ShouldBeEqual(canon.BuildCanonical(list), "^00006141411234567890")
}

func TestParseURIFullQualifierChain(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	list, err := ParseURI("https://a/01/12312312312333/22/TEST/10/ABC/21/XYZ", d, idx, defaultOpts())
	w.ShouldSucceed(errAsError(err))
	w.As("canonical").ShouldBeEqual(canon.BuildCanonical(list), "^011231231231233322TEST^10ABC^21XYZ")
}

func TestParseURIQueryAttributes(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	list, err := ParseURI("https://a/01/12312312312333?99=ABC&98=XYZ", d, idx, defaultOpts())
	w.ShouldSucceed(errAsError(err))
	w.As("canonical").ShouldBeEqual(canon.BuildCanonical(list), "^011231231231233399ABC^98XYZ")
}

func TestParseURIDuplicateAI(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	_, err := ParseURI("https://id.gs1.org/01/09520123456788/10/ABC123?99=XYZ789&01=09520123456788", d, idx, defaultOpts())
	w.As("duplicate AI detected").ShouldBeEqual(err != nil, true)
	if err != nil {
		w.As("code").ShouldBeEqual(err.Code, canon.DuplicateAI)
	}
}

func TestParseURIQualifierInQueryRejected(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	_, err := ParseURI("https://example.com/01/09520123456788?10=ABC123", d, idx, defaultOpts())
	w.As("placement error detected").ShouldBeEqual(err != nil, true)
	if err != nil {
		w.As("code").ShouldBeEqual(err.Code, canon.AIShouldBeInPathInfo)
	}
}

func TestParseURIIllegalScheme(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	_, err := ParseURI("ftp://a/01/12312312312333", d, idx, defaultOpts())
	w.As("bad scheme rejected").ShouldBeEqual(err != nil, true)
}

func TestParseURIMixedCaseSchemeRejected(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	_, err := ParseURI("Https://a/01/12312312312333", d, idx, defaultOpts())
	w.As("mixed case scheme rejected").ShouldBeEqual(err != nil, true)
}

func TestParseURINoPrimaryKeyInPath(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	_, err := ParseURI("https://a/10/ABC123", d, idx, defaultOpts())
	w.As("no key found").ShouldBeEqual(err != nil, true)
	if err != nil {
		w.As("code").ShouldBeEqual(err.Code, canon.NoGS1KeysFoundInPathInfo)
	}
}

func TestParseURIInputUnchanged(t *testing.T) {
	w := expect.WrapT(t)
	d, idx := testDictAndIndex(t)

	input := "https://a/01/12312312312333?99=ABC"
	before := input
	_, _ = ParseURI(input, d, idx, defaultOpts())
	w.As("caller's string unchanged").ShouldBeEqual(input, before)
}

func errAsError(e *canon.Error) error {
	if e == nil {
		return nil
	}
	return e
}
