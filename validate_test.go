package gs1

import (
	"testing"

	"github.com/gs1-tools/syntax-engine/canon"
	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestMutexAIs(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	_, _, err := ParseBracketed("(01)12312312312333(3921)100(3922)200", d, false)
	w.StopOnMismatch().As("exclusive pair rejected").ShouldBeEqual(err != nil, true)
	w.As("code").ShouldBeEqual(err.Code, canon.InvalidAIPairs)

	// An AI never excludes itself through its own wildcard prefix.
	_, _, err = ParseBracketed("(01)12312312312333(3921)100", d, false)
	w.As("single member of the family accepted").ShouldBeEqual(asErr(err), nil)
}

func TestRequisiteAIs(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	_, _, err := ParseBracketed("(02)12312312312333", d, false)
	w.StopOnMismatch().As("content without count rejected").ShouldBeEqual(err != nil, true)
	w.As("code").ShouldBeEqual(err.Code, canon.RequiredAIsNotSatisfied)

	_, _, err = ParseBracketed("(02)12312312312333(37)24", d, false)
	w.As("content with count accepted").ShouldBeEqual(asErr(err), nil)
}

func TestRequisiteAIsPlusGroup(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	// 8030's "01+21" group: both members must be present for the group to
	// count; 01 alone satisfies nothing, but the standalone "00" group does.
	_, _, err := ParseBracketed("(8030)QUJDREVG(01)12312312312333", d, false)
	w.StopOnMismatch().As("partial plus-group rejected").ShouldBeEqual(err != nil, true)
	w.As("code").ShouldBeEqual(err.Code, canon.RequiredAIsNotSatisfied)

	_, _, err = ParseBracketed("(8030)QUJDREVG(01)12312312312333(21)XYZ", d, false)
	w.As("complete plus-group accepted").ShouldBeEqual(asErr(err), nil)

	_, _, err = ParseBracketed("(8030)QUJDREVG(00)006141411234567890", d, false)
	w.As("alternative group accepted").ShouldBeEqual(asErr(err), nil)
}

func TestRepeatedAIs(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	_, _, err := ParseBracketed("(10)ABC(10)XYZ", d, false)
	w.StopOnMismatch().As("differing repeats rejected").ShouldBeEqual(err != nil, true)
	w.As("code").ShouldBeEqual(err.Code, canon.InstancesOfAIHaveDifferentValues)

	_, _, err = ParseBracketed("(10)ABC(10)ABC", d, false)
	w.As("identical repeats accepted").ShouldBeEqual(asErr(err), nil)
}

func TestDigSigRequiresSerialisedKey(t *testing.T) {
	w := expect.WrapT(t)
	d := testDict(t)

	_, _, err := ParseBracketed("(8030)QUJDREVG(253)1234567890128", d, false)
	w.StopOnMismatch().As("bare GDTI with signature rejected").ShouldBeEqual(err != nil, true)
	w.As("code").ShouldBeEqual(err.Code, canon.SerialNotPresent)

	_, _, err = ParseBracketed("(8030)QUJDREVG(253)1234567890128XYZ", d, false)
	w.As("serialised GDTI with signature accepted").ShouldBeEqual(asErr(err), nil)

	_, _, err = ParseBracketed("(253)1234567890128", d, false)
	w.As("bare GDTI without signature accepted").ShouldBeEqual(asErr(err), nil)
}
