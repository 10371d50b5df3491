package gs1

import (
	"github.com/pkg/errors"

	"github.com/gs1-tools/syntax-engine/ai"
	"github.com/gs1-tools/syntax-engine/canon"
	"github.com/gs1-tools/syntax-engine/dl"
)

// Engine holds the state shared across parse and generate operations: a
// dictionary binding, the key-qualifier index derived from it, the
// active configuration flags, and the validation toggle table. It is
// built once with a binding and reused across many independent
// Parse/Generate calls.
//
// Engine is not safe for concurrent use by multiple goroutines without
// external synchronization; distinct Engine values share no state.
type Engine struct {
	dict *ai.Dictionary
	idx  *dl.KeyQualifierIndex

	permitUnknownAIs                 bool
	permitZeroSuppressedGTINinDLuris bool
	includeDataTitlesInHRI           bool

	validation [numValidations]validationEntry
}

// NewEngine builds an Engine bound to the embedded default AI dictionary.
func NewEngine() (*Engine, error) {
	return NewEngineWithDictionary(ai.DefaultEntries())
}

// NewEngineWithDictionary builds an Engine bound to a caller-supplied set
// of AI entries. Replacing the dictionary on an existing Engine is done
// with SetDictionary, which tears down and rebuilds the key-qualifier
// index the same way this constructor does.
func NewEngineWithDictionary(entries []*ai.Entry) (*Engine, error) {
	e := &Engine{validation: defaultValidationTable()}
	if err := e.SetDictionary(entries); err != nil {
		return nil, err
	}
	return e, nil
}

// SetDictionary rebuilds the Engine's dictionary binding and the
// key-qualifier index derived from it. A caller-supplied dictionary that
// fails to build (duplicate or prefix-conflicting AI codes) leaves the
// Engine's previous binding untouched.
func (e *Engine) SetDictionary(entries []*ai.Entry) error {
	d, err := ai.NewDictionary(entries)
	if err != nil {
		return errors.Wrap(err, "building AI dictionary")
	}
	e.dict = d
	e.idx = dl.BuildIndex(d.Entries())
	return nil
}

// Dictionary returns the Engine's bound AI dictionary.
func (e *Engine) Dictionary() *ai.Dictionary { return e.dict }

// SetPermitUnknownAIs controls whether AI lookup vivifies pseudo-entries
// for codes absent from the dictionary.
func (e *Engine) SetPermitUnknownAIs(v bool) { e.permitUnknownAIs = v }

// PermitUnknownAIs reports the current setting.
func (e *Engine) PermitUnknownAIs() bool { return e.permitUnknownAIs }

// SetPermitZeroSuppressedGTINinDLuris controls whether an 8/12/13-digit
// GTIN value found in DL *path* position is zero-padded to 14 digits.
// Query-position GTINs are always padded regardless of this setting.
func (e *Engine) SetPermitZeroSuppressedGTINinDLuris(v bool) { e.permitZeroSuppressedGTINinDLuris = v }

// PermitZeroSuppressedGTINinDLuris reports the current setting.
func (e *Engine) PermitZeroSuppressedGTINinDLuris() bool { return e.permitZeroSuppressedGTINinDLuris }

// SetIncludeDataTitlesInHRI is accepted for configuration-surface parity
// but has no effect: human-readable-interpretation presentation is out of
// scope for this engine.
func (e *Engine) SetIncludeDataTitlesInHRI(v bool) { e.includeDataTitlesInHRI = v }

// IncludeDataTitlesInHRI reports the current setting.
func (e *Engine) IncludeDataTitlesInHRI() bool { return e.includeDataTitlesInHRI }

// SetValidationEnabled toggles one of the cross-AI validators. It fails
// for a locked validator: MutexAIs, RepeatedAIs and DigSigSerialKey can
// never be disabled because doing so would let an Engine silently
// tolerate data that violates the General Specifications.
func (e *Engine) SetValidationEnabled(code ValidationCode, enabled bool) error {
	if code < 0 || code >= numValidations {
		return errors.Errorf("unknown validation code %d", int(code))
	}
	if e.validation[code].locked && e.validation[code].enabled != enabled {
		return errors.Errorf("validation %d is locked and cannot be changed", int(code))
	}
	e.validation[code].enabled = enabled
	return nil
}

// ValidationEnabled reports whether a validator currently runs.
func (e *Engine) ValidationEnabled(code ValidationCode) bool {
	if code < 0 || code >= numValidations {
		return false
	}
	return e.validation[code].enabled
}

// ParseBracketed parses human-authored bracketed AI syntax and returns
// both the parsed-AI list and the canonical unbracketed buffer it was
// built from.
func (e *Engine) ParseBracketed(input string) ([]canon.ParsedAI, string, *canon.Error) {
	return parseBracketed(input, e.dict, e.permitUnknownAIs, e.validation)
}

// ParseUnbracketed validates and extracts AIs from the canonical
// unbracketed form.
func (e *Engine) ParseUnbracketed(input string) ([]canon.ParsedAI, *canon.Error) {
	return parseUnbracketed(input, e.dict, e.permitUnknownAIs, true, e.validation)
}

// ParseDLURI decodes a GS1 Digital Link URI into a parsed-AI list, then
// runs the cross-AI validators over the result.
func (e *Engine) ParseDLURI(input string) ([]canon.ParsedAI, *canon.Error) {
	list, err := dl.ParseURI(input, e.dict, e.idx, dl.Options{
		PermitUnknownAIs:                 e.permitUnknownAIs,
		PermitZeroSuppressedGTINinDLuris: e.permitZeroSuppressedGTINinDLuris,
		UnknownAINotDLAttrEnabled:        e.ValidationEnabled(UnknownAINotDLAttr),
	})
	if err != nil {
		return nil, err
	}
	if verr := runValidations(list, e.validation); verr != nil {
		return nil, verr
	}
	return list, nil
}

// GenerateDLURI synthesises a canonical DL URI for a parsed-AI list,
// choosing the best-matching key-qualifier sequence and placing every
// other AI in the query string. stem defaults to dl.DefaultStem when
// empty.
func (e *Engine) GenerateDLURI(list []canon.ParsedAI, stem string) (string, *canon.Error) {
	return dl.GenerateURI(list, stem, e.idx, e.ValidationEnabled(UnknownAINotDLAttr))
}
