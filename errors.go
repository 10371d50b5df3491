// Package gs1 implements the GS1 Barcode Syntax Engine: parsing and
// validating Application Identifier element strings (bracketed and
// unbracketed) and GS1 Digital Link URIs, and generating canonical
// Digital Link URIs from a set of parsed AIs.
//
// Small, independently testable leaf packages (ai, lint) compose
// through a shared data model (canon) into the higher-level codecs (dl)
// this package wires together.
package gs1

import (
	"github.com/gs1-tools/syntax-engine/canon"
	"github.com/gs1-tools/syntax-engine/lint"
)

// Code is the engine's flat error-code enumeration.
// It is a direct alias of canon.Code so that every package in this module
// reports failures through one vocabulary.
type Code = canon.Code

// LinterCode is the granular per-component linter failure enumeration.
type LinterCode = lint.Code

// Error is the engine's error value: a Code, a human-readable message,
// and -- when Code is LinterError -- the originating linter's code and
// its three-part "(AI)prefix|bad|suffix" markup string.
type Error = canon.Error

// Re-exported error codes, so callers need not import the canon package
// directly to compare against a returned Error's Code.
const (
	AIUnrecognised                       = canon.AIUnrecognised
	NoAIForPrefix                        = canon.NoAIForPrefix
	AIDataHasIncorrectLength             = canon.AIDataHasIncorrectLength
	AIDataIsTooLong                      = canon.AIDataIsTooLong
	AIValueContainsIllegalCharacters     = canon.AIValueContainsIllegalCharacters
	DuplicateAI                          = canon.DuplicateAI
	TooManyAIs                           = canon.TooManyAIs
	AINotPresentInDLpath                 = canon.AINotPresentInDLpath
	InvalidKeyQualifierSequence          = canon.InvalidKeyQualifierSequence
	AIShouldBeInPathInfo                 = canon.AIShouldBeInPathInfo
	AIIsNotValidDataAttribute            = canon.AIIsNotValidDataAttribute
	EmptyAIValue                         = canon.EmptyAIValue
	ValueContainsFNC1Character           = canon.ValueContainsFNC1Character
	CannotCreateDLURIWithoutPrimaryKeyAI = canon.CannotCreateDLURIWithoutPrimaryKeyAI
	InvalidAIPairs                       = canon.InvalidAIPairs
	RequiredAIsNotSatisfied              = canon.RequiredAIsNotSatisfied
	InstancesOfAIHaveDifferentValues     = canon.InstancesOfAIHaveDifferentValues
	SerialNotPresent                     = canon.SerialNotPresent
	LinterErrorCode                      = canon.LinterError
	URIContainsIllegalCharacters         = canon.URIContainsIllegalCharacters
	URISchemeMustBeHTTPorHTTPS           = canon.URISchemeMustBeHTTPorHTTPS
	URIContainsIllegalDomainCharacters   = canon.URIContainsIllegalDomainCharacters
	MissingDomainOrPathInfo              = canon.MissingDomainOrPathInfo
	NoGS1KeysFoundInPathInfo             = canon.NoGS1KeysFoundInPathInfo
	InvalidAIData                        = canon.InvalidAIData
)
