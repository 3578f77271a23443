// Package diagnostics implements the tagged diagnostic model the type
// checker reports through: a single Kind enum covering registration,
// inference, and structural errors, merged from the distinct "lexer
// error / parser error / analysis error" layering a hand-rolled compiler
// often grows into one flat tag set, since every diagnostic here is
// reported by a single phase (check.Checker) rather than several.
package diagnostics

import (
	"fmt"

	"github.com/dotandev/infc/internal/ast"
)

// Kind tags the structured payload a Diagnostic carries.
type Kind int

const (
	TypeMismatch Kind = iota
	UnknownType
	UnknownIdentifier
	UndefinedFunction
	UndefinedStruct
	UndefinedEnum
	FieldNotFound
	VariantNotFound
	MethodNotFound
	ArgumentCountMismatch
	TypeParameterCountMismatch
	MissingTypeParameters
	InvalidBinaryOperand
	InvalidUnaryOperand
	BinaryOperandTypeMismatch
	SelfReferenceInFunction
	SelfReferenceOutsideMethod
	ImportResolutionFailed
	CircularImport
	EmptyGlobImport
	RegistrationFailed
	ExpectedArrayType
	ExpectedStructType
	ExpectedEnumType
	MethodCallOnNonStruct
	ArrayIndexNotNumeric
	ArrayElementTypeMismatch
	CannotInferUzumakiType
	CannotInferTypeParameter
	ConflictingTypeInference
	PrivateAccessViolation
	InstanceMethodCalledAsAssociated
	AssociatedFunctionCalledAsMethod
)

var kindNames = [...]string{
	"TypeMismatch", "UnknownType", "UnknownIdentifier", "UndefinedFunction",
	"UndefinedStruct", "UndefinedEnum", "FieldNotFound", "VariantNotFound",
	"MethodNotFound", "ArgumentCountMismatch", "TypeParameterCountMismatch",
	"MissingTypeParameters", "InvalidBinaryOperand", "InvalidUnaryOperand",
	"BinaryOperandTypeMismatch", "SelfReferenceInFunction", "SelfReferenceOutsideMethod",
	"ImportResolutionFailed", "CircularImport", "EmptyGlobImport", "RegistrationFailed",
	"ExpectedArrayType", "ExpectedStructType", "ExpectedEnumType", "MethodCallOnNonStruct",
	"ArrayIndexNotNumeric", "ArrayElementTypeMismatch", "CannotInferUzumakiType",
	"CannotInferTypeParameter", "ConflictingTypeInference", "PrivateAccessViolation",
	"InstanceMethodCalledAsAssociated", "AssociatedFunctionCalledAsMethod",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Diagnostic is one reported problem: a tag, a human-readable message, and
// the source location it applies to. Context is an optional structured
// payload (e.g. a FieldContext for a PrivateAccessViolation on a struct
// field) carried alongside the flattened message for callers that want to
// pattern-match rather than substring-search.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Location ast.Location
	Context  any
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped anywhere a Go error is expected.
func (d Diagnostic) Error() string { return d.Format() }

// Format renders "{line}:{column}: {message}", the display form tests may
// substring-match against.
func (d Diagnostic) Format() string {
	return d.Location.String() + ": " + d.Message
}

// key is the deduplication identity: (Kind, Message, Location).
type key struct {
	kind Kind
	msg  string
	loc  ast.Location
}

// Collector accumulates diagnostics across the registration and checking
// phases, collapsing exact (Kind, Message, Location) duplicates -- the
// same error reported at the same site more than once (e.g. once per
// redundant traversal of a shared subexpression) surfaces only once.
type Collector struct {
	seen  map[key]struct{}
	items []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[key]struct{})}
}

// Add records d unless an identical (Kind, Message, Location) diagnostic
// has already been recorded.
func (c *Collector) Add(d Diagnostic) {
	k := key{kind: d.Kind, msg: d.Message, loc: d.Location}
	if _, ok := c.seen[k]; ok {
		return
	}
	c.seen[k] = struct{}{}
	c.items = append(c.items, d)
}

// Addf builds and adds a Diagnostic from a fmt-style message.
func (c *Collector) Addf(kind Kind, loc ast.Location, format string, args ...any) {
	c.Add(Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc})
}

// Items returns every distinct diagnostic recorded so far, in the order
// first added.
func (c *Collector) Items() []Diagnostic { return c.items }

// Len reports how many distinct diagnostics have been recorded.
func (c *Collector) Len() int { return len(c.items) }
