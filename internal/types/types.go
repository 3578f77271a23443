// Package types implements the value-type representation the checker
// reasons over: TypeInfo, a (kind, type_params) pair, plus substitution,
// generic-parameter detection, and display formatting. A TypeInfo holds no
// internal/ast node, since it outlives any one syntactic occurrence of a
// type (it is produced once per declaration site and then copied/compared
// freely); the package uses internal/ast for the primitive SimpleTypeKind
// names and, in FromTypeExpression, to convert an ast.TypeExpression.
package types

import (
	"strings"

	"github.com/dotandev/infc/internal/ast"
)

// Kind tags which variant of TypeInfo is populated.
type Kind int

const (
	Unit Kind = iota
	Bool
	String
	Number
	Array
	Custom
	Generic
	Struct
	Enum
	QualifiedName // an unresolved multi-segment path, e.g. a::b::C
	Qualified     // a resolved module-qualified reference, Mod::Name
	Function
	Spec
	// Unknown is the poisoned type produced by error recovery: compatible
	// with everything in a comparison, but never a valid substitution
	// binding and never displayed to the user as a real type.
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Unit:
		return "Unit"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Number:
		return "Number"
	case Array:
		return "Array"
	case Custom:
		return "Custom"
	case Generic:
		return "Generic"
	case Struct:
		return "Struct"
	case Enum:
		return "Enum"
	case QualifiedName:
		return "QualifiedName"
	case Qualified:
		return "Qualified"
	case Function:
		return "Function"
	case Spec:
		return "Spec"
	case Unknown:
		return "Unknown"
	}
	return "?"
}

// TypeInfo is the checker's value-type representation: a tagged union
// carried as a flat struct (cheap to copy, easy to compare structurally)
// rather than an interface hierarchy. Only the fields relevant to Kind are
// populated; the rest are zero.
type TypeInfo struct {
	Kind Kind

	// Number is valid when Kind == Number.
	Number ast.SimpleTypeKind

	// Name is valid when Kind is Custom, Generic, Struct, Enum, or Spec.
	Name string

	// Module + Name are valid when Kind == Qualified.
	Module string

	// Path is valid when Kind == QualifiedName (an import path not yet
	// resolved to a concrete module).
	Path []string

	// Elem + Size are valid when Kind == Array.
	Elem *TypeInfo
	Size uint32

	// Params + Return are valid when Kind == Function.
	Params []TypeInfo
	Return *TypeInfo

	// TypeParams is the list of bound type-parameter names relevant to
	// this type's carrier (e.g. a generic struct's own parameter list).
	// After a successful Substitute, it is empty.
	TypeParams []string
}

// UnitType, BoolType, StringType, and UnknownType are the zero-argument
// singleton constructors used throughout the checker.
func UnitType() TypeInfo   { return TypeInfo{Kind: Unit} }
func BoolType() TypeInfo   { return TypeInfo{Kind: Bool} }
func StringType() TypeInfo { return TypeInfo{Kind: String} }
func UnknownType() TypeInfo { return TypeInfo{Kind: Unknown} }

// NumberType builds a Number(n) type from one of the eight numeric
// SimpleTypeKind values.
func NumberType(n ast.SimpleTypeKind) TypeInfo {
	return TypeInfo{Kind: Number, Number: n}
}

// DefaultNumberType is i32, the type a bare number literal is given when no
// bidirectional expected type is available.
func DefaultNumberType() TypeInfo { return NumberType(ast.I32) }

// ArrayType builds an Array(elem, size) type.
func ArrayType(elem TypeInfo, size uint32) TypeInfo {
	return TypeInfo{Kind: Array, Elem: &elem, Size: size}
}

// CustomType builds an unresolved-by-this-package Custom(name) type,
// the checker's placeholder before it has resolved name to a Struct/Enum/
// Spec/Generic binding.
func CustomType(name string) TypeInfo { return TypeInfo{Kind: Custom, Name: name} }

// GenericType builds a Generic(name) type, a bound type-parameter
// reference awaiting substitution.
func GenericType(name string) TypeInfo { return TypeInfo{Kind: Generic, Name: name} }

// StructType, EnumType, and SpecType build a reference to a user-declared
// named type by kind.
func StructType(name string) TypeInfo { return TypeInfo{Kind: Struct, Name: name} }
func EnumType(name string) TypeInfo   { return TypeInfo{Kind: Enum, Name: name} }
func SpecType(name string) TypeInfo   { return TypeInfo{Kind: Spec, Name: name} }

// QualifiedNameType builds an unresolved module path reference.
func QualifiedNameType(path []string) TypeInfo {
	return TypeInfo{Kind: QualifiedName, Path: append([]string(nil), path...)}
}

// QualifiedType builds a resolved module-qualified reference Mod::Name.
func QualifiedType(module, name string) TypeInfo {
	return TypeInfo{Kind: Qualified, Module: module, Name: name}
}

// FunctionType builds a Function(signature) type.
func FunctionType(params []TypeInfo, ret TypeInfo) TypeInfo {
	return TypeInfo{Kind: Function, Params: params, Return: &ret}
}

// IsSignedInteger reports whether t is Number(i8|i16|i32|i64).
func (t TypeInfo) IsSignedInteger() bool {
	return t.Kind == Number && t.Number.IsSigned()
}

// IsUnsignedInteger reports whether t is Number(u8|u16|u32|u64).
func (t TypeInfo) IsUnsignedInteger() bool {
	return t.Kind == Number && t.Number.IsNumeric() && !t.Number.IsSigned()
}

// IsNumeric reports whether t is any Number kind.
func (t TypeInfo) IsNumeric() bool { return t.Kind == Number }

// HasUnresolvedParams reports whether t transitively contains a Generic.
func (t TypeInfo) HasUnresolvedParams() bool {
	switch t.Kind {
	case Generic:
		return true
	case Array:
		return t.Elem != nil && t.Elem.HasUnresolvedParams()
	case Function:
		if t.Return != nil && t.Return.HasUnresolvedParams() {
			return true
		}
		for _, p := range t.Params {
			if p.HasUnresolvedParams() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Substitute recursively replaces every Generic(x) whose name appears in
// subs with the mapped concrete type, rebuilding compound types
// structurally; everything else is left unchanged. The returned type's
// TypeParams is empty when every bound parameter name was present in subs.
func (t TypeInfo) Substitute(subs map[string]TypeInfo) TypeInfo {
	switch t.Kind {
	case Generic:
		if repl, ok := subs[t.Name]; ok {
			return repl
		}
		return t

	case Array:
		if t.Elem == nil {
			return t
		}
		elem := t.Elem.Substitute(subs)
		return ArrayType(elem, t.Size)

	case Function:
		params := make([]TypeInfo, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.Substitute(subs)
		}
		var ret TypeInfo
		if t.Return != nil {
			ret = t.Return.Substitute(subs)
		}
		return FunctionType(params, ret)

	default:
		out := t
		if len(t.TypeParams) > 0 {
			remaining := out.TypeParams[:0:0]
			for _, p := range t.TypeParams {
				if _, ok := subs[p]; !ok {
					remaining = append(remaining, p)
				}
			}
			out.TypeParams = remaining
		}
		return out
	}
}

// Equal reports structural equality: two types are equal when their kind
// and every populated field compare equal, recursively for compound kinds.
func (t TypeInfo) Equal(o TypeInfo) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.Number == o.Number
	case Custom, Generic, Struct, Enum, Spec:
		return t.Name == o.Name
	case Qualified:
		return t.Module == o.Module && t.Name == o.Name
	case QualifiedName:
		return equalStrings(t.Path, o.Path)
	case Array:
		if t.Size != o.Size {
			return false
		}
		if t.Elem == nil || o.Elem == nil {
			return t.Elem == o.Elem
		}
		return t.Elem.Equal(*o.Elem)
	case Function:
		if len(t.Params) != len(o.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equal(o.Params[i]) {
				return false
			}
		}
		if t.Return == nil || o.Return == nil {
			return t.Return == o.Return
		}
		return t.Return.Equal(*o.Return)
	default:
		return true
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders t's canonical printable form: the ten primitives display
// as their lowercase source name, arrays as "[T; N]", generics as "T'"
// standalone or appended after their carrier's name when parameterized.
func (t TypeInfo) String() string {
	switch t.Kind {
	case Unit:
		return "unit"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Number:
		return t.Number.String()
	case Array:
		elem := "?"
		if t.Elem != nil {
			elem = t.Elem.String()
		}
		return "[" + elem + "; " + itoa(t.Size) + "]"
	case Custom:
		return t.Name
	case Generic:
		return t.Name + "'"
	case Struct, Enum, Spec:
		return t.carrierString()
	case QualifiedName:
		return strings.Join(t.Path, "::")
	case Qualified:
		return t.Module + "::" + t.Name
	case Function:
		var sb strings.Builder
		sb.WriteByte('(')
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
		sb.WriteString(") -> ")
		if t.Return != nil {
			sb.WriteString(t.Return.String())
		} else {
			sb.WriteString("unit")
		}
		return sb.String()
	case Unknown:
		return "<unknown>"
	}
	return "?"
}

// carrierString renders a named carrier type (struct/enum/spec) with its
// bound type parameters, if any, appended as "X' Y'" after the name.
func (t TypeInfo) carrierString() string {
	if len(t.TypeParams) == 0 {
		return t.Name
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	for _, p := range t.TypeParams {
		sb.WriteByte(' ')
		sb.WriteString(p)
		sb.WriteByte('\'')
	}
	return sb.String()
}

func itoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
