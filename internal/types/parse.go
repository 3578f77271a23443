package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dotandev/infc/internal/ast"
)

// Parse is the inverse of String for the builtin types and arrays of
// builtins: unit, bool, string, the eight numeric kinds, and "[T; N]"
// nested arbitrarily deep over those. Anything else (named, generic,
// function, qualified types) is out of scope for the round-trip property
// and returns an error -- those kinds never lose information to begin
// with, since they carry their own name rather than a reconstructed one.
func Parse(s string) (TypeInfo, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "unit":
		return UnitType(), nil
	case "bool":
		return BoolType(), nil
	case "string":
		return StringType(), nil
	}
	if kind, ok := ast.SimpleTypeKindFromName(s); ok && kind.IsNumeric() {
		return NumberType(kind), nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return parseArray(s)
	}
	return TypeInfo{}, fmt.Errorf("types: cannot parse %q as a builtin or array-of-builtin type", s)
}

func parseArray(s string) (TypeInfo, error) {
	inner := s[1 : len(s)-1]
	sep := strings.LastIndex(inner, ";")
	if sep < 0 {
		return TypeInfo{}, fmt.Errorf("types: malformed array type %q, expected \"[T; N]\"", s)
	}
	elemStr := strings.TrimSpace(inner[:sep])
	sizeStr := strings.TrimSpace(inner[sep+1:])

	elem, err := Parse(elemStr)
	if err != nil {
		return TypeInfo{}, err
	}
	size, err := strconv.ParseUint(sizeStr, 10, 32)
	if err != nil {
		return TypeInfo{}, fmt.Errorf("types: malformed array size in %q: %w", s, err)
	}
	return ArrayType(elem, uint32(size)), nil
}
