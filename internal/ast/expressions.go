package ast

// Identifier is a reference to a name, resolved by the checker against the
// current scope chain.
type Identifier struct {
	base
	Name string
}

func (e *Identifier) expressionNode() {}

// UnitLiteral is the single value of type Unit, written `()`.
type UnitLiteral struct{ base }

func (e *UnitLiteral) expressionNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	base
	Value bool
}

func (e *BoolLiteral) expressionNode() {}

// StringLiteral is a quoted string literal.
type StringLiteral struct {
	base
	Value string
}

func (e *StringLiteral) expressionNode() {}

// NumberLiteral retains its textual form; parsing to an integer value is
// deliberately left to codegen (range-checking is not this core's job).
type NumberLiteral struct {
	base
	Text string
}

func (e *NumberLiteral) expressionNode() {}

// ArrayLiteral is `[e1, ..., eN]`.
type ArrayLiteral struct {
	base
	Elements []Expression
}

func (e *ArrayLiteral) expressionNode() {}

// BinaryExpression is `left OP right`.
type BinaryExpression struct {
	base
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

func (e *BinaryExpression) expressionNode() {}

// UnaryExpression is a prefix unary operator applied to an operand.
type UnaryExpression struct {
	base
	Operator UnaryOperator
	Operand  Expression
}

func (e *UnaryExpression) expressionNode() {}

// ParenExpression is a parenthesized expression, kept distinct so source
// spans and formatting round-trip even though it carries no own semantics.
type ParenExpression struct {
	base
	Inner Expression
}

func (e *ParenExpression) expressionNode() {}

// ArrayIndexExpression is `a[i]`.
type ArrayIndexExpression struct {
	base
	Array Expression
	Index Expression
}

func (e *ArrayIndexExpression) expressionNode() {}

// MemberAccessExpression is `a.b`, a struct field access.
type MemberAccessExpression struct {
	base
	Receiver Expression
	Member   string
}

func (e *MemberAccessExpression) expressionNode() {}

// TypeMemberAccessExpression is `T::V`, an enum variant access.
type TypeMemberAccessExpression struct {
	base
	TypeName string
	Member   string
}

func (e *TypeMemberAccessExpression) expressionNode() {}

// Argument is one positional-or-named call argument.
type Argument struct {
	Name  string // empty for positional arguments
	Value Expression
}

// CallExpression is a function or method call, with optional explicit type
// arguments for generic call sites.
type CallExpression struct {
	base
	Callee        Expression
	TypeArguments []TypeExpression
	Arguments     []Argument
}

func (e *CallExpression) expressionNode() {}

// StructFieldInit is one `name: value` field initializer in a struct literal.
type StructFieldInit struct {
	Name  string
	Value Expression
}

// StructLiteralExpression is `TypeName { field: value, ... }`.
type StructLiteralExpression struct {
	base
	TypeName string
	Fields   []StructFieldInit
}

func (e *StructLiteralExpression) expressionNode() {}

// UzumakiExpression is the distinguished nondeterministic placeholder: an
// arbitrary value of a type determined entirely by context. The checker
// assigns it a type from the bidirectional expected type; it carries no
// syntactic type of its own.
type UzumakiExpression struct{ base }

func (e *UzumakiExpression) expressionNode() {}
