package ast

// Constructors for every heap-allocated node. The builder (internal/astbuild)
// never touches a node's embedded base directly — it goes through these so
// that id/location assignment stays centralized in this package.

func NewSourceFile(id NodeID, loc Location, directives []*UseDirective, defs []Definition) *SourceFile {
	return &SourceFile{base: newBase(id, loc), Directives: directives, Definitions: defs}
}

func NewUseDirective(id NodeID, loc Location, path []string, items []ImportItem, glob bool) *UseDirective {
	return &UseDirective{base: newBase(id, loc), Path: path, Items: items, Glob: glob}
}

func NewFunctionDefinition(id NodeID, loc Location, name string, vis Visibility, typeParams []string, params []Parameter, ret TypeExpression, body *Block) *FunctionDefinition {
	return &FunctionDefinition{base: newBase(id, loc), Name: name, Visibility: vis, TypeParameters: typeParams, Parameters: params, ReturnType: ret, Body: body}
}

func NewExternalFunctionDefinition(id NodeID, loc Location, name string, vis Visibility, typeParams []string, params []Parameter, ret TypeExpression) *ExternalFunctionDefinition {
	return &ExternalFunctionDefinition{base: newBase(id, loc), Name: name, Visibility: vis, TypeParameters: typeParams, Parameters: params, ReturnType: ret}
}

func NewStructDefinition(id NodeID, loc Location, name string, vis Visibility, fields []StructField, methods []*FunctionDefinition) *StructDefinition {
	return &StructDefinition{base: newBase(id, loc), Name: name, Visibility: vis, Fields: fields, Methods: methods}
}

func NewEnumDefinition(id NodeID, loc Location, name string, vis Visibility, variants []string) *EnumDefinition {
	return &EnumDefinition{base: newBase(id, loc), Name: name, Visibility: vis, Variants: variants}
}

func NewTypeDefinition(id NodeID, loc Location, name string, vis Visibility, aliased TypeExpression) *TypeDefinition {
	return &TypeDefinition{base: newBase(id, loc), Name: name, Visibility: vis, Aliased: aliased}
}

func NewConstantDefinition(id NodeID, loc Location, name string, vis Visibility, typ TypeExpression, value Expression) *ConstantDefinition {
	return &ConstantDefinition{base: newBase(id, loc), Name: name, Visibility: vis, Type: typ, Value: value}
}

func NewSpecDefinition(id NodeID, loc Location, name string, vis Visibility, defs []Definition) *SpecDefinition {
	return &SpecDefinition{base: newBase(id, loc), Name: name, Visibility: vis, Definitions: defs}
}

func NewModuleDefinition(id NodeID, loc Location, name string, vis Visibility, defs []Definition) *ModuleDefinition {
	return &ModuleDefinition{base: newBase(id, loc), Name: name, Visibility: vis, Definitions: defs}
}

func NewNamedParameter(id NodeID, loc Location, name string, mutable bool, typ TypeExpression) *NamedParameter {
	return &NamedParameter{base: newBase(id, loc), Name: name, Mutable: mutable, Type: typ}
}

func NewSelfParameter(id NodeID, loc Location, mutable bool) *SelfParameter {
	return &SelfParameter{base: newBase(id, loc), Mutable: mutable}
}

func NewIgnoredParameter(id NodeID, loc Location, typ TypeExpression) *IgnoredParameter {
	return &IgnoredParameter{base: newBase(id, loc), Type: typ}
}

func NewBlock(id NodeID, loc Location, kind BlockKind, stmts []Statement) *Block {
	return &Block{base: newBase(id, loc), Kind: kind, Statements: stmts}
}

func NewVarDefStatement(id NodeID, loc Location, name string, typ TypeExpression, init Expression, uzumaki bool) *VarDefStatement {
	return &VarDefStatement{base: newBase(id, loc), Name: name, Type: typ, Init: init, Uzumaki: uzumaki}
}

func NewAssignStatement(id NodeID, loc Location, target, value Expression) *AssignStatement {
	return &AssignStatement{base: newBase(id, loc), Target: target, Value: value}
}

func NewReturnStatement(id NodeID, loc Location, value Expression) *ReturnStatement {
	return &ReturnStatement{base: newBase(id, loc), Value: value}
}

func NewLoopStatement(id NodeID, loc Location, cond Expression, body *Block) *LoopStatement {
	return &LoopStatement{base: newBase(id, loc), Condition: cond, Body: body}
}

func NewBreakStatement(id NodeID, loc Location) *BreakStatement {
	return &BreakStatement{base: newBase(id, loc)}
}

func NewIfStatement(id NodeID, loc Location, cond Expression, then, els *Block) *IfStatement {
	return &IfStatement{base: newBase(id, loc), Condition: cond, Then: then, Else: els}
}

func NewAssertStatement(id NodeID, loc Location, cond Expression) *AssertStatement {
	return &AssertStatement{base: newBase(id, loc), Condition: cond}
}

func NewExpressionStatement(id NodeID, loc Location, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{base: newBase(id, loc), Expr: expr}
}

func NewNestedTypeDefStatement(id NodeID, loc Location, def *TypeDefinition) *NestedTypeDefStatement {
	return &NestedTypeDefStatement{base: newBase(id, loc), Def: def}
}

func NewNestedConstDefStatement(id NodeID, loc Location, def *ConstantDefinition) *NestedConstDefStatement {
	return &NestedConstDefStatement{base: newBase(id, loc), Def: def}
}

func NewNestedBlockStatement(id NodeID, loc Location, body *Block) *NestedBlockStatement {
	return &NestedBlockStatement{base: newBase(id, loc), Body: body}
}

func NewIdentifier(id NodeID, loc Location, name string) *Identifier {
	return &Identifier{base: newBase(id, loc), Name: name}
}

func NewUnitLiteral(id NodeID, loc Location) *UnitLiteral {
	return &UnitLiteral{base: newBase(id, loc)}
}

func NewBoolLiteral(id NodeID, loc Location, value bool) *BoolLiteral {
	return &BoolLiteral{base: newBase(id, loc), Value: value}
}

func NewStringLiteral(id NodeID, loc Location, value string) *StringLiteral {
	return &StringLiteral{base: newBase(id, loc), Value: value}
}

func NewNumberLiteral(id NodeID, loc Location, text string) *NumberLiteral {
	return &NumberLiteral{base: newBase(id, loc), Text: text}
}

func NewArrayLiteral(id NodeID, loc Location, elems []Expression) *ArrayLiteral {
	return &ArrayLiteral{base: newBase(id, loc), Elements: elems}
}

func NewBinaryExpression(id NodeID, loc Location, left Expression, op BinaryOperator, right Expression) *BinaryExpression {
	return &BinaryExpression{base: newBase(id, loc), Left: left, Operator: op, Right: right}
}

func NewUnaryExpression(id NodeID, loc Location, op UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{base: newBase(id, loc), Operator: op, Operand: operand}
}

func NewParenExpression(id NodeID, loc Location, inner Expression) *ParenExpression {
	return &ParenExpression{base: newBase(id, loc), Inner: inner}
}

func NewArrayIndexExpression(id NodeID, loc Location, arr, index Expression) *ArrayIndexExpression {
	return &ArrayIndexExpression{base: newBase(id, loc), Array: arr, Index: index}
}

func NewMemberAccessExpression(id NodeID, loc Location, recv Expression, member string) *MemberAccessExpression {
	return &MemberAccessExpression{base: newBase(id, loc), Receiver: recv, Member: member}
}

func NewTypeMemberAccessExpression(id NodeID, loc Location, typeName, member string) *TypeMemberAccessExpression {
	return &TypeMemberAccessExpression{base: newBase(id, loc), TypeName: typeName, Member: member}
}

func NewCallExpression(id NodeID, loc Location, callee Expression, typeArgs []TypeExpression, args []Argument) *CallExpression {
	return &CallExpression{base: newBase(id, loc), Callee: callee, TypeArguments: typeArgs, Arguments: args}
}

func NewStructLiteralExpression(id NodeID, loc Location, typeName string, fields []StructFieldInit) *StructLiteralExpression {
	return &StructLiteralExpression{base: newBase(id, loc), TypeName: typeName, Fields: fields}
}

func NewUzumakiExpression(id NodeID, loc Location) *UzumakiExpression {
	return &UzumakiExpression{base: newBase(id, loc)}
}

func NewCustomType(id NodeID, loc Location, name string) *CustomType {
	return &CustomType{base: newBase(id, loc), Name: name}
}

func NewQualifiedType(id NodeID, loc Location, mod, name string) *QualifiedType {
	return &QualifiedType{base: newBase(id, loc), Module: mod, Name: name}
}

func NewGenericType(id NodeID, loc Location, base_ string, params []TypeExpression) *GenericType {
	return &GenericType{base: newBase(id, loc), Base: base_, Parameters: params}
}

func NewArrayTypeNode(id NodeID, loc Location, elem TypeExpression, size uint32) *ArrayTypeNode {
	return &ArrayTypeNode{base: newBase(id, loc), ElementType: elem, Size: size}
}

func NewFunctionTypeNode(id NodeID, loc Location, params []TypeExpression, ret TypeExpression) *FunctionTypeNode {
	return &FunctionTypeNode{base: newBase(id, loc), Parameters: params, ReturnType: ret}
}

func NewSimpleType(loc Location, kind SimpleTypeKind) SimpleType {
	return SimpleType{Kind: kind, loc: loc}
}
