// Where: params/expression.go
// What: CEL expressions over declared parameters.
// Why: Comparisons and ternaries are evaluated by the deployment tool,
//      not locally; here they only need to print correctly.
package params

import (
	"fmt"
	"strings"
)

// Expression is anything that can appear in a CEL placeholder.
type Expression interface {
	// Expr returns the bare CEL text, without delimiters.
	Expr() string
}

// CEL wraps an expression in the placeholder delimiters understood by
// the deployment tool.
func CEL(e Expression) string {
	return "{{ " + e.Expr() + " }}"
}

// CompareExpression is a binary comparison between a parameter and a
// literal or another expression.
type CompareExpression struct {
	LHS Expression
	Op  string
	RHS any
}

func (c CompareExpression) Expr() string {
	return c.LHS.Expr() + " " + c.Op + " " + literal(c.RHS)
}

func (c CompareExpression) String() string { return CEL(c) }

// Then builds a ternary selecting between two values based on this
// comparison.
func (c CompareExpression) Then(ifTrue, ifFalse any) TernaryExpression {
	return TernaryExpression{Cond: c, IfTrue: ifTrue, IfFalse: ifFalse}
}

// TernaryExpression selects one of two values based on a condition.
type TernaryExpression struct {
	Cond    Expression
	IfTrue  any
	IfFalse any
}

func (t TernaryExpression) Expr() string {
	return t.Cond.Expr() + " ? " + literal(t.IfTrue) + " : " + literal(t.IfFalse)
}

func (t TernaryExpression) String() string { return CEL(t) }

// Equals compares the parameter with a value.
func (p *Param) Equals(v any) CompareExpression {
	return CompareExpression{LHS: p, Op: "==", RHS: v}
}

// NotEquals compares the parameter with a value.
func (p *Param) NotEquals(v any) CompareExpression {
	return CompareExpression{LHS: p, Op: "!=", RHS: v}
}

// GreaterThan compares the parameter with a value.
func (p *Param) GreaterThan(v any) CompareExpression {
	return CompareExpression{LHS: p, Op: ">", RHS: v}
}

// LessThan compares the parameter with a value.
func (p *Param) LessThan(v any) CompareExpression {
	return CompareExpression{LHS: p, Op: "<", RHS: v}
}

// literal renders a Go value as CEL source. Expressions print their
// bare text so they can nest.
func literal(v any) string {
	switch t := v.(type) {
	case Expression:
		return t.Expr()
	case string:
		return `"` + strings.ReplaceAll(t, `"`, `\"`) + `"`
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
