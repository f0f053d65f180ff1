// Package calculation provides the arithmetic evaluator: a closed set of
// operations, two-operand computation and the infix expression parser.
package calculation

// Arity is the number of operands an operation consumes.
type Arity int

// Supported arities.
const (
	Unary Arity = iota + 1
	Binary
)

// Operation is a member of the fixed operation set.
type Operation int

// Supported operations.
const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpSqrt
	OpSin
	OpCos
	OpTan
	OpLog10
	OpLn
)

type operationInfo struct {
	symbol string
	name   string
	arity  Arity
}

var operations = map[Operation]operationInfo{
	OpAdd:      {symbol: "+", name: "add", arity: Binary},
	OpSubtract: {symbol: "-", name: "subtract", arity: Binary},
	OpMultiply: {symbol: "*", name: "multiply", arity: Binary},
	OpDivide:   {symbol: "/", name: "divide", arity: Binary},
	OpSqrt:     {symbol: "sqrt", name: "sqrt", arity: Unary},
	OpSin:      {symbol: "sin", name: "sin", arity: Unary},
	OpCos:      {symbol: "cos", name: "cos", arity: Unary},
	OpTan:      {symbol: "tan", name: "tan", arity: Unary},
	OpLog10:    {symbol: "log", name: "log10", arity: Unary},
	OpLn:       {symbol: "ln", name: "ln", arity: Unary},
}

// tokens maps every accepted spelling to its operation. Lookups are
// case-sensitive: "+" and "add" are valid, "ADD" is not.
var tokens = func() map[string]Operation {
	m := make(map[string]Operation, 2*len(operations))
	for op, info := range operations {
		m[info.symbol] = op
		m[info.name] = op
	}
	return m
}()

// ParseOperation resolves an operation token. Unrecognized tokens yield an
// *Error of kind ErrUnknownOperation.
func ParseOperation(token string) (Operation, error) {
	if op, ok := tokens[token]; ok {
		return op, nil
	}
	return 0, newError(ErrUnknownOperation, "Unknown operation: "+token, nil)
}

// Operations returns every supported operation in declaration order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for op := OpAdd; op <= OpLn; op++ {
		ops = append(ops, op)
	}
	return ops
}

// String returns the canonical token, e.g. "+" or "sqrt".
func (o Operation) String() string {
	if info, ok := operations[o]; ok {
		return info.symbol
	}
	return "unknown"
}

// Name returns the descriptive name, e.g. "add" or "log10".
func (o Operation) Name() string {
	if info, ok := operations[o]; ok {
		return info.name
	}
	return "unknown"
}

// Arity reports how many operands the operation needs.
func (o Operation) Arity() Arity {
	return operations[o].arity
}

// Valid reports whether o is a member of the operation set.
func (o Operation) Valid() bool {
	_, ok := operations[o]
	return ok
}
