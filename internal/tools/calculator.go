package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Calculator evaluates simple two-operand arithmetic expressions like
// "2 + 2" or "2 ** 3".
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Name() string {
	return "calculator"
}

func (c *Calculator) Description() string {
	return "Evaluates an arithmetic expression: a <op> b with op in + - * / ** ^"
}

func (c *Calculator) Execute(ctx context.Context, args map[string]any) (*Result, error) {
	expr, ok := args["expression"].(string)
	if !ok {
		return errResult("missing or invalid 'expression' argument"), nil
	}

	a, op, b, err := splitExpression(expr)
	if err != nil {
		return errResult("%v", err), nil
	}

	var result float64
	switch op {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			return errResult("division by zero"), nil
		}
		result = a / b
	case "**", "^":
		result = math.Pow(a, b)
	default:
		return errResult("unknown operator: %s", op), nil
	}

	return okResult(formatNumber(result)), nil
}

// splitExpression tokenizes "a op b". The ** operator is matched before *
// so "2 ** 3" does not parse as two products.
func splitExpression(expr string) (float64, string, float64, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return 0, "", 0, fmt.Errorf("expression must be of the form 'a op b', got %q", expr)
	}

	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("invalid left operand %q", fields[0])
	}
	b, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("invalid right operand %q", fields[2])
	}

	return a, fields[1], b, nil
}

// formatNumber drops the trailing ".0" of whole results so "2 + 2" says 4.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
