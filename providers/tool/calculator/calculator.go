package calculator

import (
	"context"
	"strconv"

	"github.com/reagentic/reagent/core/cost"
	"github.com/reagentic/reagent/providers/tool"
)

// localMetrics marks a tool as free in-process computation.
func localMetrics() cost.ToolMetrics {
	return cost.ToolMetrics{
		Amount:                  0.0,
		Currency:                "USD",
		CostDescription:         "local computation",
		Accuracy:                1.0,
		AverageDurationInMillis: 1,
	}
}

// NewCalculatorTool returns a [tool.Tool] that evaluates free-form
// mathematical expressions via [Evaluate]. Evaluation failures are reported
// in the tool's output text rather than as execution errors, so the model can
// read the problem and correct its expression on the next turn.
func NewCalculatorTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		"calculator",
		Calc,
		tool.WithDescription("Evaluate a mathematical expression. Supports + - * / % ** operators, parentheses, and the functions sqrt, pow, sin, cos, tan, log, log10, exp, abs, round, plus the constants pi and e."),
		tool.WithMetrics(localMetrics()),
	)
}

// Calc evaluates req.Expression and formats the outcome the way the model
// expects to read it: "Result: <value>" on success, or an
// "Error evaluating expression: ..." line describing what went wrong.
//
// Example:
//
//	out, _ := Calc(ctx, calculator.Input{Expression: "sqrt(16) * 3"})
//	fmt.Println(out.Result) // Result: 12
func Calc(ctx context.Context, req Input) (Output, error) {
	value, err := Evaluate(req.Expression)
	if err != nil {
		return Output{Result: "Error evaluating expression: " + err.Error()}, nil
	}
	return Output{Result: "Result: " + FormatNumber(value)}, nil
}

// FormatNumber renders v with the shortest representation that round-trips,
// so whole numbers print without a trailing ".0".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Input holds the expression to evaluate.
type Input struct {
	Expression string `json:"expression" jsonschema:"description=A mathematical expression to evaluate (e.g. \"2 + 2\" or \"sqrt(16)\"),required"`
}

// Output carries the formatted result line produced by [Calc].
type Output struct {
	Result string `json:"result" jsonschema:"description=The result of the evaluation"`
}

// NewAddTool returns a [tool.Tool] that adds two numbers. It overlaps with
// the calculator on purpose; a narrow tool gives the model a cheap path for
// the common case.
func NewAddTool() *tool.Tool[PairInput, Output] {
	return tool.NewTool[PairInput, Output](
		"add",
		Add,
		tool.WithDescription("Add two numbers together."),
		tool.WithMetrics(localMetrics()),
	)
}

// NewMultiplyTool returns a [tool.Tool] that multiplies two numbers.
func NewMultiplyTool() *tool.Tool[PairInput, Output] {
	return tool.NewTool[PairInput, Output](
		"multiply",
		Multiply,
		tool.WithDescription("Multiply two numbers together."),
		tool.WithMetrics(localMetrics()),
	)
}

// Add returns the sum of req.A and req.B.
func Add(ctx context.Context, req PairInput) (Output, error) {
	return Output{Result: "Result: " + FormatNumber(req.A+req.B)}, nil
}

// Multiply returns the product of req.A and req.B.
func Multiply(ctx context.Context, req PairInput) (Output, error) {
	return Output{Result: "Result: " + FormatNumber(req.A*req.B)}, nil
}

// PairInput holds the two operands used by the add and multiply tools.
type PairInput struct {
	A float64 `json:"a" jsonschema:"description=First number,required"`
	B float64 `json:"b" jsonschema:"description=Second number,required"`
}
