package clock

import (
	"context"
	"time"

	"github.com/reagentic/reagent/core/cost"
	"github.com/reagentic/reagent/providers/tool"
)

// timeLayout renders timestamps like "Monday, January 2, 2006 at 3:04 PM".
const timeLayout = "Monday, January 2, 2006 at 3:04 PM"

// NewClockTool returns a [tool.Tool] reporting the current local date and
// time. The now function is injectable for tests; pass nil for time.Now.
func NewClockTool(now func() time.Time) *tool.Tool[Input, Output] {
	if now == nil {
		now = time.Now
	}
	return tool.NewTool[Input, Output](
		"get_current_time",
		func(ctx context.Context, _ Input) (Output, error) {
			return Output{Time: "Current date and time: " + now().Format(timeLayout)}, nil
		},
		tool.WithDescription("Get the current date and time."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:          0.0,
			Currency:        "USD",
			CostDescription: "local clock read",
			Accuracy:        1.0,
		}),
	)
}

// Input is empty; the tool takes no arguments.
type Input struct{}

// Output carries the formatted current time.
type Output struct {
	Time string `json:"time" jsonschema:"description=Current date and time in a readable format"`
}
