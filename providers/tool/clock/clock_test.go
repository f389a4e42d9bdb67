package clock

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestClockTool_FixedTime(t *testing.T) {
	fixed := time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC)
	clockTool := NewClockTool(func() time.Time { return fixed })

	out, err := clockTool.Call(context.Background(), `{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Current date and time: Friday, March 14, 2025 at 3:09 PM") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestClockTool_DefaultsToNow(t *testing.T) {
	clockTool := NewClockTool(nil)

	out, err := clockTool.Call(context.Background(), `{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Current date and time:") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestClockTool_Info(t *testing.T) {
	info := NewClockTool(nil).ToolInfo()
	if info.Name != "get_current_time" {
		t.Errorf("unexpected name: %q", info.Name)
	}
}
