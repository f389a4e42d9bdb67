package tool

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reagentic/reagent/core/cost"
)

type greetInput struct {
	Name string `json:"name" jsonschema:"description=Who to greet,required"`
}

type greetOutput struct {
	Greeting string `json:"greeting"`
}

func newGreetTool() *Tool[greetInput, greetOutput] {
	return NewTool("greet", func(ctx context.Context, in greetInput) (greetOutput, error) {
		if in.Name == "" {
			return greetOutput{}, errors.New("name is required")
		}
		return greetOutput{Greeting: "hello " + in.Name}, nil
	}, WithDescription("Greets a person by name."))
}

func TestNewTool_Info(t *testing.T) {
	info := newGreetTool().ToolInfo()

	if info.Name != "greet" {
		t.Errorf("unexpected name: %q", info.Name)
	}
	if info.Description != "Greets a person by name." {
		t.Errorf("unexpected description: %q", info.Description)
	}
	if info.Parameters == nil || info.Parameters.Properties["name"] == nil {
		t.Fatal("expected derived parameter schema with 'name' property")
	}
	if len(info.Parameters.Required) != 1 || info.Parameters.Required[0] != "name" {
		t.Errorf("expected 'name' required, got %v", info.Parameters.Required)
	}
}

func TestTool_Call(t *testing.T) {
	out, err := newGreetTool().Call(context.Background(), `{"name":"ada"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"greeting":"hello ada"}` {
		t.Errorf("unexpected output: %s", out)
	}
}

// Malformed model output still reaches the tool thanks to JSON repair.
func TestTool_CallRepairsInput(t *testing.T) {
	out, err := newGreetTool().Call(context.Background(), `{name: 'ada'}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "hello ada") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestTool_CallFunctionError(t *testing.T) {
	_, err := newGreetTool().Call(context.Background(), `{"name":""}`)
	if err == nil {
		t.Fatal("expected error from tool function")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTool_Metrics(t *testing.T) {
	withMetrics := NewTool("paid", func(ctx context.Context, in greetInput) (greetOutput, error) {
		return greetOutput{}, nil
	}, WithMetrics(cost.ToolMetrics{Amount: 0.01, Currency: "USD"}))

	m := withMetrics.GetMetrics()
	if m == nil || m.Amount != 0.01 {
		t.Errorf("unexpected metrics: %+v", m)
	}
	if newGreetTool().GetMetrics() != nil {
		t.Error("expected nil metrics when none configured")
	}
}

func TestCatalog_CaseInsensitive(t *testing.T) {
	catalog := NewCatalogWithTools(newGreetTool())

	if catalog.Size() != 1 {
		t.Fatalf("expected one tool, got %d", catalog.Size())
	}
	for _, name := range []string{"greet", "Greet", "GREET"} {
		if _, ok := catalog.Get(name); !ok {
			t.Errorf("expected lookup %q to succeed", name)
		}
		if !catalog.Has(name) {
			t.Errorf("expected Has(%q) to be true", name)
		}
	}
	if catalog.Has("unknown") {
		t.Error("expected Has to be false for unregistered tool")
	}
}

func TestCatalog_Replace(t *testing.T) {
	catalog := NewCatalog()
	catalog.AddTools(newGreetTool())
	catalog.AddTools(NewTool("GREET", func(ctx context.Context, in greetInput) (greetOutput, error) {
		return greetOutput{Greeting: "hi"}, nil
	}))

	if catalog.Size() != 1 {
		t.Errorf("expected replacement, got %d tools", catalog.Size())
	}
}

func TestCatalog_Remove(t *testing.T) {
	catalog := NewCatalogWithTools(newGreetTool())

	if !catalog.Remove("Greet") {
		t.Error("expected removal to succeed")
	}
	if catalog.Remove("greet") {
		t.Error("expected second removal to fail")
	}
	if catalog.Size() != 0 {
		t.Errorf("expected empty catalog, got %d", catalog.Size())
	}
}

func TestCatalog_DescriptionsSorted(t *testing.T) {
	mk := func(name string) GenericTool {
		return NewTool(name, func(ctx context.Context, in greetInput) (greetOutput, error) {
			return greetOutput{}, nil
		})
	}
	catalog := NewCatalogWithTools(mk("weather"), mk("add"), mk("calculator"))

	descs := catalog.Descriptions()
	if len(descs) != 3 {
		t.Fatalf("expected three descriptions, got %d", len(descs))
	}
	want := []string{"add", "calculator", "weather"}
	for i, d := range descs {
		if d.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], d.Name)
		}
	}
}

func TestCatalog_ToolsCopy(t *testing.T) {
	catalog := NewCatalogWithTools(newGreetTool())

	tools := catalog.Tools()
	delete(tools, "greet")

	if catalog.Size() != 1 {
		t.Error("mutating the returned map must not affect the catalog")
	}
}
