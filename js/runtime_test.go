package js

import (
	"strings"
	"testing"
)

func TestExecuteReturnsValue(t *testing.T) {
	r := NewRuntime()
	v, err := r.Execute("1 + 2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if v.ToInteger() != 3 {
		t.Errorf("Expected 3, got %v", v)
	}
}

func TestExecuteRecordsErrors(t *testing.T) {
	r := NewRuntime()
	var seen []error
	r.SetOnError(func(err error) { seen = append(seen, err) })

	if _, err := r.Execute("this is not javascript"); err == nil {
		t.Fatal("Expected a syntax error")
	}
	if len(r.Errors()) != 1 {
		t.Errorf("Expected 1 recorded error, got %d", len(r.Errors()))
	}
	if len(seen) != 1 {
		t.Errorf("Error callback should fire once, got %d", len(seen))
	}

	r.ClearErrors()
	if len(r.Errors()) != 0 {
		t.Error("ClearErrors should empty the list")
	}
}

func TestExecuteScriptNamesSource(t *testing.T) {
	r := NewRuntime()
	err := r.ExecuteScript("syntax error here", "page.js")
	if err == nil {
		t.Fatal("Expected a compile error")
	}
	if !strings.Contains(err.Error(), "page.js") {
		t.Errorf("Error should name the script source, got %v", err)
	}
	if err := r.ExecuteScript("var x = 40 + 2;", "page.js"); err != nil {
		t.Errorf("Valid script should run, got %v", err)
	}
	v, _ := r.Execute("x")
	if v.ToInteger() != 42 {
		t.Errorf("Script state should persist, got %v", v)
	}
}

func TestConsoleInstalled(t *testing.T) {
	r := NewRuntime()
	if _, err := r.Execute(`console.log("hello", 1, null, undefined)`); err != nil {
		t.Errorf("console.log should work, got %v", err)
	}
	if _, err := r.Execute(`console.warn("w"); console.error("e"); console.info("i")`); err != nil {
		t.Errorf("console methods should work, got %v", err)
	}
}
