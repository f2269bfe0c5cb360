package cmd

import (
	"testing"

	"github.com/mj1618/wintree/internal/platform"
)

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{
		"s":   "0x10",
		"num": float64(131072),
		"b":   true,
	}
	tests := []struct {
		key  string
		want string
	}{
		{"s", "0x10"},
		{"num", "131072"},
		{"b", "true"},
		{"missing", "def"},
	}
	for _, tt := range tests {
		if got := StringParam(params, tt.key, "def"); got != tt.want {
			t.Errorf("StringParam(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestIntParam(t *testing.T) {
	params := map[string]interface{}{
		"f": float64(42),
		"i": 7,
		"s": "9",
	}
	if got := IntParam(params, "f", 0); got != 42 {
		t.Errorf("float64: got %d", got)
	}
	if got := IntParam(params, "i", 0); got != 7 {
		t.Errorf("int: got %d", got)
	}
	if got := IntParam(params, "s", -1); got != -1 {
		t.Errorf("string should fall back to default, got %d", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"yes": true, "str": "true"}
	if !BoolParam(params, "yes", false) {
		t.Error("expected true")
	}
	if BoolParam(params, "str", false) {
		t.Error("non-bool value should fall back to default")
	}
	if !BoolParam(params, "missing", true) {
		t.Error("expected default")
	}
}

func TestListOptionsFromParams(t *testing.T) {
	opts, err := listOptionsFromParams(map[string]interface{}{
		"all":       true,
		"parent":    float64(16),
		"no-ignore": true,
		"pid":       float64(100),
		"class":     "Notepad",
		"bbox":      "0,0,10,10",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.All || !opts.NoIgnore || opts.Parent != platform.Handle(16) || opts.PID != 100 || opts.Class != "Notepad" {
		t.Errorf("got %+v", opts)
	}
	if opts.BBox == nil || *opts.BBox != [4]int{0, 0, 10, 10} {
		t.Errorf("got bbox %v", opts.BBox)
	}

	if _, err := listOptionsFromParams(map[string]interface{}{"parent": "xyz"}); err == nil {
		t.Error("expected error for malformed parent")
	}
	if _, err := listOptionsFromParams(map[string]interface{}{"bbox": "1,2"}); err == nil {
		t.Error("expected error for malformed bbox")
	}
}
