package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/wintree/internal/platform"
)

// Parameter extraction helpers for MCP tool arguments.

func StringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// JSON clients may send handles as numbers
		if f, ok := v.(float64); ok && f == float64(int64(f)) {
			return fmt.Sprintf("%d", int64(f))
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func IntParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func BoolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// handleParam reads an optional window handle argument.
func handleParam(params map[string]interface{}, key string) (platform.Handle, error) {
	s := strings.TrimSpace(StringParam(params, key, ""))
	if s == "" {
		return platform.NoHandle, nil
	}
	return platform.ParseHandle(s)
}

// listOptionsFromParams builds list options from MCP tool arguments.
func listOptionsFromParams(params map[string]interface{}) (platform.ListOptions, error) {
	opts := platform.ListOptions{
		All:      BoolParam(params, "all", false),
		NoIgnore: BoolParam(params, "no-ignore", false),
		PID:      IntParam(params, "pid", 0),
		Class:    StringParam(params, "class", ""),
		Title:    StringParam(params, "title", ""),
	}
	parent, err := handleParam(params, "parent")
	if err != nil {
		return opts, err
	}
	opts.Parent = parent
	if bbox := StringParam(params, "bbox", ""); bbox != "" {
		b, err := platform.ParseBBox(bbox)
		if err != nil {
			return opts, err
		}
		opts.BBox = b
	}
	return opts, nil
}
