package model

// Window is the serializable snapshot of one OS window.
type Window struct {
	Handle    string   `yaml:"hwnd"                json:"hwnd"`
	Class     string   `yaml:"class"               json:"class"`
	Title     string   `yaml:"title"               json:"title"`
	Bounds    [4]int   `yaml:"bounds,flow"         json:"bounds"`
	Parent    string   `yaml:"parent,omitempty"    json:"parent,omitempty"`
	PID       int      `yaml:"pid"                 json:"pid"`
	TID       int      `yaml:"tid"                 json:"tid"`
	Visible   bool     `yaml:"visible"             json:"visible"`
	Minimized bool     `yaml:"minimized,omitempty" json:"minimized,omitempty"`
	ModernApp bool     `yaml:"modern,omitempty"    json:"modern,omitempty"`
	ExStyle   []string `yaml:"exstyle,omitempty,flow" json:"exstyle,omitempty"`
	TopLevel  bool     `yaml:"toplevel"            json:"toplevel"`
	Focused   bool     `yaml:"focused,omitempty"   json:"focused,omitempty"`
}

// Verdict is the classification outcome for one window.
type Verdict struct {
	Window   Window `yaml:"window"           json:"window"`
	TopLevel bool   `yaml:"toplevel"         json:"toplevel"`
	Rule     int    `yaml:"rule,omitempty"   json:"rule,omitempty"`
	Reason   string `yaml:"reason,omitempty" json:"reason,omitempty"`
}
