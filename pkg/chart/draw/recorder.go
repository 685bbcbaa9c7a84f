package draw

// Label is a recorded value-label call.
type Label struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Text  string  `json:"text"`
	Style string  `json:"style,omitempty"`
}

// Hover is a recorded hover-target call.
type Hover struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Recorder is a Sink that keeps every call it receives.
type Recorder struct {
	Bars   []Bar   `json:"bars"`
	Labels []Label `json:"labels"`
	Hovers []Hover `json:"hovers"`

	// Calls lists call kinds ("rect", "label", "hover") in arrival order.
	Calls []string `json:"-"`
}

func (r *Recorder) Rect(b Bar) {
	r.Bars = append(r.Bars, b)
	r.Calls = append(r.Calls, "rect")
}

func (r *Recorder) ValueLabel(x, y float64, text, style string) {
	r.Labels = append(r.Labels, Label{X: x, Y: y, Text: text, Style: style})
	r.Calls = append(r.Calls, "label")
}

func (r *Recorder) HoverTarget(x, y float64, text string) {
	r.Hovers = append(r.Hovers, Hover{X: x, Y: y, Text: text})
	r.Calls = append(r.Calls, "hover")
}
