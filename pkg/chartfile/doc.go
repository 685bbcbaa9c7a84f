// Package chartfile reads and writes chart definition files.
//
// A definition holds the field labels, the datasets and the chart options in
// one document, as JSON or TOML:
//
//	title  = "Sales"
//	fields = ["Jan", "Feb", "Mar"]
//	stack  = "grouped"
//
//	[[datasets]]
//	title = "Sales 2002"
//	data  = [12, 45, 21]
//
// The equivalent JSON uses the same keys. Unknown keys are rejected so that
// typos in option names do not go unnoticed.
//
// [Definition.Chart] validates the definition and builds a [chart.Chart];
// all chart-level checks (dataset length, finite values, positive scale
// division) happen there.
//
// [chart.Chart]: github.com/matzehuels/svgbar/pkg/chart.Chart
package chartfile
