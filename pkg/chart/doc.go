// Package chart defines the data model for bar charts.
//
// # Overview
//
// A [Chart] is an ordered list of field labels (the category axis) plus one
// or more [Dataset] values, each holding exactly one number per field. The
// order in which datasets are added is the order in which their bars are
// drawn, and in stacked mode the order in which they are layered.
//
// Rendering happens in sub-packages, leaves first:
//
//  1. Scale ([scale]): derive a "nice" tick increment and the value-axis ticks.
//  2. Axis ([axis]): expose the field labels as the category axis.
//  3. Geometry ([geometry]): turn each value into a rectangle.
//  4. Draw ([draw]): iterate fields × datasets and feed a sink.
//
// # Validation
//
// All preconditions are checked when the chart is built: a dataset whose
// length differs from the field count, a NaN or infinite value, or a
// non-positive scale division override is rejected with an
// [errors.ErrCodeInvalidDataset] or [errors.ErrCodeInvalidConfig] error.
// Nothing is truncated or padded.
//
//	c, err := chart.New([]string{"Jan", "Feb", "Mar"}, chart.Config{})
//	if err != nil {
//	    return err
//	}
//	if err := c.AddData(chart.Dataset{Title: "Sales 2002", Values: []float64{12, 45, 21}}); err != nil {
//	    return err
//	}
//
// [scale]: github.com/matzehuels/svgbar/pkg/chart/scale
// [axis]: github.com/matzehuels/svgbar/pkg/chart/axis
// [geometry]: github.com/matzehuels/svgbar/pkg/chart/geometry
// [draw]: github.com/matzehuels/svgbar/pkg/chart/draw
// [errors.ErrCodeInvalidDataset]: github.com/matzehuels/svgbar/pkg/errors
// [errors.ErrCodeInvalidConfig]: github.com/matzehuels/svgbar/pkg/errors
package chart
