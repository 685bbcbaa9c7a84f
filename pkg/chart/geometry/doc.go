// Package geometry converts data values into bar rectangles.
//
// # Overview
//
// One [Engine] serves both orientations. What differs between a vertical and
// a horizontal chart is captured by a [Strategy]: which screen axis carries
// values, and in which direction each axis grows from its baseline. The
// layout itself (slot subdivision, bar gap, grouped vs stacked placement,
// sign handling) is shared.
//
// # Layout
//
// Of each category slot 80% is usable; the remainder separates groups. With
// the bar gap enabled a further min(10, usable/2) is taken off. Grouped bars
// split what is left evenly between datasets; stacked bars each take all of
// it and share one category origin.
//
// # Sign handling
//
// Values are measured from the effective minimum of the scale. A positive
// value spans from max(min, 0) to the value; a negative one from the value to
// zero. With a negative minimum both therefore grow away from the zero
// baseline in opposite directions:
//
//	fields  Jan  Feb
//	values   12   -8      division 5, effective min -10
//
//	Jan: 12/5 units above zero
//	Feb:  8/5 units below zero
//
// [Engine.Bar] is pure and panics when the division is not positive.
package geometry
