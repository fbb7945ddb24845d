// Package geometry answers three small shape questions: can three lengths
// form a triangle, do two axis-aligned rectangles overlap, and does a point
// lie inside a circle.
//
// Rectangles use canvas coordinates: Top grows downwards, Left grows to the
// right. All comparisons are strict, so shapes that merely touch do not
// overlap and a point on a circle's boundary is outside it.
package geometry
