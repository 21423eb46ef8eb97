// Package calc implements a small expression calculator: an eager scanner,
// a recursive-descent parser, and a tree-walking evaluator over 64-bit
// integer and floating-point values.
//
// Integer arithmetic with +, -, * and % is exact and checked for overflow;
// / and ^ always compute in floating point, and ^ is right-associative with
// unary sign binding weaker, so "-2 ^ 2" is -4. A fixed set of functions
// (abs, sqrt, pow, sin, cos, tan, log, ln) and the constants pi and e are
// built in.
//
// Every fault is a typed error carrying the byte offset of the offending
// token; Locate and Annotate turn offsets into line/column caret
// diagnostics for presentation.
package calc
