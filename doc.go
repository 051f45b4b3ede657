// Package pnc implements an exact and arbitrary-precision calculator for
// programs written in prefix notation.
//
// A program is a single expression: a number, a constant such as #pi, or a
// parenthesized call such as "(+ 1 (* 2 3))" whose first element names a
// function. With AutoWrap, the outer parentheses may be left off.
//
// Numbers are Integers, Rationals, or Reals, each shown in base 2, 8, 10, or
// 16 according to the literal that produced it. Arithmetic on mixed kinds
// promotes to the more general kind, so "(+ 1 1/2)" is the Rational 3/2 and
// "(+ 1/2 0.25)" is a Real. Division of Integers stays exact.
//
// Evaluation happens in an Env, which holds the available functions and
// constants. An Env never changes after it is created, so one Env can serve
// any number of concurrent evaluations.
package pnc
