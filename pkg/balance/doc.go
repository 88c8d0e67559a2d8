/*
Package balance implements the balancing pipeline: stoichiometry matrix
construction, exact null-space solving, and coefficient normalization.

The one entry point most callers need is Balance, which takes raw equation
text and returns a Result carrying the minimal positive integer coefficients
together with a Trace of the intermediate linear algebra for "show work"
rendering. Every function here is pure; concurrent calls on separate inputs
need no coordination.
*/
package balance
