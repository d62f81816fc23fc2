// Package econ computes the cost-effectiveness of an energy project.
//
// Given the project's initial cost, its expected life and the savings (or net
// revenue) it generates in its first year, the package derives the standard
// investment metrics:
//   - Rate of Return: the nominal internal rate of return (IRR) of the cash flow.
//   - Net Present Value: the cash flow discounted at the nominal discount rate.
//   - Benefit/Cost Ratio: discounted benefits divided by the initial cost.
//   - Simple Payback: the initial cost divided by the first year savings.
//
// It also produces the cumulative cash flow trajectory of the project, year by
// year, with no discounting.
//
// Savings escalate every year at the general inflation rate compounded with a
// savings escalation rate relative to inflation. The discount rate is given as
// a real rate and is combined with inflation to discount the nominal cash
// flow.
//
// The engine is a set of pure functions. [Analyze] runs the whole chain from a
// single [ProjectInputs] snapshot and is safe for concurrent use.
//
// This package serves as the foundational logic for the `econ` command-line
// tool.
package econ
