// Package bench drives the lab benchmarks and renders their reports.
//
// RunMatMul times every selected matrix kernel on one seeded operand pair and
// checks that the products agree within a tolerance. RunMaze loads one maze
// into every solver variant, times corner-to-corner and (optionally)
// edge-to-edge searches and checks that all variants give the same answer.
//
// Both runners accept a Repeat policy: Warmup untimed runs followed by Rounds
// timed runs, summarised as min, mean and standard deviation. The defaults
// (0 warm-ups, 1 round) reproduce a single measured run.
//
// Reports are collected in a Document, stamped with a run id and the host
// description, and written as text, CSV or JSON.
package bench
