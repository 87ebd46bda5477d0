// Package commands defines the labbench CLI.
//
// Commands
//
//   - matmul   Time naive, BLAS and blocked complex matrix products and check they agree
//   - maze     Time BFS over array, linked-list and slice solvers on one maze
//   - version  Print build and host information
//
// # Implementation
//
// The root command builds the structured logger from --verbose and
// --log-format before any subcommand runs. Subcommands map their flags onto
// bench configs, run them with the command context (cancelled on Ctrl-C)
// and write the report to stdout. Errors are printed by cobra as
// "Error: <msg>" on stderr and make main exit with status 1.
package commands
