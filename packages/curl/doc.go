// Package curl parses shell-style curl invocations into typed tokens and
// structured requests.
//
// The parsing engine is a set of small backtracking combinators: each
// parser consumes a prefix of its input and returns the unconsumed
// remainder plus a parsed value, or fails without consuming anything so
// the caller can try an alternative.
//
// The package handles:
//   - Single-quoted, double-quoted, and bare argument values
//   - Backslash line continuations
//   - Short and long flag aliases (-X / --request, -H / --header, ...)
//   - Flags that mandatorily consume a following value
//   - URL decomposition into protocol, userinfo, host, path, query,
//     and fragment
//
// Parsing is pure and synchronous: every parse is a function of its input
// string, with static lookup tables as the only shared state.
package curl
