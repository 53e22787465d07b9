// Package compiler turns a declarative YAML schedule definition into
// validated IR, then into a live *stn.Schedule.
//
// Validation is fail-slow: Compile collects every error it can find
// rather than stopping at the first, the way a linter would, so a
// caller sees the full list of problems in one pass.
package compiler
