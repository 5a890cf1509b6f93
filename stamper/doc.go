// Package stamper reads Bazel workspace status files and substitutes
// single-brace {VAR} placeholders in format strings. LoadStamps parses one or
// more status files into dialect parameters; Stamp combines loading and
// rendering through the brace dialect, so placeholders may carry defaults
// such as {BUILD_USER=ci}.
//
// Because formats go through the brace dialect, an empty tag such as the
// "{}" of a JSON object is a malformed placeholder and Stamp fails. The
// templating engine expands --variable values with plain tag substitution
// instead, which keeps "{}" and "{KEY=default}" verbatim.
package stamper
