// Package token classifies raw VDF lines into tokens.
//
// VDF is a line-oriented format: every structural element occupies one
// line. The tokenizer therefore works per line, matching each line
// against the four shapes of the grammar in priority order:
//
//  1. key-value: optional tabs, quoted key, two tabs, quoted value
//  2. key only: optional tabs, quoted key (opens an object)
//  3. "{" alone on the line
//  4. "}" alone on the line
//
// Any other line (blank lines, // comments, directives such as #include)
// tokenizes to TSkip and is ignored by the parser; unknown material is
// tolerated for forward compatibility, not rejected.
//
// Known grammar limitations, preserved from the format's real-world
// usage: keys may not contain whitespace, and a value containing a
// literal double-quote is matched greedily to the last quote on the
// line. Steam's own files avoid both.
//
// Leading tabs carry no structural meaning; nesting is conveyed by the
// brace lines alone.
package token
