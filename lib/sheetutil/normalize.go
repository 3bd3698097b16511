package sheetutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var punctuationRegex = regexp.MustCompile(`[’'".,()/\\\-_:;!?]+`)

// Clean strips carriage returns and surrounding whitespace. Every cell
// that comes out of a sheet goes through this first.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}

// Norm is the shared identity rule for cross-referencing entities:
// trim, collapse whitespace, case-fold. Players, teams and headers all
// compare equal under Norm before anything fuzzier is attempted.
func Norm(s string) string {
	s = Clean(s)
	s = strings.ToLower(s)
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// NormFuzzy is Norm plus punctuation stripping. Used where hand-typed
// names must match sheet cells ("Kevin O'Neal" vs "kevin oneal").
func NormFuzzy(s string) string {
	return punctuationRegex.ReplaceAllString(Norm(s), "")
}

var headerReplacer = strings.NewReplacer(
	"\r", " ",
	" ", " ",
	"％", "%",
	"’", "", "'", "", "“", "", "”", "", `"`, "",
	"–", "-", "—", "-",
	"∕", "/",
)

// NormHeader folds the unicode lookalikes that show up in hand-typed
// header cells (NBSP, fullwidth percent, smart quotes, long dashes)
// before applying Norm.
func NormHeader(s string) string {
	return Norm(headerReplacer.Replace(s))
}

var typeReplacer = strings.NewReplacer(
	" ", "",
	" ", "", "\t", "", "\n", "",
	"-", "", "_", "", "–", "", "—", "",
)

// CanonType canonicalizes a transaction type so that "Buy-out",
// "Buy–out" and "Buy out" all compare equal.
func CanonType(s string) string {
	return typeReplacer.Replace(strings.ToLower(Clean(s)))
}
