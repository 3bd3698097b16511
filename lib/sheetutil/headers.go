package sheetutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

// similarity below which a fuzzy header match is considered noise
const fuzzyHeaderThreshold = 0.93

// UniqueKeys makes repeated raw headers addressable: the second
// occurrence of "Player" becomes "Player_2", the third "Player_3" and
// so on. First occurrences keep their raw (cleaned) text.
func UniqueKeys(raw []string) []string {
	count := map[string]int{}
	out := make([]string, len(raw))
	for i, h := range raw {
		key := Clean(h)
		count[key]++
		if count[key] == 1 {
			out[i] = key
		} else {
			out[i] = fmt.Sprintf("%s_%d", key, count[key])
		}
	}
	return out
}

// DisplayLabels maps each unique key back to a human label. Repeated
// purely-numeric headers get special treatment: the sheet carries two
// "2024" columns where the second one means "salaries till 2024", so
// only the second occurrence is relabeled and every other key just
// shows its base text.
func DisplayLabels(raw []string, keys []string) map[string]string {
	occurrences := map[string]int{}
	for _, h := range raw {
		occurrences[Clean(h)]++
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		base := key
		if i := strings.LastIndex(key, "_"); i >= 0 {
			if _, err := strconv.Atoi(key[i+1:]); err == nil {
				base = key[:i]
			}
		}

		pureNumber := base != "" && isDigits(base)
		if pureNumber && occurrences[base] > 1 && strings.HasSuffix(key, "_2") {
			out[key] = "salaries till " + base
			continue
		}
		out[key] = base
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// FindIndex locates a header by normalized equality. Returns -1 when
// absent; callers treat absence as "feature not available" and degrade.
func FindIndex(headers []string, label string) int {
	target := Norm(label)
	for i, h := range headers {
		if Norm(h) == target {
			return i
		}
	}
	return -1
}

// FindHeader resolves the first of `wanted` that matches one of
// `headers`. Each candidate gets an exact (cleaned) pass, then a
// normalized pass, then a Jaro-Winkler fuzzy pass over a conservative
// threshold. Returns "" when nothing matches.
func FindHeader(headers []string, wanted ...string) string {
	for _, w := range wanted {
		cw := Clean(w)
		for _, h := range headers {
			if Clean(h) == cw {
				return h
			}
		}
		nw := Norm(w)
		for _, h := range headers {
			if Norm(h) == nw {
				return h
			}
		}
	}
	for _, w := range wanted {
		nw := Norm(w)
		best := ""
		bestScore := 0.0
		for _, h := range headers {
			score := matchr.JaroWinkler(Norm(h), nw, false)
			if score > bestScore {
				bestScore = score
				best = h
			}
		}
		if bestScore >= fuzzyHeaderThreshold {
			return best
		}
	}
	return ""
}
