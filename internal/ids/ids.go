// Package ids generates the identifiers used to name persisted artifacts.
package ids

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

var (
	reInvalid = regexp.MustCompile(`[^a-z0-9_]+`)
	reUnder   = regexp.MustCompile(`_+`)
	reRunID   = regexp.MustCompile(`^[0-9]{8}_[0-9]{6}_[a-z0-9_]+(_[0-9]+)?$`)
)

// tie breaks two runs started within the same wall-clock second for the
// same core, keyed by the exact (prefix, core) pair so an unrelated core or
// a different second never receives a spurious suffix.
var (
	tieMu sync.Mutex
	tie   = map[string]uint32{}
)

// NewRunID builds a run_id of the form YYYYMMDD_HHMMSS_<core>, appending a
// monotonic suffix (_1, _2, ...) if the same second/core pair is requested
// again within this process, so two rapid single-shot runs never collide.
func NewRunID(now time.Time, core string) string {
	prefix := now.UTC().Format("20060102_150405")
	c := SanitizeComponent(core)
	if c == "" {
		c = "core"
	}
	key := prefix + "_" + c

	tieMu.Lock()
	n := tie[key]
	tie[key] = n + 1
	tieMu.Unlock()

	if n == 0 {
		return fmt.Sprintf("%s_%s", prefix, c)
	}
	return fmt.Sprintf("%s_%s_%d", prefix, c, n)
}

// NewFuzzRunID builds the id for a batch fuzz run, reusing the same layout
// with a fixed "fuzz" component in place of a single core name.
func NewFuzzRunID(now time.Time) string {
	return fmt.Sprintf("%s_fuzz", now.UTC().Format("20060102_150405"))
}

func IsValidRunID(s string) bool {
	return reRunID.MatchString(strings.TrimSpace(s))
}

// SanitizeComponent lowercases s and keeps it to [a-z0-9_], collapsing runs
// of invalid characters into a single underscore.
func SanitizeComponent(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "-", "_")
	v = reInvalid.ReplaceAllString(v, "_")
	v = reUnder.ReplaceAllString(v, "_")
	return strings.Trim(v, "_")
}
