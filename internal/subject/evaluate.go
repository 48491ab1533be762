package subject

import "github.com/ashwin/studytrack/internal/levels"

// MeetsRequirement reports whether a session with the given minutes
// satisfies the level's daily requirement. All three checks must pass:
// the per-category minimums and the combined total. The combined check
// is implied by the other two under the current catalog, but it is kept
// as an explicit clause so a future catalog with a separate combined
// threshold keeps working.
func MeetsRequirement(level, inputMinutes, outputMinutes int) bool {
	cfg := levels.Config(level)
	return inputMinutes >= cfg.InputMinutes &&
		outputMinutes >= cfg.OutputMinutes &&
		inputMinutes+outputMinutes >= cfg.InputMinutes+cfg.OutputMinutes
}
