package prompts

import "slices"

var affirmativeAnswers = []string{"y", "yes"}
var negativeAnswers = []string{"n", "no"}

// parseAnswer maps a typed answer to yes/no. ok is false for anything that
// is neither, so the caller can ask again. An empty answer takes the default.
func parseAnswer(answer string, def bool) (yes bool, ok bool) {
	switch {
	case answer == "":
		return def, true
	case slices.Contains(affirmativeAnswers, answer):
		return true, true
	case slices.Contains(negativeAnswers, answer):
		return false, true
	default:
		return false, false
	}
}
