package merge

import (
	"strings"
	"unicode/utf8"

	"github.com/tidewater-goods/catalogtools/models"
)

// The bonus constants below are exact business rules, tuned against the real
// catalogs. Changing them changes which source wins and therefore the
// published copy, so they are not knobs.
const (
	sentenceBonus   = 50  // text contains at least one period
	detailBonus     = 100 // text longer than detailThreshold characters
	detailThreshold = 100

	seoPresenceBonus = 100 // per present SEO part (title or description)
)

// DescriptionScore rates one candidate description. Missing values score 0;
// otherwise the score is the character length, plus a bonus for containing a
// complete sentence and another for being long enough to count as detailed.
// Lengths count runes, not bytes: catalog copy is full of curly quotes and
// accented letters, and byte counts would hand those texts an unearned edge.
func DescriptionScore(text string) int {
	if models.Missing(text) {
		return 0
	}
	length := utf8.RuneCountInString(text)
	score := length
	if strings.Contains(text, ".") {
		score += sentenceBonus
	}
	if length > detailThreshold {
		score += detailBonus
	}
	return score
}

// SEOScore rates an SEO title/description pair. Each present part is worth a
// flat presence bonus plus its length; the pair is scored as a unit because
// it is also copied as a unit.
func SEOScore(title, desc string) int {
	score := 0
	if models.Present(title) {
		score += seoPresenceBonus + utf8.RuneCountInString(title)
	}
	if models.Present(desc) {
		score += seoPresenceBonus + utf8.RuneCountInString(desc)
	}
	return score
}

// bestSource scans the fixed source order and returns the source with the
// highest score. A tie goes to the earlier source, and an all-zero field has
// no winner.
func bestSource(score func(models.Source) int) (models.Source, bool) {
	var winner models.Source
	best := 0
	for _, src := range models.Order {
		if s := score(src); s > best {
			best = s
			winner = src
		}
	}
	return winner, best > 0
}
