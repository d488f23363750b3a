package merge

import (
	"strings"
	"testing"

	"github.com/tidewater-goods/catalogtools/models"
)

func TestDescriptionScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"nan literal", "nan", 0},
		{"plain text", "crystal", len("crystal")},
		{"sentence bonus", "A short one.", len("A short one.") + 50},
		{"detail bonus", strings.Repeat("x", 120), 120 + 100},
		{"both bonuses", strings.Repeat("x", 120) + ".", 121 + 50 + 100},
		// Length counts runes: 99 accented characters are 198 bytes but
		// must score 99 and stay under the detail threshold.
		{"accented text", strings.Repeat("é", 99), 99},
		{"accented detail bonus", strings.Repeat("é", 101), 101 + 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescriptionScore(tt.text); got != tt.want {
				t.Fatalf("DescriptionScore(%q)=%d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestDescriptionScorePrefersDetailOverSentence(t *testing.T) {
	short := "A short one."
	long := "A considerably longer description without punctuation that exceeds one hundred characters in total length"

	if DescriptionScore(long) <= DescriptionScore(short) {
		t.Fatalf("long description should outscore short one: %d vs %d",
			DescriptionScore(long), DescriptionScore(short))
	}
}

func TestDescriptionScoreCountsRunesNotBytes(t *testing.T) {
	accent := strings.Repeat("é", 99) // 99 chars, 198 bytes, no period
	ascii := strings.Repeat("x", 120) // 120 chars, detail bonus applies

	if got := DescriptionScore(accent); got != 99 {
		t.Fatalf("DescriptionScore(accented)=%d, want 99", got)
	}
	if DescriptionScore(accent) >= DescriptionScore(ascii) {
		t.Fatalf("99-char accented text must not beat 120-char text: %d vs %d",
			DescriptionScore(accent), DescriptionScore(ascii))
	}
}

func TestSEOScore(t *testing.T) {
	tests := []struct {
		name  string
		title string
		desc  string
		want  int
	}{
		{"both missing", "", "nan", 0},
		{"title only", "Moon Lamp", "", 100 + len("Moon Lamp")},
		{"desc only", "", "A lamp.", 100 + len("A lamp.")},
		{"both present", "Moon Lamp", "A lamp.", 200 + len("Moon Lamp") + len("A lamp.")},
		{"accented title counts runes", "Décor Lamp", "", 100 + 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SEOScore(tt.title, tt.desc); got != tt.want {
				t.Fatalf("SEOScore(%q, %q)=%d, want %d", tt.title, tt.desc, got, tt.want)
			}
		})
	}
}

func TestBestSourceTieGoesToEarlierSource(t *testing.T) {
	scores := map[models.Source]int{
		models.SourcePOS:    40,
		models.SourceWeb:    40,
		models.SourceLegacy: 10,
	}

	// Repeated scans must stay deterministic.
	for i := 0; i < 100; i++ {
		src, ok := bestSource(func(s models.Source) int { return scores[s] })
		if !ok {
			t.Fatal("expected a winner")
		}
		if src != models.SourcePOS {
			t.Fatalf("tie winner=%s, want pos", src)
		}
	}
}

func TestBestSourceAllZeroHasNoWinner(t *testing.T) {
	if _, ok := bestSource(func(models.Source) int { return 0 }); ok {
		t.Fatal("all-zero scores must report no winner")
	}
}
