package rain

import (
	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// Segment splits text into user-perceived characters (grapheme clusters)
// When emojiVisible is false, emoji clusters are removed first so indices address the filtered text
// Pure: the result depends only on the arguments and is recomputed every tick
func Segment(text string, emojiVisible bool) []string {
	if text == "" {
		return nil
	}

	chars := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if !emojiVisible && gomoji.ContainsEmoji(cluster) {
			continue
		}
		chars = append(chars, cluster)
	}
	return chars
}
