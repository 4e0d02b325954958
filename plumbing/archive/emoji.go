package main

import (
	"html/template"
	"strings"

	"go.uber.org/zap"
)

// emojiImage is the data behind the "emoji" template
type emojiImage struct {
	Shortcode string
	Src       template.URL
}

// withEmoji replaces every ":shortcode:" in text with an inline image of the
// cached emoji. Emoji without a local copy are left as text. Replacement is
// a single left-to-right pass, so inserted markup is never scanned again and
// an earlier emoji wins over a later one with the same shortcode.
func (r *Renderer) withEmoji(text string, emojis []Emoji) string {
	if text == "" || len(emojis) == 0 {
		return text
	}

	var pairs []string
	for _, emoji := range emojis {
		if emoji.Shortcode == "" {
			continue
		}
		token := ":" + emoji.Shortcode + ":"
		if !strings.Contains(text, token) {
			continue
		}

		src := r.media.Resolve(emoji.URL, "", NoPlaceholder)
		if src == "" {
			continue
		}

		img, err := execute("emoji", emojiImage{Shortcode: emoji.Shortcode, Src: template.URL(src)})
		if err != nil {
			r.log.Warn("rendering emoji", zap.String("shortcode", emoji.Shortcode), zap.Error(err))
			continue
		}
		pairs = append(pairs, token, img)
	}

	if len(pairs) == 0 {
		return text
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
