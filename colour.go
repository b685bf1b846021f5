package itembuilder

import (
	"strings"
	"unicode/utf8"

	"github.com/sandertv/gophertunnel/minecraft/text"
)

// FormattingCode is the character that prefixes formatting codes in
// Minecraft text.
const FormattingCode = '§'

// formattingCodes are the codes recognised after a legacy marker: colours,
// Bedrock material colours, and the obfuscated, bold, italic and reset styles.
const formattingCodes = "0123456789abcdefghijklmnopqrstuv"

// Translator turns user supplied text into native Minecraft formatted text.
// It is applied to display names and to every lore line independently.
type Translator interface {
	Translate(s string) string
}

// TranslatorFunc adapts a function to a Translator.
type TranslatorFunc func(s string) string

// Translate ...
func (f TranslatorFunc) Translate(s string) string {
	return f(s)
}

// Legacy returns a translator that replaces marker-prefixed formatting codes,
// such as "&c", with their § form. Markers not followed by a known code are
// left untouched. Codes are case-insensitive.
func Legacy(marker rune) Translator {
	return TranslatorFunc(func(s string) string {
		if !strings.ContainsRune(s, marker) {
			return s
		}
		var b strings.Builder
		b.Grow(len(s) + 1)
		for i := 0; i < len(s); {
			r, size := rune(s[i]), 1
			if r >= utf8.RuneSelf {
				r, size = utf8.DecodeRuneInString(s[i:])
			}
			// Invalid bytes decode as RuneError with size 1 and are copied as is.
			if r == marker && size == utf8.RuneLen(marker) && i+size < len(s) {
				if code := toLower(rune(s[i+size])); strings.ContainsRune(formattingCodes, code) {
					b.WriteRune(FormattingCode)
					b.WriteByte(byte(code))
					i += size + 1
					continue
				}
			}
			b.WriteString(s[i : i+size])
			i += size
		}
		return b.String()
	})
}

// Tags returns a translator that renders gophertunnel colour tags, such as
// "<red>text</red>", into formatting codes.
func Tags() Translator {
	return TranslatorFunc(func(s string) string {
		if !strings.ContainsRune(s, '<') {
			return s
		}
		return colourf(strings.ReplaceAll(s, "%", "%%"))
	})
}

// Chain returns a translator applying each translator in order.
func Chain(ts ...Translator) Translator {
	return TranslatorFunc(func(s string) string {
		for _, t := range ts {
			s = t.Translate(s)
		}
		return s
	})
}

// colourf is text.Colourf called through a variable. Colourf escapes its
// arguments, so tagged text has to be passed as the format itself, which
// vet's printf check rejects on a direct call.
var colourf = text.Colourf

// DefaultTranslator is the translator used when none is configured: '&'
// legacy codes.
var DefaultTranslator = Legacy('&')

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
