package itembuilder

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/enchantment"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sirupsen/logrus"
)

// Builder applies a chain of mutations to a single Item.
// Use New or NewType to create a builder, chain configuration methods, and
// finish with Build.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	item Item
	tr   Translator
	l    logrus.FieldLogger
}

// New creates a builder wrapping an existing item.
func New(it Item) *Builder {
	return &Builder{item: it, tr: DefaultTranslator, l: discardLogger()}
}

// NewType creates a builder wrapping a fresh item of the type passed with an
// amount of 1.
func NewType(t world.Item) *Builder {
	return New(NewItem(t, 1))
}

// SetType replaces the item type. Amount and meta are left untouched.
func (b *Builder) SetType(t world.Item) *Builder {
	b.item.SetType(t)
	return b
}

// WithType is an alias of SetType.
func (b *Builder) WithType(t world.Item) *Builder {
	return b.SetType(t)
}

// WithAmount sets the stack quantity to exactly n. Callers are responsible for
// keeping n in a range the game accepts.
func (b *Builder) WithAmount(n int) *Builder {
	b.item.SetAmount(n)
	return b
}

// WithFlags adds the flags passed to the flags already present.
func (b *Builder) WithFlags(flags ...Flag) *Builder {
	m := b.item.Meta()
	m.Flags = m.Flags.Or(NewFlagSet(flags...))
	b.item.SetMeta(m)
	return b
}

// WithName sets the display name after translating colour codes.
func (b *Builder) WithName(name string) *Builder {
	m := b.item.Meta()
	m.DisplayName = b.tr.Translate(name)
	b.item.SetMeta(m)
	return b
}

// TrySetSkullOwner sets the owner of a skull item and reports whether it
// did. For any other item the builder is left unchanged and false is
// returned.
func (b *Builder) TrySetSkullOwner(p Profile) bool {
	if !IsSkull(b.item.Type()) {
		return false
	}
	m := b.item.Meta()
	m.Owner = &Owner{UUID: p.UUID(), Name: p.Name()}
	b.item.SetMeta(m)
	return true
}

// SetSkullOwner sets the owner of a skull item. It is a no-op for items
// that are not skulls.
func (b *Builder) SetSkullOwner(p Profile) *Builder {
	if !b.TrySetSkullOwner(p) {
		b.l.WithField("type", typeName(b.item.Type())).Debug("Skull owner ignored for non-skull item.")
	}
	return b
}

// WithLore replaces the lore with the lines passed, each colour-translated.
func (b *Builder) WithLore(lines ...string) *Builder {
	m := b.item.Meta()
	m.Lore = make([]string, len(lines))
	for i, line := range lines {
		m.Lore[i] = b.tr.Translate(line)
	}
	b.item.SetMeta(m)
	return b
}

// WithLoreReplacing replaces the lore with the lines passed after
// substituting placeholders. Replacements are consumed as (find, replace)
// pairs formatted with fmt.Sprint; a trailing unpaired value is ignored.
// Each pair replaces every occurrence before the next pair runs, so a later
// pair also sees text introduced by an earlier one. Colour codes are
// translated last.
//
//	b.WithLoreReplacing([]string{"&7Owner: %owner%"}, "%owner%", p.Name())
func (b *Builder) WithLoreReplacing(lines []string, replacements ...any) *Builder {
	replaced := make([]string, len(lines))
	for i, line := range lines {
		replaced[i] = replacePairs(line, replacements)
	}
	return b.WithLore(replaced...)
}

// ClearLore sets the lore to an empty sequence.
func (b *Builder) ClearLore() *Builder {
	m := b.item.Meta()
	m.Lore = []string{}
	b.item.SetMeta(m)
	return b
}

// enchantConfig holds the settings of a single enchantment call.
type enchantConfig struct {
	restricted bool
}

// EnchantOption configures WithEnchantment and Enchant.
type EnchantOption func(*enchantConfig)

// Restricted makes the enchantment call honour the rules the game normally
// applies: the enchantment must be compatible with the item type and with
// the enchantments already present, and the level may not exceed the
// maximum. An enchantment breaking these rules is not added.
func Restricted() EnchantOption {
	return func(c *enchantConfig) {
		c.restricted = true
	}
}

// WithEnchantment adds the enchantment at the level passed, overwriting an
// existing one of the same type. Unless Restricted is passed, no
// compatibility or level checks are made.
func (b *Builder) WithEnchantment(t item.EnchantmentType, level int, opts ...EnchantOption) *Builder {
	var conf enchantConfig
	for _, opt := range opts {
		opt(&conf)
	}

	m := b.item.Meta()
	if conf.restricted && !allowed(m, b.item.Type(), t, level) {
		b.l.WithFields(logrus.Fields{
			"enchantment": t.Name(),
			"level":       level,
			"type":        typeName(b.item.Type()),
		}).Debug("Restricted enchantment rejected.")
		return b
	}
	m.SetEnchantment(item.NewEnchantment(t, level))
	b.item.SetMeta(m)
	return b
}

// Enchant is WithEnchantment with a level of 1.
func (b *Builder) Enchant(t item.EnchantmentType, opts ...EnchantOption) *Builder {
	return b.WithEnchantment(t, 1, opts...)
}

// glowEnchantment is the enchantment added by WithGlow. It has no effect on
// items other than bows.
var glowEnchantment item.EnchantmentType = enchantment.Infinity

// WithGlow makes the item show the enchantment glint without showing a real
// enchantment: the enchantment list is hidden and an inert enchantment added.
func (b *Builder) WithGlow() *Builder {
	b.WithFlags(HideEnchants)
	return b.WithEnchantment(glowEnchantment, 1)
}

// ClearEnchantments removes every enchantment.
func (b *Builder) ClearEnchantments() *Builder {
	m := b.item.Meta()
	m.Enchantments = nil
	b.item.SetMeta(m)
	return b
}

// WithColor dyes leather armour. ErrInvalidOperation is returned for any
// other item type, in which case the item is left unchanged.
func (b *Builder) WithColor(c color.RGBA) (*Builder, error) {
	if !IsLeatherArmour(b.item.Type()) {
		return b, ErrInvalidOperation
	}
	m := b.item.Meta()
	m.Colour = &c
	b.item.SetMeta(m)
	return b, nil
}

// Build returns the finished item. The builder keeps its own copy, so
// further calls on it do not affect the returned item.
func (b *Builder) Build() Item {
	it := b.item
	it.meta = it.meta.clone()
	return it
}

// allowed reports whether the game would accept enchantment t at the level
// passed on an item of type typ with meta m.
func allowed(m Meta, typ world.Item, t item.EnchantmentType, level int) bool {
	if level < 1 || level > t.MaxLevel() || !t.CompatibleWithItem(typ) {
		return false
	}
	for _, e := range m.Enchantments {
		if e.Type() == t {
			continue
		}
		if !t.CompatibleWithEnchantment(e.Type()) {
			return false
		}
	}
	return true
}

// replacePairs applies (find, replace) pairs to s in order.
func replacePairs(s string, replacements []any) string {
	for i := 0; i+1 < len(replacements); i += 2 {
		s = strings.ReplaceAll(s, fmt.Sprint(replacements[i]), fmt.Sprint(replacements[i+1]))
	}
	return s
}

// typeName returns the encoded name of an item type for logging.
func typeName(t world.Item) string {
	if t == nil {
		return "<nil>"
	}
	name, _ := t.EncodeItem()
	return name
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
