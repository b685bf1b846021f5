package itembuilder

import (
	"image/color"
	"slices"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/google/uuid"
)

// Profile is an identity that can own a player head. *player.Player
// satisfies it.
type Profile interface {
	UUID() uuid.UUID
	Name() string
}

// Owner is the owning identity of a player head.
type Owner struct {
	UUID uuid.UUID
	Name string
}

// Meta is the metadata attached to an Item. An Item hands out copies of its
// Meta, so changes only take effect once passed back through Item.SetMeta.
type Meta struct {
	// DisplayName is the custom name, already colour-translated.
	DisplayName string
	// Lore holds the tooltip lines, already colour-translated.
	Lore []string
	// Flags holds the display flags.
	Flags FlagSet
	// Enchantments holds at most one enchantment per type, in insertion order.
	Enchantments []item.Enchantment
	// Colour is the dye colour of leather armour, nil if undyed.
	Colour *color.RGBA
	// Owner is the owning identity of a head, nil if unowned.
	Owner *Owner
	// Texture is the skin texture URL of a head decoded from base64.
	Texture string
}

// Enchantment returns the enchantment of the type passed, if present.
func (m Meta) Enchantment(t item.EnchantmentType) (item.Enchantment, bool) {
	i := m.enchantmentIndex(t)
	if i < 0 {
		return item.Enchantment{}, false
	}
	return m.Enchantments[i], true
}

// SetEnchantment adds the enchantment, overwriting one of the same type.
func (m *Meta) SetEnchantment(e item.Enchantment) {
	if i := m.enchantmentIndex(e.Type()); i >= 0 {
		m.Enchantments[i] = e
		return
	}
	m.Enchantments = append(m.Enchantments, e)
}

// RemoveEnchantment removes the enchantment of the type passed.
func (m *Meta) RemoveEnchantment(t item.EnchantmentType) {
	if i := m.enchantmentIndex(t); i >= 0 {
		m.Enchantments = slices.Delete(m.Enchantments, i, i+1)
	}
}

func (m Meta) enchantmentIndex(t item.EnchantmentType) int {
	return slices.IndexFunc(m.Enchantments, func(e item.Enchantment) bool {
		return e.Type() == t
	})
}

// clone returns a deep copy of the meta.
func (m Meta) clone() Meta {
	c := m
	c.Lore = slices.Clone(m.Lore)
	c.Enchantments = slices.Clone(m.Enchantments)
	if m.Colour != nil {
		col := *m.Colour
		c.Colour = &col
	}
	if m.Owner != nil {
		o := *m.Owner
		c.Owner = &o
	}
	return c
}
