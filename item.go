package itembuilder

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
)

// Item is a quantity of one item type plus its Meta. Item is a value: copying
// it is safe, as Meta is only ever exchanged by copy.
type Item struct {
	typ    world.Item
	amount int
	meta   Meta
}

// NewItem returns an item of the type passed with the given amount and empty meta.
func NewItem(t world.Item, amount int) Item {
	return Item{typ: t, amount: amount}
}

// Type returns the item type.
func (i Item) Type() world.Item {
	return i.typ
}

// SetType replaces the item type. Amount and meta are kept.
func (i *Item) SetType(t world.Item) {
	i.typ = t
}

// Amount returns the stack quantity.
func (i Item) Amount() int {
	return i.amount
}

// SetAmount sets the stack quantity. No bounds are enforced.
func (i *Item) SetAmount(n int) {
	i.amount = n
}

// Meta returns a copy of the item's meta.
func (i Item) Meta() Meta {
	return i.meta.clone()
}

// SetMeta stores a copy of the meta passed on the item.
func (i *Item) SetMeta(m Meta) {
	i.meta = m.clone()
}

// Name is shorthand for Meta().DisplayName.
func (i Item) Name() string {
	return i.meta.DisplayName
}

// Lore returns a copy of the item's lore lines.
func (i Item) Lore() []string {
	return i.Meta().Lore
}

// Flags returns the item's flag set.
func (i Item) Flags() FlagSet {
	return i.meta.Flags
}

// Enchantments returns a copy of the item's enchantments in insertion order.
func (i Item) Enchantments() []item.Enchantment {
	return i.Meta().Enchantments
}

// IsLeatherArmour reports whether t is a leather helmet, chestplate, leggings
// or boots.
func IsLeatherArmour(t world.Item) bool {
	var tier item.ArmourTier
	switch a := t.(type) {
	case item.Helmet:
		tier = a.Tier
	case item.Chestplate:
		tier = a.Tier
	case item.Leggings:
		tier = a.Tier
	case item.Boots:
		tier = a.Tier
	default:
		return false
	}
	_, ok := tier.(item.ArmourTierLeather)
	return ok
}

// IsSkull reports whether t is a skull or head, the only items whose meta can
// hold an owner.
func IsSkull(t world.Item) bool {
	_, ok := t.(block.Skull)
	return ok
}

// IsPlayerHead reports whether t is the player head variant of a skull.
func IsPlayerHead(t world.Item) bool {
	s, ok := t.(block.Skull)
	return ok && s.Type == block.PlayerHead()
}

// PlayerHead returns the player head item type.
func PlayerHead() world.Item {
	return block.Skull{Type: block.PlayerHead()}
}
