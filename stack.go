package itembuilder

import (
	"image/color"
	"slices"
	"strings"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
)

// Keys of the stack values used for meta that Dragonfly stacks have no
// native field for.
const (
	FlagsKey     = "itembuilder:flags"
	OwnerKey     = "itembuilder:owner"
	OwnerNameKey = "itembuilder:owner_name"
	TextureKey   = "itembuilder:texture"
)

// Stack converts the item to a Dragonfly item stack. Leather armour colour is
// applied to the armour tier; flags, owner and texture are stored as stack
// values under the keys above. Dragonfly drops enchantments that are not
// compatible with the item. An item without a type or with an amount of 0 or
// less converts to an empty stack.
func (i Item) Stack() item.Stack {
	if i.typ == nil || i.amount <= 0 {
		return item.Stack{}
	}
	t := i.typ
	if i.meta.Colour != nil {
		t = dye(t, *i.meta.Colour)
	}

	s := item.NewStack(t, i.amount)
	if i.meta.DisplayName != "" {
		s = s.WithCustomName(i.meta.DisplayName)
	}
	if len(i.meta.Lore) > 0 {
		s = s.WithLore(i.meta.Lore...)
	}
	if len(i.meta.Enchantments) > 0 {
		s = s.WithEnchantments(i.meta.Enchantments...)
	}
	if !i.meta.Flags.IsZero() {
		s = s.WithValue(FlagsKey, i.meta.Flags.Names())
	}
	if o := i.meta.Owner; o != nil {
		s = s.WithValue(OwnerKey, o.UUID.String()).WithValue(OwnerNameKey, o.Name)
	}
	if i.meta.Texture != "" {
		s = s.WithValue(TextureKey, i.meta.Texture)
	}
	return s
}

// FromStack converts a Dragonfly item stack back into an Item. Values written
// by Item.Stack are read back into the meta.
func FromStack(s item.Stack) Item {
	it := NewItem(s.Item(), s.Count())

	m := Meta{
		DisplayName:  s.CustomName(),
		Lore:         s.Lore(),
		Enchantments: s.Enchantments(),
	}
	slices.SortFunc(m.Enchantments, func(a, b item.Enchantment) int {
		return strings.Compare(a.Type().Name(), b.Type().Name())
	})
	if c, ok := leatherColour(s.Item()); ok {
		m.Colour = &c
	}
	if v, ok := s.Value(FlagsKey); ok {
		for _, n := range stringsOf(v) {
			if f, ok := ParseFlag(n); ok {
				m.Flags.Set(f)
			}
		}
	}
	if v, ok := s.Value(OwnerKey); ok {
		if str, _ := v.(string); str != "" {
			if id, err := uuid.Parse(str); err == nil {
				o := &Owner{UUID: id}
				if name, ok := s.Value(OwnerNameKey); ok {
					o.Name, _ = name.(string)
				}
				m.Owner = o
			}
		}
	}
	if v, ok := s.Value(TextureKey); ok {
		m.Texture, _ = v.(string)
	}
	it.meta = m
	return it
}

// Give adds the item to an inventory, returning the number of items added.
func Give(inv *inventory.Inventory, it Item) (int, error) {
	return inv.AddItem(it.Stack())
}

// dye returns leather armour t tinted with colour c. Other types are
// returned unchanged.
func dye(t world.Item, c color.RGBA) world.Item {
	switch a := t.(type) {
	case item.Helmet:
		if _, ok := a.Tier.(item.ArmourTierLeather); ok {
			a.Tier = item.ArmourTierLeather{Colour: c}
			return a
		}
	case item.Chestplate:
		if _, ok := a.Tier.(item.ArmourTierLeather); ok {
			a.Tier = item.ArmourTierLeather{Colour: c}
			return a
		}
	case item.Leggings:
		if _, ok := a.Tier.(item.ArmourTierLeather); ok {
			a.Tier = item.ArmourTierLeather{Colour: c}
			return a
		}
	case item.Boots:
		if _, ok := a.Tier.(item.ArmourTierLeather); ok {
			a.Tier = item.ArmourTierLeather{Colour: c}
			return a
		}
	}
	return t
}

// leatherColour returns the dye colour of leather armour, if it has one.
func leatherColour(t world.Item) (color.RGBA, bool) {
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
	}
	l, ok := tier.(item.ArmourTierLeather)
	if !ok || l.Colour == (color.RGBA{}) {
		return color.RGBA{}, false
	}
	return l.Colour, true
}

// stringsOf converts a stack value holding a list of strings, which after an
// NBT round trip may be a []any.
func stringsOf(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
