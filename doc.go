// Package itembuilder provides a fluent item builder for Dragonfly servers.
//
// itembuilder wraps a single item and applies a chain of mutations to it:
//   - Display name and lore with '&' colour codes
//   - Amount, type, enchantments and display flags
//   - Leather armour colour, enchantment glint and head owners
//   - Construction from YAML or TOML config sections
//
// # Quick Start
//
// Build an item in code:
//
//	it := itembuilder.NewType(item.Sword{Tier: item.ToolTierDiamond}).
//	    WithName("&bFrost Blade").
//	    WithLore("&7Forged in ice.").
//	    WithEnchantment(enchantment.Sharpness, 5).
//	    WithFlags(itembuilder.HideEnchants).
//	    Build()
//
//	_, _ = p.Inventory().AddItem(it.Stack())
//
// Or from a config file:
//
//	root, err := itembuilder.LoadFile("items.yml")
//	if err != nil {
//	    return err
//	}
//	sec, _ := root.Sub("items.frost_blade")
//
//	factory := itembuilder.NewFactory(itembuilder.WithLogger(log))
//	b, err := factory.FromConfig(sec)
//	if err != nil {
//	    return err
//	}
//	it := b.Build()
//
// # Config Keys
//
//	material      Item type name (required), e.g. DIAMOND_SWORD
//	base64        Encoded head texture, player heads only
//	amount        Stack quantity
//	display_name  Custom name
//	lore          List of tooltip lines
//	glow          Enchantment glint without a visible enchantment
//	item_flags    List of flag names, e.g. HIDE_ENCHANTS
//	color         Leather armour colour, "#RRGGBB" or "r,g,b"
//	enchantments  Map of enchantment name to level
//
// # Meta
//
// An Item hands out its Meta by copy. Changes are made by reading the meta,
// modifying it and storing it again:
//
//	m := it.Meta()
//	m.DisplayName = "Renamed"
//	it.SetMeta(m)
package itembuilder

// Version is the itembuilder version.
const Version = "1.0.0"
