package itembuilder

import (
	"fmt"
	"image/color"
	"reflect"
	"strconv"
	"strings"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/enchantment"
	"github.com/mitchellh/mapstructure"
)

// Definition is the decoded form of an item config section.
//
// Example YAML:
//
//	material: diamond_sword
//	amount: 1
//	display_name: "&bFrost Blade"
//	lore:
//	  - "&7Forged in ice."
//	glow: true
//	item_flags: [HIDE_ENCHANTS, HIDE_ATTRIBUTES]
//	enchantments:
//	  sharpness: 5
type Definition struct {
	// Material is the item type name, resolved case-insensitively.
	Material string `mapstructure:"material" validate:"required"`
	// Base64 is an encoded head texture, only honoured for player heads.
	Base64 *string `mapstructure:"base64"`
	// Amount is the stack quantity.
	Amount *int `mapstructure:"amount"`
	// DisplayName is the custom name, with '&' colour codes.
	DisplayName *string `mapstructure:"display_name"`
	// Lore is the tooltip text, with '&' colour codes.
	Lore []string `mapstructure:"lore"`
	// Glow adds the enchantment glint without a visible enchantment.
	Glow bool `mapstructure:"glow"`
	// ItemFlags holds flag names. Unknown names are skipped.
	ItemFlags []string `mapstructure:"item_flags"`
	// Color dyes leather armour: "#RRGGBB", "RRGGBB" or "r,g,b".
	Color *color.RGBA `mapstructure:"color"`
	// Enchantments maps enchantment names to levels. Unknown names are skipped.
	Enchantments map[string]int `mapstructure:"enchantments"`
}

// DecodeDefinition decodes a config section into a Definition. Values are
// weakly typed, so "5" is accepted for an amount and a single string for a
// list. The result is not validated.
func DecodeDefinition(sec Section) (Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       stringToColourHookFunc(),
	})
	if err != nil {
		return Definition{}, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(map[string]any(sec)); err != nil {
		return Definition{}, fmt.Errorf("decode item definition: %w", err)
	}
	return def, nil
}

// stringToColourHookFunc handles color.RGBA conversion
func stringToColourHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(color.RGBA{}) {
			return data, nil
		}
		return ParseColour(reflect.ValueOf(data).String())
	}
}

// ParseColour parses "#RRGGBB", "RRGGBB" or "r,g,b" into an opaque colour.
func ParseColour(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("invalid colour %q: want r,g,b", s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
			}
			rgb[i] = uint8(v)
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// enchantmentNames maps config enchantment names, using the Java edition
// naming, to Dragonfly enchantment types.
var enchantmentNames = map[string]item.EnchantmentType{
	"PROTECTION":            enchantment.Protection,
	"FIRE_PROTECTION":       enchantment.FireProtection,
	"FEATHER_FALLING":       enchantment.FeatherFalling,
	"BLAST_PROTECTION":      enchantment.BlastProtection,
	"PROJECTILE_PROTECTION": enchantment.ProjectileProtection,
	"THORNS":                enchantment.Thorns,
	"RESPIRATION":           enchantment.Respiration,
	"DEPTH_STRIDER":         enchantment.DepthStrider,
	"AQUA_AFFINITY":         enchantment.AquaAffinity,
	"SHARPNESS":             enchantment.Sharpness,
	"KNOCKBACK":             enchantment.Knockback,
	"FIRE_ASPECT":           enchantment.FireAspect,
	"EFFICIENCY":            enchantment.Efficiency,
	"SILK_TOUCH":            enchantment.SilkTouch,
	"UNBREAKING":            enchantment.Unbreaking,
	"POWER":                 enchantment.Power,
	"PUNCH":                 enchantment.Punch,
	"FLAME":                 enchantment.Flame,
	"INFINITY":              enchantment.Infinity,
	"MENDING":               enchantment.Mending,
	"VANISHING_CURSE":       enchantment.CurseOfVanishing,
}

// ParseEnchantment looks up an enchantment type by its upper case config
// name, e.g. "SHARPNESS".
func ParseEnchantment(name string) (item.EnchantmentType, bool) {
	t, ok := enchantmentNames[name]
	return t, ok
}
