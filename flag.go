package itembuilder

import (
	"math/bits"
)

// Flag is a display-behaviour toggle on an item, such as hiding the
// enchantment list. Flag names follow the Java edition ItemFlag names so that
// config files written for other platforms keep working.
type Flag uint8

const (
	// HideEnchants hides the enchantment list.
	HideEnchants Flag = iota
	// HideAttributes hides attribute modifiers.
	HideAttributes
	// HideUnbreakable hides the unbreakable state.
	HideUnbreakable
	// HideDestroys hides the blocks the item can break.
	HideDestroys
	// HidePlacedOn hides the blocks the item can be placed on.
	HidePlacedOn
	// HidePotionEffects hides potion effects.
	HidePotionEffects
	// HideAdditionalTooltip hides miscellaneous tooltip lines.
	HideAdditionalTooltip
	// HideDye hides the dye colour of leather armour.
	HideDye
	// HideArmorTrim hides armour trims.
	HideArmorTrim
	// HideStoredEnchants hides enchantments stored in books.
	HideStoredEnchants

	// flagCount is the total number of flags.
	flagCount
)

var flagNames = [flagCount]string{
	HideEnchants:          "HIDE_ENCHANTS",
	HideAttributes:        "HIDE_ATTRIBUTES",
	HideUnbreakable:       "HIDE_UNBREAKABLE",
	HideDestroys:          "HIDE_DESTROYS",
	HidePlacedOn:          "HIDE_PLACED_ON",
	HidePotionEffects:     "HIDE_POTION_EFFECTS",
	HideAdditionalTooltip: "HIDE_ADDITIONAL_TOOLTIP",
	HideDye:               "HIDE_DYE",
	HideArmorTrim:         "HIDE_ARMOR_TRIM",
	HideStoredEnchants:    "HIDE_STORED_ENCHANTS",
}

// String returns the config name of the flag.
func (f Flag) String() string {
	if f >= flagCount {
		return "UNKNOWN"
	}
	return flagNames[f]
}

// ParseFlag looks up a flag by its exact config name, e.g. "HIDE_ENCHANTS".
// The lookup is case-sensitive.
func ParseFlag(name string) (Flag, bool) {
	for f, n := range flagNames {
		if n == name {
			return Flag(f), true
		}
	}
	return 0, false
}

// Flags returns every known flag in declaration order.
func Flags() []Flag {
	out := make([]Flag, 0, flagCount)
	for f := range flagCount {
		out = append(out, f)
	}
	return out
}

// FlagSet is a bitmask of flags.
type FlagSet uint16

// NewFlagSet returns a set holding the flags passed.
func NewFlagSet(flags ...Flag) FlagSet {
	var s FlagSet
	for _, f := range flags {
		s.Set(f)
	}
	return s
}

// Set adds f to the set.
func (s *FlagSet) Set(f Flag) {
	*s |= 1 << f
}

// Clear removes f from the set.
func (s *FlagSet) Clear(f Flag) {
	*s &^= 1 << f
}

// Has reports whether f is set.
func (s FlagSet) Has(f Flag) bool {
	return s&(1<<f) != 0
}

// Or returns the union of s and other.
func (s FlagSet) Or(other FlagSet) FlagSet {
	return s | other
}

// ContainsAll reports whether s holds every flag of other.
func (s FlagSet) ContainsAll(other FlagSet) bool {
	return s&other == other
}

// Count returns how many flags are in the set.
func (s FlagSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// IsZero reports whether the set is empty.
func (s FlagSet) IsZero() bool {
	return s == 0
}

// Slice returns the flags in the set in declaration order.
func (s FlagSet) Slice() []Flag {
	out := make([]Flag, 0, s.Count())
	for f := range flagCount {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Names returns the config names of the flags in the set.
func (s FlagSet) Names() []string {
	flags := s.Slice()
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.String()
	}
	return out
}
