package itembuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseFlag(t *testing.T) {
	for _, f := range Flags() {
		got, ok := ParseFlag(f.String())
		assert.True(t, ok, f.String())
		assert.Equal(t, f, got)
	}

	_, ok := ParseFlag("hide_enchants")
	assert.False(t, ok)
	_, ok = ParseFlag("NOT_A_REAL_FLAG")
	assert.False(t, ok)

	assert.Equal(t, "UNKNOWN", Flag(200).String())
}

func TestFlagSet(t *testing.T) {
	s := NewFlagSet(HideDye, HideEnchants)
	assert.True(t, s.Has(HideEnchants))
	assert.True(t, s.Has(HideDye))
	assert.False(t, s.Has(HideAttributes))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []string{"HIDE_ENCHANTS", "HIDE_DYE"}, s.Names())

	s.Clear(HideDye)
	assert.Equal(t, []Flag{HideEnchants}, s.Slice())

	s.Clear(HideEnchants)
	assert.True(t, s.IsZero())
}

func TestPropertyFlagSetOr(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewFlagSet(rapid.SliceOf(rapid.SampledFrom(Flags())).Draw(t, "a")...)
		b := NewFlagSet(rapid.SliceOf(rapid.SampledFrom(Flags())).Draw(t, "b")...)

		u := a.Or(b)
		if !u.ContainsAll(a) || !u.ContainsAll(b) {
			t.Fatalf("%v | %v = %v", a.Names(), b.Names(), u.Names())
		}
		if u.Count() > a.Count()+b.Count() {
			t.Fatalf("union of %d and %d flags has %d", a.Count(), b.Count(), u.Count())
		}
	})
}
