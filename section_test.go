package itembuilder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
items:
  frost_blade:
    material: diamond_sword
    amount: 1
    display_name: "&bFrost Blade"
    lore:
      - "&7Forged in ice."
    glow: true
    item_flags: [HIDE_ATTRIBUTES, NOT_A_REAL_FLAG]
    enchantments:
      sharpness: 5
  gem:
    material: diamond
    amount: 64
`

const testTOML = `
[items.gem]
material = "diamond"
amount = 12
lore = ["&ashiny", "rare"]
item_flags = ["HIDE_ENCHANTS"]
`

func TestDecodeYAML(t *testing.T) {
	root, err := Decode(strings.NewReader(testYAML), YAML)
	require.NoError(t, err)

	items, ok := root.Sub("items")
	require.True(t, ok)
	assert.Equal(t, []string{"frost_blade", "gem"}, items.Keys())

	sec, ok := root.Sub("items.frost_blade")
	require.True(t, ok)
	assert.True(t, sec.Has("glow"))

	b, err := testFactory().FromConfig(sec)
	require.NoError(t, err)

	it := b.Build()
	assert.Equal(t, item.Sword{Tier: item.ToolTierDiamond}, it.Type())
	assert.Equal(t, "§bFrost Blade", it.Name())
	assert.Equal(t, []string{"§7Forged in ice."}, it.Lore())
	assert.Equal(t, []Flag{HideEnchants, HideAttributes}, it.Flags().Slice())
	assert.Len(t, it.Enchantments(), 2)
}

func TestDecodeTOML(t *testing.T) {
	root, err := Decode(strings.NewReader(testTOML), TOML)
	require.NoError(t, err)

	sec, ok := root.Sub("items.gem")
	require.True(t, ok)

	b, err := testFactory().FromConfig(sec)
	require.NoError(t, err)

	it := b.Build()
	assert.Equal(t, 12, it.Amount())
	assert.Equal(t, []string{"§ashiny", "rare"}, it.Lore())
	assert.True(t, it.Flags().Has(HideEnchants))
}

func TestDecodeEmpty(t *testing.T) {
	root, err := Decode(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Empty(t, root)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader("{}"), Format("json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSub(t *testing.T) {
	root := Section{
		"a": map[string]any{
			"b": map[any]any{"c": 1},
		},
		"leaf": 3,
	}

	b, ok := root.Sub("a.b")
	require.True(t, ok)
	assert.Equal(t, Section{"c": 1}, b)

	_, ok = root.Sub("a.missing")
	assert.False(t, ok)
	_, ok = root.Sub("leaf")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "items.yml")
	require.NoError(t, os.WriteFile(yml, []byte(testYAML), 0o644))
	root, err := LoadFile(yml)
	require.NoError(t, err)
	_, ok := root.Sub("items.gem")
	assert.True(t, ok)

	tml := filepath.Join(dir, "items.toml")
	require.NoError(t, os.WriteFile(tml, []byte(testTOML), 0o644))
	root, err = LoadFile(tml)
	require.NoError(t, err)
	_, ok = root.Sub("items.gem")
	assert.True(t, ok)

	_, err = LoadFile(filepath.Join(dir, "items.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
