package itembuilder

import (
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/enchantment"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTextureURL = "http://textures.minecraft.net/texture/4f9a1b"

func testTexture() string {
	return base64.StdEncoding.EncodeToString([]byte(`{"textures":{"SKIN":{"url":"` + testTextureURL + `"}}}`))
}

func testFactory(opts ...Option) *Factory {
	reg := NewRegistry(4)
	reg.Register("DIAMOND", item.Diamond{})
	reg.Register("DIAMOND_SWORD", item.Sword{Tier: item.ToolTierDiamond})
	return NewFactory(append([]Option{WithResolver(reg)}, opts...)...)
}

func TestFromConfig(t *testing.T) {
	b, err := testFactory().FromConfig(Section{
		"material":     "diamond_sword",
		"amount":       3,
		"display_name": "&bFrost Blade",
		"lore":         []any{"&7Forged in ice.", "plain"},
		"item_flags":   []any{"HIDE_ATTRIBUTES"},
		"enchantments": map[string]any{"sharpness": 5, "unbreaking": 2},
	})
	require.NoError(t, err)

	it := b.Build()
	assert.Equal(t, item.Sword{Tier: item.ToolTierDiamond}, it.Type())
	assert.Equal(t, 3, it.Amount())
	assert.Equal(t, "§bFrost Blade", it.Name())
	assert.Equal(t, []string{"§7Forged in ice.", "plain"}, it.Lore())
	assert.Equal(t, []Flag{HideAttributes}, it.Flags().Slice())

	ench := it.Enchantments()
	require.Len(t, ench, 2)
	assert.Equal(t, enchantment.Sharpness, ench[0].Type())
	assert.Equal(t, 5, ench[0].Level())
	assert.Equal(t, enchantment.Unbreaking, ench[1].Type())
	assert.Equal(t, 2, ench[1].Level())
}

func TestFromConfigDefaults(t *testing.T) {
	b, err := testFactory().FromConfig(Section{"material": "DIAMOND"})
	require.NoError(t, err)

	it := b.Build()
	assert.Equal(t, item.Diamond{}, it.Type())
	assert.Equal(t, 1, it.Amount())
	assert.Empty(t, it.Name())
	assert.Empty(t, it.Lore())
	assert.True(t, it.Flags().IsZero())
	assert.Empty(t, it.Enchantments())
}

func TestFromConfigWeakTypes(t *testing.T) {
	b, err := testFactory().FromConfig(Section{
		"material": "diamond",
		"amount":   "16",
		"lore":     "single line",
		"glow":     "true",
	})
	require.NoError(t, err)

	it := b.Build()
	assert.Equal(t, 16, it.Amount())
	assert.Equal(t, []string{"single line"}, it.Lore())
	assert.True(t, it.Flags().Has(HideEnchants))
}

func TestFromConfigMaterialErrors(t *testing.T) {
	tests := []struct {
		name string
		sec  Section
		want string
	}{
		{"missing", Section{"amount": 1}, ""},
		{"empty", Section{"material": ""}, ""},
		{"unknown", Section{"material": "not_a_real_item"}, "NOT_A_REAL_ITEM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := testFactory().FromConfig(tt.sec)
			require.Error(t, err)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrUnresolved)

			var rerr *ResolutionError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.want, rerr.Name)
		})
	}
}

func TestFromConfigItemFlags(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	b, err := testFactory(WithLogger(logger)).FromConfig(Section{
		"material":   "diamond",
		"item_flags": []any{"NOT_A_REAL_FLAG", "HIDE_ENCHANTS", "hide_dye"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Flag{HideEnchants}, b.Build().Flags().Slice())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "NOT_A_REAL_FLAG", entries[0].Data["flag"])
	assert.Equal(t, "hide_dye", entries[1].Data["flag"])
}

func TestFromConfigUnknownEnchantmentSkipped(t *testing.T) {
	b, err := testFactory().FromConfig(Section{
		"material":     "diamond",
		"enchantments": map[string]any{"not_real": 1, "mending": 1},
	})
	require.NoError(t, err)

	ench := b.Build().Enchantments()
	require.Len(t, ench, 1)
	assert.Equal(t, enchantment.Mending, ench[0].Type())
}

func TestFromConfigGlow(t *testing.T) {
	b, err := testFactory().FromConfig(Section{"material": "diamond", "glow": true})
	require.NoError(t, err)
	it := b.Build()
	assert.True(t, it.Flags().Has(HideEnchants))
	assert.Len(t, it.Enchantments(), 1)

	b, err = testFactory().FromConfig(Section{"material": "diamond", "glow": false})
	require.NoError(t, err)
	assert.Empty(t, b.Build().Enchantments())
}

func TestFromConfigBase64(t *testing.T) {
	t.Run("player head", func(t *testing.T) {
		b, err := testFactory().FromConfig(Section{
			"material":     "player_head",
			"base64":       testTexture(),
			"display_name": "&eHead",
			"amount":       2,
		})
		require.NoError(t, err)

		it := b.Build()
		assert.True(t, IsPlayerHead(it.Type()))
		assert.Equal(t, testTextureURL, it.Meta().Texture)
		assert.Equal(t, "§eHead", it.Name())
		assert.Equal(t, 2, it.Amount())
	})

	t.Run("ignored for other items", func(t *testing.T) {
		b, err := testFactory().FromConfig(Section{"material": "diamond", "base64": testTexture()})
		require.NoError(t, err)
		assert.Empty(t, b.Build().Meta().Texture)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := testFactory().FromConfig(Section{"material": "player_head", "base64": "!!!"})
		assert.ErrorIs(t, err, ErrUnresolved)
	})
}

func TestFromConfigColor(t *testing.T) {
	b, err := testFactory().FromConfig(Section{"material": "leather_boots", "color": "#3366ff"})
	require.NoError(t, err)
	c := b.Build().Meta().Colour
	require.NotNil(t, c)
	assert.Equal(t, color.RGBA{R: 0x33, G: 0x66, B: 0xff, A: 0xff}, *c)

	_, err = testFactory().FromConfig(Section{"material": "diamond", "color": "#3366ff"})
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = testFactory().FromConfig(Section{"material": "leather_boots", "color": "blue"})
	assert.Error(t, err)
}

func TestFromConfigForIgnoresActor(t *testing.T) {
	sec := Section{"material": "diamond", "display_name": "&aHello", "lore": []any{"x"}}

	without, err := testFactory().FromConfig(sec)
	require.NoError(t, err)
	with, err := testFactory().FromConfigFor(sec, testProfile{id: uuid.New(), name: "Alex"})
	require.NoError(t, err)

	assert.Equal(t, without.Build(), with.Build())
}

func TestFactoryTranslator(t *testing.T) {
	f := testFactory(WithTranslator(Legacy('$')))
	it := f.NewType(item.Diamond{}).WithName("$cRed &cStays").Build()
	assert.Equal(t, "§cRed &cStays", it.Name())
}
