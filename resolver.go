package itembuilder

import (
	"strings"
	"sync"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Resolver maps material names to item types and builds head items from
// encoded textures.
type Resolver interface {
	// Resolve returns the item type registered under the name passed. Names
	// are conventionally upper case, e.g. "DIAMOND_SWORD".
	Resolve(name string) (world.Item, bool)
	// Head returns a player head item wearing the base64 encoded texture.
	Head(texture string) (Item, error)
}

// DefaultHeadCacheSize is the number of decoded heads kept by a Registry
// created with a non-positive cache size.
const DefaultHeadCacheSize = 128

// Registry is the default Resolver. Names are looked up in its alias table
// first, which maps Java edition material names to Dragonfly items, and then
// in Dragonfly's item registry as "minecraft:<lower case name>".
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	aliases map[string]world.Item

	heads *lru.Cache[string, Item]
}

// NewRegistry creates a registry caching up to headCacheSize decoded heads.
func NewRegistry(headCacheSize int) *Registry {
	if headCacheSize <= 0 {
		headCacheSize = DefaultHeadCacheSize
	}
	heads, err := lru.New[string, Item](headCacheSize)
	if err != nil {
		panic("itembuilder: create head cache: " + err.Error())
	}

	r := &Registry{aliases: make(map[string]world.Item, len(defaultAliases)), heads: heads}
	for name, it := range defaultAliases {
		r.aliases[name] = it
	}
	return r
}

// Register adds or replaces an alias. The name is stored upper case.
func (r *Registry) Register(name string, it world.Item) {
	r.mu.Lock()
	r.aliases[strings.ToUpper(name)] = it
	r.mu.Unlock()
}

// Resolve implements Resolver.
func (r *Registry) Resolve(name string) (world.Item, bool) {
	r.mu.RLock()
	it, ok := r.aliases[name]
	r.mu.RUnlock()
	if ok {
		return it, true
	}
	if name == "" {
		return nil, false
	}
	return world.ItemByName("minecraft:"+strings.ToLower(name), 0)
}

// Head implements Resolver. Decoded heads are cached by their encoded
// texture.
func (r *Registry) Head(texture string) (Item, error) {
	if it, ok := r.heads.Get(texture); ok {
		return it, nil
	}
	url, err := decodeTexture(texture)
	if err != nil {
		return Item{}, err
	}
	it := NewItem(PlayerHead(), 1)
	it.meta.Texture = url
	r.heads.Add(texture, it)
	return it, nil
}

// defaultAliases holds Java edition material names whose Bedrock item name
// differs or which need a specific variant.
var defaultAliases = map[string]world.Item{
	"PLAYER_HEAD":           block.Skull{Type: block.PlayerHead()},
	"SKELETON_SKULL":        block.Skull{Type: block.SkeletonSkull()},
	"WITHER_SKELETON_SKULL": block.Skull{Type: block.WitherSkeletonSkull()},
	"ZOMBIE_HEAD":           block.Skull{Type: block.ZombieHead()},
	"CREEPER_HEAD":          block.Skull{Type: block.CreeperHead()},
	"DRAGON_HEAD":           block.Skull{Type: block.DragonHead()},

	"LEATHER_HELMET":     item.Helmet{Tier: item.ArmourTierLeather{}},
	"LEATHER_CHESTPLATE": item.Chestplate{Tier: item.ArmourTierLeather{}},
	"LEATHER_LEGGINGS":   item.Leggings{Tier: item.ArmourTierLeather{}},
	"LEATHER_BOOTS":      item.Boots{Tier: item.ArmourTierLeather{}},
}
