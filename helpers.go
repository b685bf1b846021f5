package itembuilder

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
)

// CommandProfile extracts the player profile from a command source, for use
// with Factory.FromConfigFor or Builder.SetSkullOwner.
// Returns (nil, false) if the source is not a player.
//
// Usage:
//
//	func (c GiveHead) Run(src cmd.Source, out *cmd.Output, tx *world.Tx) {
//	    p, ok := itembuilder.CommandProfile(src)
//	    if !ok {
//	        out.Error("Player-only command")
//	        return
//	    }
//	    head := itembuilder.NewType(itembuilder.PlayerHead()).SetSkullOwner(p).Build()
//	    // Give head...
//	}
func CommandProfile(src cmd.Source) (Profile, bool) {
	p, ok := src.(*player.Player)
	if !ok {
		return nil, false
	}
	return p, true
}

// UserProfile extracts the player profile from an item user.
// Returns (nil, false) if the user is not a player.
func UserProfile(user item.User) (Profile, bool) {
	p, ok := user.(*player.Player)
	if !ok {
		return nil, false
	}
	return p, true
}
