package schema

import (
	"fmt"

	"github.com/stewi1014/phisave/encio"
)

// Key is an unlockable item; a song, an illustration, an avatar or the like.
type Key struct {
	Name string

	// Length is one more than the number of flags.
	Length uint8

	Type [5]bool `bits:"bit,align=8"`
	Flag []bool  `bits:"lenfunc=schema.keyFlags"`
}

// KeyList is a counted list of Keys.
type KeyList struct {
	KeySum uint16 `bits:"varint"`
	Keys   []Key  `bits:"len=KeySum"`
}

// GameKey holds the player's unlocked keys, and a few story flags.
type GameKey struct {
	KeyList                KeyList
	LanotaReadKeys         [6]bool `bits:"bit,align=8"`
	CamelliaReadKey        [8]bool `bits:"bit"`
	SideStory4BeginReadKey bool
	OldScoreClearedV390    bool
}

// Sync sets KeySum and each Key's Length from the slices they describe.
func (g *GameKey) Sync() error {
	if err := checkCount("keys", len(g.KeyList.Keys), encio.MaxVarUint); err != nil {
		return err
	}

	for i := range g.KeyList.Keys {
		key := &g.KeyList.Keys[i]
		if len(key.Flag) > 0xFF-1 {
			return encio.NewError(encio.ErrOutOfRange, fmt.Sprintf("key %v has %v flags; the most is %v", key.Name, len(key.Flag), 0xFF-1), 0)
		}
		key.Length = uint8(len(key.Flag) + 1)
	}

	g.KeyList.KeySum = uint16(len(g.KeyList.Keys))
	return nil
}
