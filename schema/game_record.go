package schema

import (
	"fmt"

	"github.com/stewi1014/phisave/encio"
)

// Difficulties are the names of a song's charts, in the order of SongEntry's Unlock and FC flags.
var Difficulties = [5]string{"EZ", "HD", "IN", "AT", "Legacy"}

// LevelRecord is the best play of one chart.
type LevelRecord struct {
	Score uint32
	Acc   float32
}

// SongEntry holds the records of one song.
// Levels holds a LevelRecord for each unlocked difficulty, in order.
type SongEntry struct {
	Name string

	// Length is the encoded size of Unlock, FC and Levels in bytes.
	Length uint16 `bits:"varint"`

	Unlock [5]bool       `bits:"bit,align=8"`
	FC     [5]bool       `bits:"bit,align=8"`
	Levels []LevelRecord `bits:"lenfunc=schema.songLevels"`
}

// Unlocked returns the number of unlocked difficulties.
func (s *SongEntry) Unlocked() (n int) {
	for _, u := range s.Unlock {
		if u {
			n++
		}
	}
	return
}

// GameRecord holds the player's records for every song played.
type GameRecord struct {
	SongSum uint16      `bits:"varint"`
	Songs   []SongEntry `bits:"len=SongSum"`
}

// Sync sets SongSum and each SongEntry's Length from the slices they describe.
// It returns an error if a song's Levels don't match its Unlock flags.
func (g *GameRecord) Sync() error {
	if err := checkCount("songs", len(g.Songs), encio.MaxVarUint); err != nil {
		return err
	}

	for i := range g.Songs {
		song := &g.Songs[i]
		if song.Unlocked() != len(song.Levels) {
			return encio.NewError(
				encio.ErrBadConfig,
				fmt.Sprintf("song %v has %v unlocked difficulties but %v level records", song.Name, song.Unlocked(), len(song.Levels)),
				0,
			)
		}
		song.Length = uint16(len(song.Levels)*8 + 2)
	}

	g.SongSum = uint16(len(g.Songs))
	return nil
}
