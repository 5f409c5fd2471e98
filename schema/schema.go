// Package schema holds the records of a Phigros save: the user profile, the save summary,
// unlocked keys, game progress, and per-song score records.
//
// Each record is a plain struct laid out with `bits` struct tags, encoded and decoded with phisave.Marshal and phisave.Unmarshal.
// Records with length fields have a Sync method that sets those fields from the slices they describe;
// call it before encoding a record that wasn't decoded.
package schema

import (
	"fmt"

	"github.com/stewi1014/phisave"
	"github.com/stewi1014/phisave/encio"
	"github.com/stewi1014/phisave/encode"
)

// Names of the length functions schema records use.
const (
	// KeyFlagsLength gives the number of flags of a Key; its Length minus one, or zero.
	KeyFlagsLength = "schema.keyFlags"

	// SongLevelsLength gives the number of level records of a SongEntry; the number of unlocked difficulties.
	SongLevelsLength = "schema.songLevels"
)

func init() {
	mustRegister(KeyFlagsLength, keyFlags)
	mustRegister(SongLevelsLength, songLevels)
}

func mustRegister(name string, fn encode.LengthFunc) {
	if err := phisave.RegisterLength(name, fn); err != nil {
		panic(err)
	}
}

func keyFlags(field string, s *encode.Siblings) (int, error) {
	n, err := s.Uint("Length")
	if err != nil || n == 0 {
		return 0, err
	}
	return int(n) - 1, nil
}

func songLevels(field string, s *encode.Siblings) (int, error) {
	return s.CountTrue("Unlock")
}

func checkCount(what string, n, max int) error {
	if n > max {
		return encio.NewError(encio.ErrOutOfRange, fmt.Sprintf("%v %v is more than the %v that can be encoded", n, what, max), 1)
	}
	return nil
}
