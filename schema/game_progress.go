package schema

// Base holds first-run and tutorial flags.
type Base struct {
	IsFirstRun                 bool `bits:"bit"`
	LegacyChapterFinished      bool `bits:"bit"`
	AlreadyShowCollectionTip   bool `bits:"bit"`
	AlreadyShowAutoUnlockINTip bool `bits:"bit"`
}

// Money is the in-game currency, one count per binary unit.
type Money struct {
	KiB uint16 `bits:"varint"`
	MiB uint16 `bits:"varint"`
	GiB uint16 `bits:"varint"`
	TiB uint16 `bits:"varint"`
	PiB uint16 `bits:"varint"`
}

// Chapter8Base holds the progress of chapter 8.
type Chapter8Base struct {
	UnlockBegin       bool `bits:"bit"`
	UnlockSecondPhase bool `bits:"bit"`
	Passed            bool `bits:"bit"`
}

// GameProgress holds the player's story and unlock progress.
type GameProgress struct {
	Base                      Base `bits:"align=8"`
	Completed                 string
	SongUpdateInfo            uint16 `bits:"varint"`
	ChallengeModeRank         uint16
	Money                     Money
	UnlockFlagOfSpasmodic     [4]bool      `bits:"bit,align=8"`
	UnlockFlagOfIgallta       [4]bool      `bits:"bit,align=8"`
	UnlockFlagOfRrharil       [4]bool      `bits:"bit,align=8"`
	FlagOfSongRecordKey       [8]bool      `bits:"bit"`
	RandomVersionUnlocked     [6]bool      `bits:"bit,align=8"`
	Chapter8Base              Chapter8Base `bits:"align=8"`
	Chapter8SongUnlocked      [6]bool      `bits:"bit,align=8"`
	FlagOfSongRecordKeyTakumi [3]bool      `bits:"bit,align=8"`
}
