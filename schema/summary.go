package schema

// Level counts the charts of one difficulty that have been cleared, full combo'd, and all perfect'd.
type Level struct {
	Clear uint16
	FC    uint16
	Phi   uint16
}

// Levels holds a Level for each of the four main difficulties.
type Levels struct {
	EZ Level
	HD Level
	IN Level
	AT Level
}

// Summary is the short overview of a save shown before it is downloaded.
type Summary struct {
	SaveVersion       uint8
	ChallengeModeRank uint16
	RKS               float32
	GameVersion       uint16 `bits:"varint"`
	Avatar            string
	Levels            Levels
}
