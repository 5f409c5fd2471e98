package interchange

import (
	"sort"

	"github.com/stewi1014/phisave/schema"
)

// Document is the host-facing form of a record.
type Document interface {
	// Record returns the record the document describes, with its length fields set.
	Record() (interface{}, error)
}

// User is the document form of schema.User.
type User struct {
	ShowPlayerID bool   `json:"show_player_id" msgpack:"show_player_id"`
	SelfIntro    string `json:"self_intro" msgpack:"self_intro"`
	Avatar       string `json:"avatar" msgpack:"avatar"`
	Background   string `json:"background" msgpack:"background"`
}

// NewUser returns the document for u.
func NewUser(u *schema.User) *User {
	return &User{
		ShowPlayerID: u.ShowPlayerID,
		SelfIntro:    u.SelfIntro,
		Avatar:       u.Avatar,
		Background:   u.Background,
	}
}

// Record implements Document.
func (d *User) Record() (interface{}, error) {
	return &schema.User{
		ShowPlayerID: d.ShowPlayerID,
		SelfIntro:    d.SelfIntro,
		Avatar:       d.Avatar,
		Background:   d.Background,
	}, nil
}

// Level is the document form of schema.Level.
type Level struct {
	Clear uint16 `json:"clear" msgpack:"clear"`
	FC    uint16 `json:"fc" msgpack:"fc"`
	Phi   uint16 `json:"phi" msgpack:"phi"`
}

// Levels is the document form of schema.Levels.
type Levels struct {
	EZ Level `json:"ez" msgpack:"ez"`
	HD Level `json:"hd" msgpack:"hd"`
	IN Level `json:"in" msgpack:"in"`
	AT Level `json:"at" msgpack:"at"`
}

// Summary is the document form of schema.Summary.
type Summary struct {
	SaveVersion       uint8   `json:"save_version" msgpack:"save_version"`
	ChallengeModeRank uint16  `json:"challenge_mode_rank" msgpack:"challenge_mode_rank"`
	RKS               float32 `json:"rks" msgpack:"rks"`
	GameVersion       uint16  `json:"game_version" msgpack:"game_version"`
	Avatar            string  `json:"avatar" msgpack:"avatar"`
	Level             Levels  `json:"level" msgpack:"level"`
}

// NewSummary returns the document for s.
func NewSummary(s *schema.Summary) *Summary {
	return &Summary{
		SaveVersion:       s.SaveVersion,
		ChallengeModeRank: s.ChallengeModeRank,
		RKS:               s.RKS,
		GameVersion:       s.GameVersion,
		Avatar:            s.Avatar,
		Level: Levels{
			EZ: Level(s.Levels.EZ),
			HD: Level(s.Levels.HD),
			IN: Level(s.Levels.IN),
			AT: Level(s.Levels.AT),
		},
	}
}

// Record implements Document.
func (d *Summary) Record() (interface{}, error) {
	return &schema.Summary{
		SaveVersion:       d.SaveVersion,
		ChallengeModeRank: d.ChallengeModeRank,
		RKS:               d.RKS,
		GameVersion:       d.GameVersion,
		Avatar:            d.Avatar,
		Levels: schema.Levels{
			EZ: schema.Level(d.Level.EZ),
			HD: schema.Level(d.Level.HD),
			IN: schema.Level(d.Level.IN),
			AT: schema.Level(d.Level.AT),
		},
	}, nil
}

// Key is the document form of schema.Key.
// The key's length is implied by its flags.
type Key struct {
	Name string  `json:"name" msgpack:"name"`
	Type [5]bool `json:"type" msgpack:"type"`
	Flag []bool  `json:"flag" msgpack:"flag"`
}

// GameKey is the document form of schema.GameKey.
type GameKey struct {
	Keys                   []Key   `json:"key_list" msgpack:"key_list"`
	LanotaReadKeys         [6]bool `json:"lanota_read_keys" msgpack:"lanota_read_keys"`
	CamelliaReadKey        [8]bool `json:"camellia_read_key" msgpack:"camellia_read_key"`
	SideStory4BeginReadKey bool    `json:"side_story4_begin_read_key" msgpack:"side_story4_begin_read_key"`
	OldScoreClearedV390    bool    `json:"old_score_cleared_v390" msgpack:"old_score_cleared_v390"`
}

// NewGameKey returns the document for g.
func NewGameKey(g *schema.GameKey) *GameKey {
	d := &GameKey{
		Keys:                   make([]Key, len(g.KeyList.Keys)),
		LanotaReadKeys:         g.LanotaReadKeys,
		CamelliaReadKey:        g.CamelliaReadKey,
		SideStory4BeginReadKey: g.SideStory4BeginReadKey,
		OldScoreClearedV390:    g.OldScoreClearedV390,
	}

	for i, key := range g.KeyList.Keys {
		d.Keys[i] = Key{
			Name: key.Name,
			Type: key.Type,
			Flag: append([]bool{}, key.Flag...),
		}
	}
	return d
}

// Record implements Document.
func (d *GameKey) Record() (interface{}, error) {
	g := &schema.GameKey{
		LanotaReadKeys:         d.LanotaReadKeys,
		CamelliaReadKey:        d.CamelliaReadKey,
		SideStory4BeginReadKey: d.SideStory4BeginReadKey,
		OldScoreClearedV390:    d.OldScoreClearedV390,
	}

	if len(d.Keys) > 0 {
		g.KeyList.Keys = make([]schema.Key, len(d.Keys))
	}
	for i, key := range d.Keys {
		g.KeyList.Keys[i] = schema.Key{
			Name: key.Name,
			Type: key.Type,
		}
		if len(key.Flag) > 0 {
			g.KeyList.Keys[i].Flag = append([]bool(nil), key.Flag...)
		}
	}

	return g, g.Sync()
}

// Base is the document form of schema.Base.
type Base struct {
	IsFirstRun                 bool `json:"is_first_run" msgpack:"is_first_run"`
	LegacyChapterFinished      bool `json:"legacy_chapter_finished" msgpack:"legacy_chapter_finished"`
	AlreadyShowCollectionTip   bool `json:"already_show_collection_tip" msgpack:"already_show_collection_tip"`
	AlreadyShowAutoUnlockINTip bool `json:"already_show_auto_unlock_in_tip" msgpack:"already_show_auto_unlock_in_tip"`
}

// Money is the document form of schema.Money.
type Money struct {
	KiB uint16 `json:"kib" msgpack:"kib"`
	MiB uint16 `json:"mib" msgpack:"mib"`
	GiB uint16 `json:"gib" msgpack:"gib"`
	TiB uint16 `json:"tib" msgpack:"tib"`
	PiB uint16 `json:"pib" msgpack:"pib"`
}

// Chapter8Base is the document form of schema.Chapter8Base.
type Chapter8Base struct {
	UnlockBegin       bool `json:"unlock_begin" msgpack:"unlock_begin"`
	UnlockSecondPhase bool `json:"unlock_second_phase" msgpack:"unlock_second_phase"`
	Passed            bool `json:"passed" msgpack:"passed"`
}

// GameProgress is the document form of schema.GameProgress.
type GameProgress struct {
	Base                      Base         `json:"base" msgpack:"base"`
	Completed                 string       `json:"completed" msgpack:"completed"`
	SongUpdateInfo            uint16       `json:"song_update_info" msgpack:"song_update_info"`
	ChallengeModeRank         uint16       `json:"challenge_mode_rank" msgpack:"challenge_mode_rank"`
	Money                     Money        `json:"money" msgpack:"money"`
	UnlockFlagOfSpasmodic     [4]bool      `json:"unlock_flag_of_spasmodic" msgpack:"unlock_flag_of_spasmodic"`
	UnlockFlagOfIgallta       [4]bool      `json:"unlock_flag_of_igallta" msgpack:"unlock_flag_of_igallta"`
	UnlockFlagOfRrharil       [4]bool      `json:"unlock_flag_of_rrharil" msgpack:"unlock_flag_of_rrharil"`
	FlagOfSongRecordKey       [8]bool      `json:"flag_of_song_record_key" msgpack:"flag_of_song_record_key"`
	RandomVersionUnlocked     [6]bool      `json:"random_version_unlocked" msgpack:"random_version_unlocked"`
	Chapter8Base              Chapter8Base `json:"chapter8_base" msgpack:"chapter8_base"`
	Chapter8SongUnlocked      [6]bool      `json:"chapter8_song_unlocked" msgpack:"chapter8_song_unlocked"`
	FlagOfSongRecordKeyTakumi [3]bool      `json:"flag_of_song_record_key_takumi" msgpack:"flag_of_song_record_key_takumi"`
}

// NewGameProgress returns the document for g.
func NewGameProgress(g *schema.GameProgress) *GameProgress {
	return &GameProgress{
		Base:                      Base(g.Base),
		Completed:                 g.Completed,
		SongUpdateInfo:            g.SongUpdateInfo,
		ChallengeModeRank:         g.ChallengeModeRank,
		Money:                     Money(g.Money),
		UnlockFlagOfSpasmodic:     g.UnlockFlagOfSpasmodic,
		UnlockFlagOfIgallta:       g.UnlockFlagOfIgallta,
		UnlockFlagOfRrharil:       g.UnlockFlagOfRrharil,
		FlagOfSongRecordKey:       g.FlagOfSongRecordKey,
		RandomVersionUnlocked:     g.RandomVersionUnlocked,
		Chapter8Base:              Chapter8Base(g.Chapter8Base),
		Chapter8SongUnlocked:      g.Chapter8SongUnlocked,
		FlagOfSongRecordKeyTakumi: g.FlagOfSongRecordKeyTakumi,
	}
}

// Record implements Document.
func (d *GameProgress) Record() (interface{}, error) {
	return &schema.GameProgress{
		Base:                      schema.Base(d.Base),
		Completed:                 d.Completed,
		SongUpdateInfo:            d.SongUpdateInfo,
		ChallengeModeRank:         d.ChallengeModeRank,
		Money:                     schema.Money(d.Money),
		UnlockFlagOfSpasmodic:     d.UnlockFlagOfSpasmodic,
		UnlockFlagOfIgallta:       d.UnlockFlagOfIgallta,
		UnlockFlagOfRrharil:       d.UnlockFlagOfRrharil,
		FlagOfSongRecordKey:       d.FlagOfSongRecordKey,
		RandomVersionUnlocked:     d.RandomVersionUnlocked,
		Chapter8Base:              schema.Chapter8Base(d.Chapter8Base),
		Chapter8SongUnlocked:      d.Chapter8SongUnlocked,
		FlagOfSongRecordKeyTakumi: d.FlagOfSongRecordKeyTakumi,
	}, nil
}

// LevelRecord is the document form of one unlocked difficulty of a song; its best play and whether it was full combo'd.
type LevelRecord struct {
	Score uint32  `json:"score" msgpack:"score"`
	Acc   float32 `json:"acc" msgpack:"acc"`
	FC    bool    `json:"fc" msgpack:"fc"`
}

// SongRecord maps the names of a song's unlocked difficulties (schema.Difficulties) to their records.
type SongRecord map[string]LevelRecord

// GameRecord is the document form of schema.GameRecord; song records by song name.
type GameRecord map[string]SongRecord

// NewGameRecord returns the document for g.
// Songs after the first of the same name are dropped.
func NewGameRecord(g *schema.GameRecord) *GameRecord {
	d := make(GameRecord, len(g.Songs))
	for _, song := range g.Songs {
		if _, ok := d[song.Name]; ok {
			continue
		}

		levels := make(SongRecord)
		next := 0
		for i, diff := range schema.Difficulties {
			if !song.Unlock[i] || next >= len(song.Levels) {
				continue
			}
			levels[diff] = LevelRecord{
				Score: song.Levels[next].Score,
				Acc:   song.Levels[next].Acc,
				FC:    song.FC[i],
			}
			next++
		}
		d[song.Name] = levels
	}
	return &d
}

// Record implements Document.
// Songs are ordered by name. Difficulties that aren't in schema.Difficulties are ignored.
func (d *GameRecord) Record() (interface{}, error) {
	names := make([]string, 0, len(*d))
	for name := range *d {
		names = append(names, name)
	}
	sort.Strings(names)

	g := &schema.GameRecord{}
	for _, name := range names {
		song := schema.SongEntry{Name: name}
		for i, diff := range schema.Difficulties {
			level, ok := (*d)[name][diff]
			if !ok {
				continue
			}
			song.Unlock[i] = true
			song.FC[i] = level.FC
			song.Levels = append(song.Levels, schema.LevelRecord{
				Score: level.Score,
				Acc:   level.Acc,
			})
		}
		g.Songs = append(g.Songs, song)
	}

	return g, g.Sync()
}
