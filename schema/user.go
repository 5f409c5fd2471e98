package schema

// User is the player's profile.
type User struct {
	ShowPlayerID bool
	SelfIntro    string
	Avatar       string
	Background   string
}
