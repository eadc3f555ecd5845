package model

// FriendID uniquely identifies a friend
type FriendID int

// FriendStatus is the presence of a friend
type FriendStatus string

const (
	FriendOnline  FriendStatus = "online"
	FriendOffline FriendStatus = "offline"
	FriendPlaying FriendStatus = "playing"
)

// Friend is an entry in the friends sidebar
type Friend struct {
	ID     FriendID     `yaml:"id" json:"id"`
	Name   string       `yaml:"name" json:"name"`
	Status FriendStatus `yaml:"status" json:"status"`
	Game   string       `yaml:"game,omitempty" json:"game,omitempty"` // Meaningful only when playing
	Avatar string       `yaml:"avatar" json:"avatar"`
}

// IsOnline returns true for online and playing friends
func (f Friend) IsOnline() bool {
	return f.Status == FriendOnline || f.Status == FriendPlaying
}

// CurrentGame returns the game label if the friend is playing, otherwise ""
func (f Friend) CurrentGame() string {
	if f.Status != FriendPlaying {
		return ""
	}
	return f.Game
}
