package game

const (
	DefaultWidth           = 8
	DefaultPiecesPerPlayer = 12
	DefaultDrawAmount      = 15
)

// Settings are the construction parameters of a game.
type Settings struct {
	Width           int
	PiecesPerPlayer int
	DrawAmount      int
	Names           [2]string
	Arrange         bool
}

// NewStandardSettings returns the 8x8, twelve pieces per side setup.
func NewStandardSettings() Settings {
	return Settings{
		Width:           DefaultWidth,
		PiecesPerPlayer: DefaultPiecesPerPlayer,
		DrawAmount:      DefaultDrawAmount,
		Names:           [2]string{"p1", "p2"},
		Arrange:         true,
	}
}

type Option func(s *Settings)

func WithWidth(width int) Option {
	return func(s *Settings) {
		if width > 0 {
			s.Width = width
		}
	}
}

func WithPiecesPerPlayer(pieces int) Option {
	return func(s *Settings) {
		if pieces >= 0 {
			s.PiecesPerPlayer = pieces
		}
	}
}

func WithDrawAmount(amount int) Option {
	return func(s *Settings) {
		if amount > 0 {
			s.DrawAmount = amount
		}
	}
}

func WithPlayerNames(player1, player2 string) Option {
	return func(s *Settings) {
		if player1 != "" {
			s.Names[0] = player1
		}
		if player2 != "" {
			s.Names[1] = player2
		}
	}
}

// WithoutArrangement leaves the board empty so a position can be composed
// with Place.
func WithoutArrangement() Option {
	return func(s *Settings) {
		s.Arrange = false
	}
}
