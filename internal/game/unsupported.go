package game

import (
	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

// These rules are recognised but not played. Each returns an
// *errors.UnsupportedError, or ErrGameOver once the game has ended.

// Castle always fails.
func (g *Game) Castle(side chess.Side, kingSide bool) error {
	return g.unsupported("castling")
}

// EnPassantCapture always fails.
func (g *Game) EnPassantCapture(from, to chess.Position) error {
	return g.unsupported("en passant")
}

// RequestDraw always fails.
func (g *Game) RequestDraw(side chess.Side) error {
	return g.unsupported("draw offer")
}

// Resign always fails.
func (g *Game) Resign(side chess.Side) error {
	return g.unsupported("resignation")
}

// IsGameOver reports true for an ended game. Check and mate are not
// detected, so for a running game it fails as unsupported.
func (g *Game) IsGameOver() (bool, error) {
	if g.state == Ended {
		return true, nil
	}
	return false, errors.Unsupported("game over detection")
}

func (g *Game) unsupported(feature string) error {
	if g.state == Ended {
		return errors.ErrGameOver
	}
	return errors.Unsupported(feature)
}
