package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Bravine-Kulei/snake-game-learner/internal/core"
	"github.com/Bravine-Kulei/snake-game-learner/internal/game"
)

// Board placement on the screen buffer.
const (
	boardX = 3 // Left edge of the playfield, inside the border
	boardY = 4 // Top edge of the playfield, inside the border
)

// drawSession renders a snapshot onto the screen buffer: word progress
// header, score line, bordered playfield, then message and control lines.
func drawSession(s *core.Screen, snap game.Snapshot) {
	s.Clear()

	drawWordHeader(s, snap)
	drawScoreLine(s, snap)
	drawBorder(s, snap)
	drawSnake(s, snap)
	drawFood(s, snap)

	if snap.State == game.StatePaused {
		pauseY := boardY + snap.GridHeight/2
		s.DrawTextColored(boardX+(snap.GridWidth-10)/2, pauseY, "P A U S E D", core.ColorBrightYellow)
	}

	msgY := boardY + snap.GridHeight + 2
	if snap.Message != "" {
		s.DrawTextColored(boardX-1, msgY, snap.Message, core.ColorBrightYellow)
	}

	if snap.HintShown && snap.NextLetter != 0 {
		hint := fmt.Sprintf("Hint: find the letter '%c'!", snap.NextLetter)
		s.DrawTextColored(boardX-1, msgY+1, hint, core.ColorBrightCyan)
	}

	drawControls(s, snap, msgY+3)
}

// drawWordHeader shows the target word with collected letters highlighted.
func drawWordHeader(s *core.Screen, snap game.Snapshot) {
	s.DrawTextColored(boardX-1, 0, "Spell: ", core.ColorWhite)

	x := boardX - 1 + len("Spell: ")
	for i, r := range snap.Word {
		color := core.ColorGray
		if i < snap.LettersCollected {
			color = core.ColorBrightGreen
		}
		s.SetCell(x, 0, unicode.ToUpper(r), color)
		x += 2 // Space the letters out for readability
	}

	if snap.WordCompleted {
		s.DrawTextColored(x+1, 0, "COMPLETE!", core.ColorBrightGreen)
	}
}

// drawScoreLine shows score, difficulty and snake length.
func drawScoreLine(s *core.Screen, snap game.Snapshot) {
	line := fmt.Sprintf("Score: %d   Difficulty: %s   Length: %d",
		snap.Score, snap.Difficulty, len(snap.Body))
	s.DrawTextColored(boardX-1, 1, line, core.ColorWhite)
	progress := fmt.Sprintf("Letters: %d/%d", snap.LettersCollected, len(snap.Word))
	s.DrawTextColored(boardX-1, 2, progress, core.ColorGray)
}

// drawBorder draws the playfield frame.
func drawBorder(s *core.Screen, snap game.Snapshot) {
	top := boardY - 1
	bottom := boardY + snap.GridHeight
	left := boardX - 1
	right := boardX + snap.GridWidth

	for x := left; x <= right; x++ {
		s.SetCell(x, top, '#', core.ColorGray)
		s.SetCell(x, bottom, '#', core.ColorGray)
	}
	for y := top; y <= bottom; y++ {
		s.SetCell(left, y, '#', core.ColorGray)
		s.SetCell(right, y, '#', core.ColorGray)
	}
}

// drawSnake draws the head as X and each trailing segment as the letter it
// carries, in pickup order behind the head. Segments past the word length
// fall back to a plain o.
func drawSnake(s *core.Screen, snap game.Snapshot) {
	headColor := core.ColorBrightGreen
	if snap.State == game.StateGameOver {
		headColor = core.ColorBrightRed
	}

	for i, p := range snap.Body {
		x := boardX + p.Col
		y := boardY + p.Row
		if i == 0 {
			s.SetCell(x, y, 'X', headColor)
			continue
		}
		r := snap.SegmentLetter(i)
		if r == 0 {
			r = 'o'
		}
		s.SetCell(x, y, r, core.ColorGreen)
	}
}

// drawFood draws the next letter to collect at the food position.
func drawFood(s *core.Screen, snap game.Snapshot) {
	if snap.Food == nil {
		return
	}
	r := snap.NextLetter
	if r == 0 {
		r = '*' // Word already spelled, pickups keep the snake growing
	}
	color := core.ColorBrightYellow
	if snap.HintShown {
		color = core.ColorBrightMagenta
	}
	s.SetCell(boardX+snap.Food.Col, boardY+snap.Food.Row, unicode.ToUpper(r), color)
}

// drawControls shows the key bindings relevant to the current state.
func drawControls(s *core.Screen, snap game.Snapshot, y int) {
	var controls string
	switch snap.State {
	case game.StateGameOver, game.StateWon:
		controls = "R: Play again  |  B: New word  |  Q: Quit"
	case game.StatePaused:
		controls = "P: Resume  |  Q: Quit"
	default:
		controls = "Arrows/WASD: Steer  |  H: Hint  |  P: Pause  |  Q: Quit"
	}
	s.DrawTextColored(boardX-1, y, controls, core.ColorGray)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
