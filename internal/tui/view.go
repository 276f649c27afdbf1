package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/pieces"
	"github.com/Abdur667/CS182-Final/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
)

func (m Model) header() string {
	g := m.table.Game
	parts := []string{
		titleStyle.Render("Catan"),
		fmt.Sprintf("seed %d", m.table.Seed),
		fmt.Sprintf("turn %d", g.Turn()),
		g.State().String(),
	}
	if m.paused {
		parts = append(parts, pausedStyle.Render("paused"))
	} else {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("every %s", m.interval)))
	}
	return strings.Join(parts, "  ")
}

// panes renders the players table next to the table status.
func (m Model) panes() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.playersPane()),
		paneStyle.Render(m.statusPane()),
	)
}

func (m Model) playersPane() string {
	g := m.table.Game
	owned := g.Board().PlayerToPieces()

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-18s  %-3s  %s", "Player", "VP", "S/C/R")
	for _, p := range g.Players() {
		var s, c, r int
		for _, pl := range owned[p] {
			switch pl.Piece.Type {
			case pieces.Settlement:
				s++
			case pieces.City:
				c++
			case pieces.Road:
				r++
			}
		}
		marker := " "
		if g.IsInGame() && p == g.CurPlayer() {
			marker = ">"
		}
		name := render.ColorStyle(p.Color).Render(fmt.Sprintf("%-18s", p.String()))
		fmt.Fprintf(&sb, "\n%s %s  %-3d  %d/%d/%d", marker, name, g.VictoryPoints(p), s, c, r)
	}
	return sb.String()
}

func (m Model) statusPane() string {
	g := m.table.Game
	var lines []string

	roll, roller := g.LastRoll()
	if roll > 0 {
		lines = append(lines, fmt.Sprintf("last roll  %d by %s", roll, roller.Name))
	} else {
		lines = append(lines, "last roll  -")
	}
	robber := fmt.Sprintf("robber     tile %d", g.RobberTile())
	if tile, ok := g.Board().Tile(g.RobberTile()); ok {
		robber += " (" + tile.Terrain.String() + ")"
	}
	lines = append(lines, robber)
	lines = append(lines, fmt.Sprintf("dev card   %s", devCard(g.DevCardState())))
	lines = append(lines, fmt.Sprintf("history    %s", history(g)))

	if rep, ok := g.Report(); ok {
		line := winStyle.Render(fmt.Sprintf("%s wins", rep.Winner))
		if m.savedID != "" {
			line += dimStyle.Render("  saved")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func devCard(s game.DevCardState) string {
	if _, played := s.(game.DevCardPlayed); played {
		return "played"
	}
	return "not played"
}

func history(g *game.Game) string {
	switch {
	case g.CanUndo() && g.CanRedo():
		return "undo, redo"
	case g.CanUndo():
		return "undo"
	case g.CanRedo():
		return "redo"
	default:
		return "-"
	}
}

func (m Model) footer() string {
	out := m.help.View(m.keys)
	if m.err != nil {
		out = errorStyle.Render(m.err.Error()) + "\n" + out
	}
	return out
}
