package render

import (
	"fmt"
	"strings"

	"github.com/Abdur667/CS182-Final/internal/board"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/pieces"
	"github.com/Abdur667/CS182-Final/internal/storage"
)

var resourceOrder = []board.Resource{
	board.ResourceWood, board.ResourceBrick, board.ResourceWheat, board.ResourceSheep, board.ResourceOre,
}

// Board lists tiles in id order followed by the ports. The robber's tile
// is marked with R.
func Board(b *board.Board, styled bool) string {
	p := painter{styled: styled}
	var sb strings.Builder

	sb.WriteString(p.with(titleStyle, "Board"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "  %-4s  %-7s  %-3s\n", "Tile", "Terrain", "No.")
	for _, t := range b.Tiles {
		num := "-"
		if t.Number > 0 {
			num = fmt.Sprint(t.Number)
		}
		mark := ""
		if t.ID == b.RobberTile() {
			mark = " R"
		}
		name := t.Terrain.String()
		fmt.Fprintf(&sb, "  %-4d  %s  %-3s%s\n", t.ID, p.terrain(name, fmt.Sprintf("%-7s", name)), num, mark)
	}

	if len(b.Ports) > 0 {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %-7s  %s\n", "Port", "Trade")
		for _, port := range b.Ports {
			fmt.Fprintf(&sb, "  %-7s  %s\n", fmt.Sprintf("%d %s", port.TileID, port.Direction), port.Type)
		}
	}
	return sb.String()
}

// Report renders a finished game: the winner, then one line per player.
func Report(rep *game.Report, styled bool) string {
	p := painter{styled: styled}
	var sb strings.Builder

	sb.WriteString(p.with(titleStyle, "Game over"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s after %d turns\n\n",
		p.with(winnerStyle, fmt.Sprintf("%s wins", rep.Winner)), rep.Turns)

	fmt.Fprintf(&sb, "  %-4s  %-18s  %-3s  %-5s  %s\n", "Seat", "Player", "VP", "S/C/R", "Production")
	for _, pl := range rep.Players {
		s, c, r := tally(rep.Pieces[pl])
		fmt.Fprintf(&sb, "  %-4d  %s  %-3d  %-5s  %s\n",
			pl.Seat,
			p.color(pl.Color, fmt.Sprintf("%-18s", pl.String())),
			rep.Points[pl],
			fmt.Sprintf("%d/%d/%d", s, c, r),
			production(rep.ResourceCounts(pl)))
	}
	fmt.Fprintf(&sb, "\n%s\n", p.with(dimStyle, "ended "+rep.EndedAt.Format("2006-01-02 15:04:05")))
	return sb.String()
}

func tally(pls []board.Placement) (settlements, cities, roads int) {
	for _, pl := range pls {
		switch pl.Piece.Type {
		case pieces.Settlement:
			settlements++
		case pieces.City:
			cities++
		case pieces.Road:
			roads++
		}
	}
	return settlements, cities, roads
}

func production(counts map[board.Resource]int) string {
	var parts []string
	for _, r := range resourceOrder {
		if n := counts[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// Games renders stored games newest first.
func Games(records []storage.GameRecord, styled bool) string {
	p := painter{styled: styled}
	var sb strings.Builder

	fmt.Fprintf(&sb, "  %-36s  %-16s  %-5s  %-18s  %s\n", "ID", "Ended", "Turns", "Winner", "Points")
	fmt.Fprintf(&sb, "  %-36s  %-16s  %-5s  %-18s  %s\n", "--", "-----", "-----", "------", "------")
	for _, rec := range records {
		points := make([]string, 0, len(rec.Players))
		for _, pr := range rec.Players {
			points = append(points, fmt.Sprint(pr.Points))
		}
		winner := fmt.Sprintf("%s (%s)", rec.Winner.Color, rec.Winner.Name)
		fmt.Fprintf(&sb, "  %-36s  %-16s  %-5d  %s  %s\n",
			rec.ID,
			rec.EndedAt.Local().Format("2006-01-02 15:04"),
			rec.Turns,
			p.color(rec.Winner.Color, fmt.Sprintf("%-18s", winner)),
			strings.Join(points, "/"))
	}
	return sb.String()
}

// Stats renders per-player aggregates.
func Stats(stats []storage.PlayerStats, styled bool) string {
	p := painter{styled: styled}
	var sb strings.Builder

	fmt.Fprintf(&sb, "  %-12s  %-5s  %-4s  %-6s  %s\n", "Player", "Games", "Wins", "Avg VP", "Last game")
	for _, st := range stats {
		fmt.Fprintf(&sb, "  %-12s  %-5d  %-4d  %-6.2f  %s\n",
			st.Name, st.Games, st.Wins, st.AvgPoints,
			p.with(dimStyle, st.LastPlay.Local().Format("2006-01-02 15:04")))
	}
	return sb.String()
}
