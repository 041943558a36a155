package president

import "fmt"

// Rank labels
const (
	LabelPresident     = "President"
	LabelVicePresident = "Vice-President"
	LabelNeutral       = "Neutral"
	LabelViceSlave     = "Vice-Slave"
	LabelSlave         = "Slave"
)

// appendOutcome records that the player emptied their hand
func (g *Game) appendOutcome(p *Player) {
	for _, id := range g.round.outcome {
		if id == p.ID {
			panic(fmt.Sprintf("player %s is already in the outcome", p.ID))
		}
	}

	g.round.outcome = append(g.round.outcome, p.ID)
}

// RankLabels returns the title given to each finishing position for n players
func RankLabels(n int) []string {
	switch {
	case n < 2:
		return nil
	case n == 2:
		return []string{LabelPresident, LabelSlave}
	case n == 3:
		return []string{LabelPresident, LabelNeutral, LabelSlave}
	}

	labels := make([]string, n)
	labels[0] = LabelPresident
	labels[1] = LabelVicePresident
	for i := 2; i < n-2; i++ {
		labels[i] = LabelNeutral
	}

	labels[n-2] = LabelViceSlave
	labels[n-1] = LabelSlave

	return labels
}
