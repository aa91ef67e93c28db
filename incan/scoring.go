package incan

import "sort"

const (
	artifactFirstTierCount = 3
	artifactFirstTierValue = 5
	artifactLaterTierValue = 10
)

// ArtifactPoints values n artifacts by accumulation order: the first
// three are worth 5 each, every later one 10. The face value printed
// on the card does not count.
func ArtifactPoints(n int) int {
	if n <= artifactFirstTierCount {
		return n * artifactFirstTierValue
	}
	return artifactFirstTierCount*artifactFirstTierValue +
		(n-artifactFirstTierCount)*artifactLaterTierValue
}

type PlayerResult struct {
	Seat       int    `json:"seat"`
	Name       string `json:"name"`
	Human      bool   `json:"human"`
	CampScore  int    `json:"campScore"`
	Artifacts  int    `json:"artifacts"`
	FinalScore int    `json:"finalScore"`
	Winner     bool   `json:"winner"`
}

// FinalReport ranks every player by final score. Ties are preserved:
// all maximum-score players appear in Winners.
type FinalReport struct {
	GameID  string         `json:"gameId"`
	Rounds  int            `json:"rounds"`
	Results []PlayerResult `json:"results"`
	Winners []string       `json:"winners"`
}

// FinalReport recomputes the ranking from current player state. Calling
// it twice on the same end-of-game state yields identical results.
func (g *Game) FinalReport() *FinalReport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.buildReportLocked()
}

func (g *Game) buildReportLocked() *FinalReport {
	out := &FinalReport{
		GameID:  g.id,
		Rounds:  g.cfg.Rounds,
		Results: make([]PlayerResult, 0, len(g.players)),
	}

	best := 0
	for i, p := range g.players {
		score := p.camp + ArtifactPoints(p.artifacts)
		if i == 0 || score > best {
			best = score
		}
		out.Results = append(out.Results, PlayerResult{
			Seat:       p.Seat,
			Name:       p.Name,
			Human:      p.Human,
			CampScore:  p.camp,
			Artifacts:  p.artifacts,
			FinalScore: score,
		})
	}

	sort.SliceStable(out.Results, func(i, j int) bool {
		a, b := out.Results[i], out.Results[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.Artifacts != b.Artifacts {
			return a.Artifacts > b.Artifacts
		}
		return a.Seat < b.Seat
	})

	for i := range out.Results {
		if out.Results[i].FinalScore == best {
			out.Results[i].Winner = true
			out.Winners = append(out.Winners, out.Results[i].Name)
		}
	}
	return out
}
