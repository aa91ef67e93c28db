package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Matthew-w56/incan-gold-cli/incan"
	"github.com/Matthew-w56/incan-gold-cli/incan/npc"
	"github.com/Matthew-w56/incan-gold-cli/internal/gateway"
	"github.com/Matthew-w56/incan-gold-cli/internal/leaderboard"
)

func main() {
	_ = godotenv.Load()

	var (
		playerName   = flag.String("name", "You", "display name for the human explorer")
		opponents    = flag.Int("players", 3, "number of AI opponents (1-6)")
		rounds       = flag.Int("rounds", incan.DefaultRounds, "rounds in the expedition")
		seed         = flag.Int64("seed", 0, "deck shuffle seed (0 = time-based)")
		personasPath = flag.String("personas", "", "optional JSON file with extra AI personas")
		listen       = flag.String("listen", "", "optional address for the spectator WebSocket server, e.g. :8080")
	)
	flag.Parse()

	if *opponents < incan.MinPlayers || *opponents > incan.MaxPlayers-1 {
		log.Fatalf("[CLI] -players must be between %d and %d", incan.MinPlayers, incan.MaxPlayers-1)
	}

	registry := npc.NewRegistry()
	if *personasPath != "" {
		if err := registry.LoadFromFile(*personasPath); err != nil {
			log.Fatalf("[CLI] Failed to load personas from %s: %v", *personasPath, err)
		}
	}

	board, boardMode, err := leaderboard.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[CLI] Failed to init leaderboard (%s): %v", boardMode, err)
	}
	defer board.Close()
	log.Printf("[CLI] Leaderboard mode: %s", boardMode)

	var gw *gateway.Gateway
	if *listen != "" {
		gw = gateway.New()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", gw.HandleWebSocket)
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})
		go func() {
			log.Printf("[CLI] Spectator server on %s", *listen)
			if err := http.ListenAndServe(*listen, mux); err != nil {
				log.Printf("[CLI] Spectator server stopped: %v", err)
			}
		}()
	}

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	for {
		fmt.Fprintf(out, "\n--- Incan Gold ---\n[p]lay, [t]op scores or [q]uit? ")
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "p", "play":
			runGame(in, out, registry, board, gw, gameOptions{
				playerName: *playerName,
				opponents:  *opponents,
				rounds:     *rounds,
				seed:       *seed,
			})
		case "t", "top", "l":
			printLeaderboard(out, board)
		case "q", "quit":
			return
		}
	}
}

type gameOptions struct {
	playerName string
	opponents  int
	rounds     int
	seed       int64
}

func runGame(in *bufio.Reader, out *os.File, registry *npc.Registry, board leaderboard.Service, gw *gateway.Gateway, opts gameOptions) {
	game, err := incan.NewGame(incan.Config{
		Rounds: opts.rounds,
		Seed:   opts.seed,
	})
	if err != nil {
		log.Printf("[CLI] Failed to create game: %v", err)
		return
	}

	if err := game.AddPlayer(opts.playerName, true, incan.Human{
		Label:  opts.playerName,
		Prompt: PromptDecision(in, out),
	}); err != nil {
		log.Printf("[CLI] Failed to seat player: %v", err)
		return
	}

	for i, persona := range registry.Roster(opts.opponents) {
		brain, err := npc.NewBrain(persona, opts.seed+int64(i)+1)
		if err != nil {
			log.Printf("[CLI] Failed to build brain for %s: %v", persona.ID, err)
			return
		}
		if err := game.AddPlayer(persona.Name, false, brain); err != nil {
			log.Printf("[CLI] Failed to seat %s: %v", persona.Name, err)
			return
		}
		fmt.Fprintf(out, "%s joins the expedition. %s\n", persona.Name, persona.Tagline)
	}

	game.Subscribe(NewRenderer(out))
	if gw != nil {
		game.Subscribe(gw.Sink())
	}

	report, err := game.Run()
	if err != nil {
		if errors.Is(err, incan.ErrGameAborted) {
			fmt.Fprintf(out, "\nExpedition abandoned.\n")
			return
		}
		log.Printf("[CLI] Game failed: %v", err)
		return
	}

	saveHumanWin(out, board, report)
}

func saveHumanWin(out *os.File, board leaderboard.Service, report *incan.FinalReport) {
	for _, res := range report.Results {
		if !res.Human || !res.Winner {
			continue
		}
		err := board.SaveScore(context.Background(), leaderboard.Entry{
			Name:      res.Name,
			Score:     res.FinalScore,
			Artifacts: res.Artifacts,
		})
		if err != nil {
			log.Printf("[CLI] Failed to save score: %v", err)
			return
		}
		fmt.Fprintf(out, "Your victory is on the leaderboard!\n")
		return
	}
}

func printLeaderboard(out *os.File, board leaderboard.Service) {
	entries, err := board.Top(context.Background(), leaderboard.DefaultLimit)
	if err != nil {
		log.Printf("[CLI] Failed to load leaderboard: %v", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintf(out, "\nNo winning expeditions recorded yet.\n")
		return
	}
	fmt.Fprintf(out, "\n===== Top scores =====\n")
	for i, e := range entries {
		fmt.Fprintf(out, "%2d. %-20s %3d points (%d artifact(s)) %s\n",
			i+1, e.Name, e.Score, e.Artifacts, e.PlayedAt.Format("2006-01-02"))
	}
}
