// Command skraflctl is a terminal demo client for the engine: it wires
// Config -> Lexicon -> Controller and either drives a game from a
// recorded move log or plays interactively, printing Board renderings
// with the teacher's String() idiom after each move.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/milgrim/scrabblecore/internal/config"
	"github.com/milgrim/scrabblecore/internal/engine"
	"github.com/milgrim/scrabblecore/internal/lexicon"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

func main() {
	envFile := flag.String("env", ".env", "Path to an optional .env file")
	lexiconPath := flag.String("lexicon", "", "Path to the lexicon word list (overrides LEXICON_PATH)")
	numPlayers := flag.Int("players", 2, "Number of players (2-4)")
	seed := flag.Int64("seed", 0, "Tile bag seed (0 uses the configured default)")
	movesFile := flag.String("moves", "", "Path to a recorded move log to replay non-interactively")
	flag.Parse()

	cfg := config.Load(*envFile)
	if *lexiconPath != "" {
		cfg.LexiconPath = *lexiconPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	logger := cfg.Logger()

	lex, err := loadLexicon(cfg.LexiconPath)
	if err != nil {
		logger.Printf("failed to load lexicon from %s: %v", cfg.LexiconPath, err)
		os.Exit(1)
	}

	ctrl, err := engine.NewController(engine.Config{
		NumPlayers: *numPlayers,
		Seed:       cfg.Seed,
		Lexicon:    lex,
		Logger:     logger,
		Replay:     engine.NewReplayCache(),
	})
	if err != nil {
		logger.Printf("failed to start game: %v", err)
		os.Exit(1)
	}

	if *movesFile != "" {
		replayFile(ctrl, *movesFile, logger)
		return
	}
	interactive(ctrl)
}

func loadLexicon(path string) (*lexicon.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexicon.Load(f)
}

// replayFile drives the controller from a recorded move log, one move
// per line: "pass", "exchange A,B,C", or "x,y,letter[*];..." for a
// placement (a trailing '*' marks a blank assigned to that letter).
func replayFile(ctrl *engine.Controller, path string, logger interface{ Printf(string, ...interface{}) }) {
	f, err := os.Open(path)
	if err != nil {
		logger.Printf("failed to open move log %s: %v", path, err)
		os.Exit(1)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		applyLine(ctrl, line)
		fmt.Println(ctrl.Board())
		if ctrl.IsGameOver() {
			fmt.Println("Game over.")
			return
		}
	}
}

func applyLine(ctrl *engine.Controller, line string) {
	player := ctrl.CurrentPlayer()
	switch {
	case line == "pass":
		if _, err := ctrl.ApplyMove(player, nil); err != nil {
			fmt.Printf("pass rejected: %v\n", err)
		}
		return
	case strings.HasPrefix(line, "exchange"):
		want, err := parseExchange(line)
		if err != nil {
			fmt.Printf("malformed move line %q: %v\n", line, err)
			return
		}
		if err := ctrl.ExchangeTiles(player, want); err != nil {
			fmt.Printf("exchange rejected: %v\n", err)
		}
		return
	}
	placements, err := parsePlacements(line)
	if err != nil {
		fmt.Printf("malformed move line %q: %v\n", line, err)
		return
	}
	outcome, err := ctrl.ApplyMove(player, placements)
	if err != nil {
		fmt.Printf("move rejected: %v\n", err)
		return
	}
	fmt.Printf("player %d scored %d with %v\n", player, outcome.TurnScore, formedWordTexts(outcome.FormedWords))
}

// parseExchange parses "exchange A,B,C" into the tiles the current
// player wants to trade back into the bag, where a "?" stands for an
// unassigned blank.
func parseExchange(line string) ([]tiles.Tile, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "exchange"))
	if rest == "" {
		return nil, fmt.Errorf("exchange requires at least one tile")
	}
	fields := strings.Split(rest, ",")
	want := make([]tiles.Tile, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "?" {
			want = append(want, tiles.Tile{IsBlank: true})
			continue
		}
		letter := strings.ToUpper(f)
		if len(letter) != 1 {
			return nil, fmt.Errorf("expected a single letter or '?', got %q", f)
		}
		want = append(want, tiles.Tile{Letter: []rune(letter)[0]})
	}
	return want, nil
}

func formedWordTexts(words []engine.FormedWord) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func parsePlacements(line string) ([]engine.Placement, error) {
	parts := strings.Split(line, ";")
	placements := make([]engine.Placement, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("expected x,y,letter got %q", part)
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, err
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		letterField := fields[2]
		isBlank := strings.HasSuffix(letterField, "*")
		letter := strings.ToUpper(strings.TrimSuffix(letterField, "*"))
		if letter == "" {
			return nil, fmt.Errorf("missing letter in %q", part)
		}
		placements = append(placements, engine.Placement{
			Letter:  []rune(letter)[0],
			X:       x,
			Y:       y,
			IsBlank: isBlank,
		})
	}
	return placements, nil
}

// interactive reads placement lines from stdin until EOF, printing the
// board after each accepted or rejected move.
func interactive(ctrl *engine.Controller) {
	fmt.Println(ctrl.Board())
	scanner := bufio.NewScanner(os.Stdin)
	for !ctrl.IsGameOver() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		applyLine(ctrl, line)
		fmt.Println(ctrl.Board())
	}
}
