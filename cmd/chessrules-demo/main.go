// Command chessrules-demo plays a fixed, scripted game through the rules
// engine and persists the resulting transcript. It takes no interactive
// input — it is the ambient-stack equivalent of the teacher's
// cmd/chessplay-uci binary: a minimal wiring entry point, not a feature.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/greenvale/chess/internal/board"
	"github.com/greenvale/chess/internal/history"
)

// scriptedMoves is the opening sequence from original_source's main.cpp,
// replayed here in coordinate notation.
var scriptedMoves = []string{
	"e2e3", "e7e5",
	"e3e4", "f7f5",
	"d1h5",
}

func main() {
	historyDir := flag.String("history-dir", defaultHistoryDir(), "directory for the game history database")
	gameID := flag.String("game-id", "demo-1", "key to store this game's transcript under")
	flag.Parse()

	store, err := history.Open(*historyDir)
	if err != nil {
		log.Fatalf("opening history store: %v", err)
	}
	defer store.Close()

	b := board.NewBoard()
	var played []board.Move

	for _, s := range scriptedMoves {
		mv, err := board.ParseMove(s)
		if err != nil {
			log.Fatalf("parsing move %q: %v", s, err)
		}
		if result := b.RequestMove(mv, board.NoPieceType); result != board.Success {
			log.Fatalf("move %s rejected, board state:\n%s", s, b)
		}
		played = append(played, mv)
		log.Printf("played %s (%s to move, status=%s)", s, b.SideToMove(), b.Status())
	}

	log.Printf("final position:\n%s", b)

	if err := store.RecordGame(*gameID, b, played, time.Now()); err != nil {
		log.Fatalf("recording game history: %v", err)
	}
	log.Printf("recorded game %q to %s", *gameID, *historyDir)
}

// defaultHistoryDir resolves a per-user directory for the history
// database, falling back to a relative path if the home directory cannot
// be determined.
func defaultHistoryDir() string {
	if dir := os.Getenv("CHESSRULES_HISTORY_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "chessrules-history"
	}
	return filepath.Join(home, ".chessrules", "history")
}
