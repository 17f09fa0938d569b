// Package history persists completed games against a game ID, the same
// embedded-KV idiom the teacher uses for its own user-preference storage,
// repurposed here to record the rules engine's own output: the move list
// a game was played with and how it ended.
package history

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/greenvale/chess/internal/board"
)

// Record is a single completed game: the moves it was played with, in
// coordinate notation, and its terminal status and winner.
type Record struct {
	GameID    string    `json:"game_id"`
	Moves     []string  `json:"moves"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner"`
	FinishedAt time.Time `json:"finished_at"`
}

// Store wraps a Badger database holding Records keyed by GameID.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a Store backed by the Badger
// database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordGame builds a Record from a finished board and the moves that
// were played to reach it, and persists it under gameID. b's status is not
// checked: a board whose game is still InProgress is recorded with that
// status as-is.
func (s *Store) RecordGame(gameID string, b *board.Board, moves []board.Move, finishedAt time.Time) error {
	strMoves := make([]string, len(moves))
	for i, m := range moves {
		strMoves[i] = m.String()
	}

	rec := Record{
		GameID:     gameID,
		Moves:      strMoves,
		Status:     b.Status().String(),
		Winner:     b.Winner().String(),
		FinishedAt: finishedAt,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameID), data)
	})
}

// LoadGame retrieves the Record stored under gameID.
func (s *Store) LoadGame(gameID string) (*Record, error) {
	var rec Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
