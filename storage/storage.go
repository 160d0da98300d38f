package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/dverge/tabia/board"
)

const gameKeyPrefix = "game:"

// ErrNotFound is returned when no game with the requested ID exists.
var ErrNotFound = errors.New("storage: game not found")

// Result is the recorded outcome of a game.
type Result string

const (
	WhiteWins  Result = "1-0"
	BlackWins  Result = "0-1"
	Draw       Result = "1/2-1/2"
	Unfinished Result = "*"
)

// GameRecord is one archived game: the move log in the compact 16-bit
// encoding, plus outcome metadata. Replaying Moves from the game's starting
// layout reconstructs every position the game passed through.
type GameRecord struct {
	ID       string       `json:"id"`
	Moves    []board.Move `json:"moves"`
	Result   Result       `json:"result"`
	PlayedAt time.Time    `json:"played_at"`
}

// NewGameRecord builds a record from the moves of a finished game. The
// resolved per-move facts a Position's history carries (targets, captured
// kinds) are intentionally not persisted: replay recomputes them exactly.
func NewGameRecord(id string, moves []board.Move, result Result) GameRecord {
	return GameRecord{
		ID:       id,
		Moves:    append([]board.Move(nil), moves...),
		Result:   result,
		PlayedAt: time.Now(),
	}
}

// Store wraps BadgerDB for persistent game storage.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame writes a game record, overwriting any previous record with the
// same ID.
func (s *Store) SaveGame(rec GameRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("storage: game record without ID")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+rec.ID), data)
	})
}

// LoadGame reads the game record with the given ID.
func (s *Store) LoadGame(id string) (GameRecord, error) {
	var rec GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, err
}

// ListGames returns the IDs of all archived games.
func (s *Store) ListGames() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, strings.TrimPrefix(key, gameKeyPrefix))
		}
		return nil
	})

	return ids, err
}

// DeleteGame removes the game record with the given ID. Deleting a missing
// game is not an error.
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKeyPrefix + id))
	})
}

// Replay applies the record's move log to the given starting position,
// returning the final position. The starting layout is the caller's to
// supply; the log itself carries only the moves.
func (r GameRecord) Replay(start *board.Position) *board.Position {
	p := start.Copy()
	for _, m := range r.Moves {
		p.Apply(m)
	}
	return p
}
