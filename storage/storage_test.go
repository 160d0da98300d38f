package storage

import (
	"errors"
	"testing"

	"github.com/dverge/tabia/board"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestSaveLoadGame(t *testing.T) {
	s := openTestStore(t)

	moves := []board.Move{
		board.NewMove(board.E2, board.E4),
		board.NewMove(board.E7, board.E5),
		board.NewMove(board.G1, board.F3),
	}
	rec := NewGameRecord("g1", moves, Draw)

	if err := s.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, err := s.LoadGame("g1")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if got.ID != rec.ID || got.Result != rec.Result {
		t.Errorf("loaded %q/%q, want %q/%q", got.ID, got.Result, rec.ID, rec.Result)
	}
	if len(got.Moves) != len(moves) {
		t.Fatalf("loaded %d moves, want %d", len(got.Moves), len(moves))
	}
	for i, m := range moves {
		if got.Moves[i] != m {
			t.Errorf("move %d = %v, want %v", i, got.Moves[i], m)
		}
	}
}

func TestLoadMissingGame(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.LoadGame("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadGame(missing) = %v, want ErrNotFound", err)
	}
}

func TestSaveGameWithoutID(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveGame(GameRecord{}); err == nil {
		t.Error("expected error saving a record without ID")
	}
}

func TestListAndDeleteGames(t *testing.T) {
	s := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		rec := NewGameRecord(id, []board.Move{board.NewMove(board.D2, board.D4)}, Unfinished)
		if err := s.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame(%s): %v", id, err)
		}
	}

	ids, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("listed %d games, want 3", len(ids))
	}

	if err := s.DeleteGame("b"); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if _, err := s.LoadGame("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadGame after delete = %v, want ErrNotFound", err)
	}

	ids, err = s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("listed %d games after delete, want 2", len(ids))
	}

	// Deleting a missing game is not an error.
	if err := s.DeleteGame("b"); err != nil {
		t.Errorf("DeleteGame(missing) = %v", err)
	}
}

// TestReplay persists a short game and checks that replaying the loaded log
// reproduces the live position bit-for-bit.
func TestReplay(t *testing.T) {
	s := openTestStore(t)

	start := board.NewPosition()
	start.Put(board.E1, board.King, board.White)
	start.Put(board.E8, board.King, board.Black)
	start.Put(board.E2, board.Pawn, board.White)
	start.Put(board.D7, board.Pawn, board.Black)

	moves := []board.Move{
		board.NewMove(board.E2, board.E4),
		board.NewMove(board.D7, board.D5),
		board.NewMove(board.E4, board.D5), // capture
	}

	live := start.Copy()
	for _, m := range moves {
		live.Apply(m)
	}

	if err := s.SaveGame(NewGameRecord("replay", moves, WhiteWins)); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	rec, err := s.LoadGame("replay")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}

	replayed := rec.Replay(start)
	if replayed.BySide != live.BySide ||
		replayed.Rotated != live.Rotated ||
		replayed.ByKind != live.ByKind ||
		replayed.Squares != live.Squares ||
		replayed.SideToMove != live.SideToMove {
		t.Error("replayed position differs from the live game")
	}
	if replayed.PieceAt(board.D5) != board.Pawn {
		t.Error("replay lost the capturing pawn")
	}
}
