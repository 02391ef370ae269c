package history

import (
	"fmt"
	"testing"

	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

func mustStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", 49)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_AddAndAll(t *testing.T) {
	s := mustStore(t)

	oldest := models.Draw{Date: "2024-01-06", Numbers: [6]int{1, 5, 12, 23, 34, 45}, Bonus: 7}
	newest := models.Draw{Date: "2024-01-13", Numbers: [6]int{3, 9, 18, 27, 36, 44}, Bonus: 2}

	if err := s.Add(oldest); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(newest); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	draws, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(draws) != 2 {
		t.Fatalf("Expected 2 draws, got %d", len(draws))
	}

	// Newest-first ordering: the last inserted draw comes first
	if draws[0].Date != "2024-01-13" {
		t.Errorf("Expected newest draw first, got date %s", draws[0].Date)
	}
	if draws[0].Numbers != newest.Numbers {
		t.Errorf("Expected numbers %v, got %v", newest.Numbers, draws[0].Numbers)
	}
	if draws[1].Bonus != 7 {
		t.Errorf("Expected bonus 7 on oldest draw, got %d", draws[1].Bonus)
	}
}

func TestStore_AddRejectsInvalidDraw(t *testing.T) {
	s := mustStore(t)

	bad := models.Draw{Date: "2024-01-06", Numbers: [6]int{1, 1, 12, 23, 34, 45}, Bonus: 7}
	if err := s.Add(bad); err == nil {
		t.Error("expected error for duplicate main number, got nil")
	}

	outOfRange := models.Draw{Date: "2024-01-06", Numbers: [6]int{1, 5, 12, 23, 34, 50}, Bonus: 7}
	if err := s.Add(outOfRange); err == nil {
		t.Error("expected error for out-of-range number, got nil")
	}
}

func TestStore_Recent(t *testing.T) {
	s := mustStore(t)

	for i := 0; i < 5; i++ {
		d := models.Draw{
			Date:    fmt.Sprintf("2024-01-%02d", i+1),
			Numbers: [6]int{1 + i, 10, 20, 30, 40, 49},
			Bonus:   8,
		}
		if err := s.Add(d); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	recent, err := s.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 draws, got %d", len(recent))
	}
	if recent[0].Date != "2024-01-05" {
		t.Errorf("Expected newest draw first, got %s", recent[0].Date)
	}

	empty, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent(0) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty slice for limit 0, got %d draws", len(empty))
	}
}

func TestStore_CountAndRotate(t *testing.T) {
	s := mustStore(t)

	for i := 0; i < 10; i++ {
		d := models.Draw{
			Date:    fmt.Sprintf("2024-02-%02d", i+1),
			Numbers: [6]int{2, 11, 21, 31, 41, 48},
			Bonus:   5,
		}
		if err := s.Add(d); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 10 {
		t.Fatalf("Expected count 10, got %d", n)
	}

	if err := s.Rotate(4); err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}

	n, err = s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 4 {
		t.Errorf("Expected count 4 after rotation, got %d", n)
	}

	// The survivors must be the newest draws
	draws, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if draws[0].Date != "2024-02-10" {
		t.Errorf("Expected newest draw to survive rotation, got %s", draws[0].Date)
	}
	if draws[len(draws)-1].Date != "2024-02-07" {
		t.Errorf("Expected oldest survivor 2024-02-07, got %s", draws[len(draws)-1].Date)
	}
}

func TestStore_EmptyAll(t *testing.T) {
	s := mustStore(t)

	draws, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(draws) != 0 {
		t.Errorf("Expected no draws, got %d", len(draws))
	}
}
