package matches

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestPartitionSplitsAtNow(t *testing.T) {
	now := date("2024-06-15T18:00:00Z")
	list := []Match{
		{ID: "a", Date: date("2024-06-01T18:00:00Z")},
		{ID: "b", Date: date("2024-06-20T18:00:00Z")},
		{ID: "c", Date: date("2024-06-15T18:00:00Z")}, // exactly now: upcoming
		{ID: "d", Date: date("2024-05-01T18:00:00Z")},
		{ID: "e", Date: date("2024-07-01T18:00:00Z")},
	}

	upcoming, past := Partition(list, now)

	if len(upcoming)+len(past) != len(list) {
		t.Fatalf("partition not exhaustive: %d + %d != %d", len(upcoming), len(past), len(list))
	}

	seen := make(map[string]int)
	for _, m := range upcoming {
		if !IsUpcoming(m, now) {
			t.Fatalf("match %s in upcoming but date %v < now", m.ID, m.Date)
		}
		seen[m.ID]++
	}
	for _, m := range past {
		if IsUpcoming(m, now) {
			t.Fatalf("match %s in past but date %v >= now", m.ID, m.Date)
		}
		seen[m.ID]++
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("match %s appears %d times", id, count)
		}
	}
}

func TestPartitionOrdering(t *testing.T) {
	now := date("2024-06-15T00:00:00Z")
	list := []Match{
		{ID: "u3", Date: date("2024-09-01T00:00:00Z")},
		{ID: "u1", Date: date("2024-06-20T00:00:00Z")},
		{ID: "p1", Date: date("2024-06-01T00:00:00Z")},
		{ID: "u2", Date: date("2024-07-01T00:00:00Z")},
		{ID: "p2", Date: date("2024-02-01T00:00:00Z")},
	}

	upcoming, past := Partition(list, now)

	for i := 1; i < len(upcoming); i++ {
		if upcoming[i].Date.Before(upcoming[i-1].Date) {
			t.Fatalf("upcoming not non-decreasing at %d", i)
		}
	}
	for i := 1; i < len(past); i++ {
		if past[i].Date.After(past[i-1].Date) {
			t.Fatalf("past not non-increasing at %d", i)
		}
	}
	if upcoming[0].ID != "u1" || past[0].ID != "p1" {
		t.Fatalf("unexpected heads: %s / %s", upcoming[0].ID, past[0].ID)
	}
}

func TestPartitionKeepsInputOrderOnTies(t *testing.T) {
	now := date("2024-06-15T00:00:00Z")
	tie := date("2024-07-01T00:00:00Z")
	list := []Match{
		{ID: "first", Date: tie},
		{ID: "second", Date: tie},
		{ID: "third", Date: tie},
	}

	upcoming, _ := Partition(list, now)
	if upcoming[0].ID != "first" || upcoming[1].ID != "second" || upcoming[2].ID != "third" {
		t.Fatalf("tie order not stable: %v", []string{upcoming[0].ID, upcoming[1].ID, upcoming[2].ID})
	}
}

func TestPartitionIdempotent(t *testing.T) {
	now := date("2024-06-15T00:00:00Z")
	list := []Match{
		{ID: "a", Date: date("2024-06-20T00:00:00Z")},
		{ID: "b", Date: date("2024-06-01T00:00:00Z")},
	}

	u1, p1 := Partition(list, now)
	u2, p2 := Partition(list, now)

	if len(u1) != len(u2) || len(p1) != len(p2) {
		t.Fatal("repeated partition with same now differs")
	}
	for i := range u1 {
		if u1[i].ID != u2[i].ID {
			t.Fatal("upcoming order differs between calls")
		}
	}
	for i := range p1 {
		if p1[i].ID != p2[i].ID {
			t.Fatal("past order differs between calls")
		}
	}
}
