package event_test

import (
	"testing"

	"quick-event/internal/event"
)

func TestParseAliases(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		table := event.ParseAliases("mom=mom@x.com,dad=dad@x.com")
		if len(table) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(table))
		}
		if table["mom"] != "mom@x.com" || table["dad"] != "dad@x.com" {
			t.Errorf("unexpected table: %v", table)
		}
	})

	t.Run("Keys Are Lowercased", func(t *testing.T) {
		table := event.ParseAliases("Mom = mom@x.com")
		if table["mom"] != "mom@x.com" {
			t.Errorf("expected lowercase key lookup to hit, got %v", table)
		}
	})

	t.Run("Malformed Entries Skipped", func(t *testing.T) {
		table := event.ParseAliases("mom=mom@x.com, nonsense, =orphan@x.com, empty= , dad=dad@x.com")
		if len(table) != 2 {
			t.Fatalf("expected malformed entries skipped, got %v", table)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if table := event.ParseAliases(""); len(table) != 0 {
			t.Errorf("expected empty table, got %v", table)
		}
	})

	t.Run("Value Keeps Original Case", func(t *testing.T) {
		table := event.ParseAliases("boss=Boss.Person@Example.com")
		if table["boss"] != "Boss.Person@Example.com" {
			t.Errorf("email must keep its case, got %q", table["boss"])
		}
	})
}
