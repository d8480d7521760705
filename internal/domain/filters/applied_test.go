package filters

import (
	"reflect"
	"testing"
)

func TestAppliedID(t *testing.T) {
	a := Applied{Key: "status", Value: "open"}
	if got := a.ID(); got != "status-open" {
		t.Errorf("ID mismatch\nwant: %s\ngot:  %s", "status-open", got)
	}
}

func TestSetAdd_AppendsInOrder(t *testing.T) {
	set := Set{}
	set = set.Add(Applied{Key: "status", Value: "open"})
	set = set.Add(Applied{Key: "channel", Value: "web"})
	set = set.Add(Applied{Key: "status", Value: "closed"})

	want := []string{"status-open", "channel-web", "status-closed"}
	if len(set) != len(want) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(set))
	}
	for i, id := range want {
		if set[i].ID() != id {
			t.Errorf("position %d: want %s, got %s", i, id, set[i].ID())
		}
	}
}

func TestSetAdd_DedupIsIdempotent(t *testing.T) {
	set := Set{}.Add(Applied{Key: "status", Value: "open"})

	once := set.Add(Applied{Key: "status", Value: "open"})
	twice := once.Add(Applied{Key: "status", Value: "open"})

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("adding the same filter twice changed the set: %v vs %v", once, twice)
	}
	if len(once) != 1 {
		t.Errorf("duplicate was not dropped, length %d", len(once))
	}
}

func TestSetAdd_FirstWins(t *testing.T) {
	first := Applied{Key: "status", Value: "open", Label: "First"}
	second := Applied{Key: "status", Value: "open", Label: "Second"}

	set := Set{}.Add(first).Add(second)

	if len(set) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(set))
	}
	if set[0].Label != "First" {
		t.Errorf("later duplicate replaced the original: got label %q", set[0].Label)
	}
}

func TestSetAdd_SameValueDifferentKeyKept(t *testing.T) {
	set := Set{}.
		Add(Applied{Key: "status", Value: "open"}).
		Add(Applied{Key: "door", Value: "open"})
	if len(set) != 2 {
		t.Errorf("distinct keys with equal values must both stay, got %d entries", len(set))
	}
}

func TestSetAdd_DoesNotMutateReceiver(t *testing.T) {
	// The backing array must not be shared with the result: a second Add on
	// the same receiver would otherwise clobber the first result's tail.
	base := make(Set, 0, 4)
	base = base.Add(Applied{Key: "a", Value: "1"})

	withB := base.Add(Applied{Key: "b", Value: "2"})
	withC := base.Add(Applied{Key: "c", Value: "3"})

	if withB[1].Key != "b" || withC[1].Key != "c" {
		t.Errorf("Add shares backing storage with its receiver: %v / %v", withB, withC)
	}
	if len(base) != 1 {
		t.Errorf("receiver was mutated, length %d", len(base))
	}
}

func TestSetRemove_IsLeftInverseOfAdd(t *testing.T) {
	base := Set{}.
		Add(Applied{Key: "status", Value: "open"}).
		Add(Applied{Key: "channel", Value: "web"})

	fresh := Applied{Key: "created", Value: "today"}
	got := base.Add(fresh).Remove(fresh.ID())

	if !reflect.DeepEqual(got, base) {
		t.Errorf("remove(add(C, f), id(f)) != C\nwant: %v\ngot:  %v", base, got)
	}
}

func TestSetRemove_AbsentIDYieldsFreshCopy(t *testing.T) {
	base := Set{}.Add(Applied{Key: "status", Value: "open"})

	got := base.Remove("nonexistent-id")

	if !reflect.DeepEqual(got, base) {
		t.Errorf("removing an absent id changed contents: %v", got)
	}
	if len(got) > 0 && &got[0] == &base[0] {
		t.Error("removing an absent id must still return a fresh collection")
	}
}

func TestSetRemove_OnlyFirstMatch(t *testing.T) {
	// Sets built outside Add may carry duplicate ids; Remove must excise
	// only the first.
	dup := Applied{Key: "status", Value: "open"}
	set := Set{dup, {Key: "channel", Value: "web"}, dup}

	got := set.Remove(dup.ID())

	if len(got) != 2 {
		t.Fatalf("expected 2 entries after removal, got %d", len(got))
	}
	if got[0].Key != "channel" || got[1].Key != "status" {
		t.Errorf("wrong entry removed: %v", got)
	}
}

func TestSetRemove_PreservesOrder(t *testing.T) {
	set := Set{}.
		Add(Applied{Key: "a", Value: "1"}).
		Add(Applied{Key: "b", Value: "2"}).
		Add(Applied{Key: "c", Value: "3"})

	got := set.Remove("b-2")

	want := []string{"a-1", "c-3"}
	for i, id := range want {
		if got[i].ID() != id {
			t.Errorf("position %d: want %s, got %s", i, id, got[i].ID())
		}
	}
}
