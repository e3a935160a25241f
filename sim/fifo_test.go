package sim

import "testing"

func TestFIFO_EvictsInInsertionOrder(t *testing.T) {
	// GIVEN three pages inserted in order
	f := NewFIFO()
	f.OnReference("1", false)
	f.OnReference("2", false)
	f.OnReference("3", false)

	// THEN victims come out oldest first
	if v := f.Victim(); v != "1" {
		t.Errorf("first victim = %s, want 1", v)
	}
	if v := f.Victim(); v != "2" {
		t.Errorf("second victim = %s, want 2", v)
	}
}

func TestFIFO_HitsDoNotReorder(t *testing.T) {
	// GIVEN pages 1,2,3 inserted and page 1 hit repeatedly afterwards
	f := NewFIFO()
	f.OnReference("1", false)
	f.OnReference("2", false)
	f.OnReference("3", false)
	f.OnReference("1", true)
	f.OnReference("1", true)

	// THEN page 1 is still the first victim: eviction order depends only on
	// insertion time, which is what separates FIFO from LRU
	if v := f.Victim(); v != "1" {
		t.Errorf("victim = %s, want 1 despite intervening hits", v)
	}
}

func TestFIFO_ReinsertionMovesToTail(t *testing.T) {
	f := NewFIFO()
	f.OnReference("1", false)
	f.OnReference("2", false)
	if v := f.Victim(); v != "1" {
		t.Fatalf("victim = %s, want 1", v)
	}
	// 1 comes back in: it is now the youngest resident
	f.OnReference("1", false)
	if v := f.Victim(); v != "2" {
		t.Errorf("victim after reinsertion = %s, want 2", v)
	}
}

func TestFIFO_VictimOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Victim on empty queue did not panic")
		}
	}()
	NewFIFO().Victim()
}
