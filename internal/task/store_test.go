package task

import (
	"errors"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func seeded(t *testing.T, texts ...string) *Store {
	t.Helper()
	s := NewStore(WithClock(fixedClock()))
	for _, text := range texts {
		if _, err := s.Add(text); err != nil {
			t.Fatalf("Add(%q): %v", text, err)
		}
	}
	return s
}

func ids(tasks []Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()
	if s.Filter() != FilterAll {
		t.Fatalf("filter = %q, want %q", s.Filter(), FilterAll)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestWithFilterIgnoresInvalid(t *testing.T) {
	if got := NewStore(WithFilter("bogus")).Filter(); got != FilterAll {
		t.Fatalf("filter = %q, want %q", got, FilterAll)
	}
	if got := NewStore(WithFilter(FilterCompleted)).Filter(); got != FilterCompleted {
		t.Fatalf("filter = %q, want %q", got, FilterCompleted)
	}
}

func TestAddTrimsAndAppends(t *testing.T) {
	s := NewStore(WithClock(fixedClock()))

	got, err := s.Add("  buy milk \t")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("id = %d, want 1", got.ID)
	}
	if got.Text != "buy milk" {
		t.Errorf("text = %q, want %q", got.Text, "buy milk")
	}
	if got.Completed {
		t.Error("new task should not be completed")
	}
	if !got.CreatedAt.Equal(fixedClock()()) {
		t.Errorf("createdAt = %v, want fixed clock", got.CreatedAt)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestAddRejectsEmptyText(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		s := seeded(t, "existing")
		calls := 0
		s.Subscribe(func() { calls++ })

		_, err := s.Add(in)
		if !errors.Is(err, ErrEmptyText) {
			t.Fatalf("Add(%q) err = %v, want ErrEmptyText", in, err)
		}
		if s.Len() != 1 {
			t.Fatalf("Add(%q) changed size to %d", in, s.Len())
		}
		if calls != 0 {
			t.Fatalf("Add(%q) notified %d listeners, want 0", in, calls)
		}
	}
}

func TestIDsAreMonotonicAndNeverReused(t *testing.T) {
	s := seeded(t, "a", "b", "c")
	if !s.Delete(3) {
		t.Fatal("delete 3 should succeed")
	}
	next, err := s.Add("d")
	if err != nil {
		t.Fatal(err)
	}
	if next.ID != 4 {
		t.Fatalf("id after deleting max = %d, want 4", next.ID)
	}

	seen := make(map[int]bool)
	for _, tk := range s.Tasks() {
		if seen[tk.ID] {
			t.Fatalf("duplicate id %d", tk.ID)
		}
		seen[tk.ID] = true
	}
}

func TestToggleFlipsAndRestores(t *testing.T) {
	s := seeded(t, "a", "b")

	got, ok := s.Toggle(2)
	if !ok || !got.Completed {
		t.Fatalf("first toggle = %+v, %v; want completed", got, ok)
	}
	got, ok = s.Toggle(2)
	if !ok || got.Completed {
		t.Fatalf("second toggle = %+v, %v; want active", got, ok)
	}
	if first, _ := s.Get(1); first.Completed {
		t.Fatal("toggle touched another task")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	s := seeded(t, "a")
	before := s.Tasks()

	if _, ok := s.Toggle(42); ok {
		t.Fatal("toggle of unknown id reported success")
	}
	after := s.Tasks()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatalf("state changed: %+v -> %+v", before, after)
	}
}

func TestDeletePreservesOrder(t *testing.T) {
	s := seeded(t, "a", "b", "c", "d")

	if !s.Delete(2) {
		t.Fatal("delete 2 failed")
	}
	if got, want := ids(s.Tasks()), []int{1, 3, 4}; !equalInts(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	if s.Delete(2) {
		t.Fatal("second delete of same id reported success")
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
}

func TestClearCompletedKeepsActiveInOrder(t *testing.T) {
	s := seeded(t, "a", "b", "c", "d", "e")
	s.Toggle(2)
	s.Toggle(4)

	if n := s.ClearCompleted(); n != 2 {
		t.Fatalf("removed = %d, want 2", n)
	}
	if got, want := ids(s.Tasks()), []int{1, 3, 5}; !equalInts(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for _, tk := range s.Tasks() {
		if tk.Completed {
			t.Fatalf("completed task %d survived", tk.ID)
		}
	}
	if n := s.ClearCompleted(); n != 0 {
		t.Fatalf("second clear removed %d, want 0", n)
	}
}

func TestSetFilter(t *testing.T) {
	s := NewStore()
	for _, f := range []Filter{FilterActive, FilterCompleted, FilterAll, FilterCompleted} {
		if err := s.SetFilter(f); err != nil {
			t.Fatalf("SetFilter(%q): %v", f, err)
		}
		if s.Filter() != f {
			t.Fatalf("filter = %q, want %q", s.Filter(), f)
		}
	}

	err := s.SetFilter("archived")
	if !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("err = %v, want ErrUnknownFilter", err)
	}
	if s.Filter() != FilterCompleted {
		t.Fatalf("invalid filter changed state to %q", s.Filter())
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s := seeded(t, "a")
	out := s.Tasks()
	out[0].Text = "mutated"
	out[0].Completed = true

	got, _ := s.Get(1)
	if got.Text != "a" || got.Completed {
		t.Fatalf("store mutated through Tasks(): %+v", got)
	}
}

func TestSubscribeNotifiesOnEveryMutation(t *testing.T) {
	s := NewStore()
	calls := 0
	cancel := s.Subscribe(func() { calls++ })

	s.Add("a")
	s.Toggle(1)
	s.Toggle(99)
	s.Delete(99)
	s.ClearCompleted()
	_ = s.SetFilter(FilterActive)
	if calls != 6 {
		t.Fatalf("calls = %d, want 6", calls)
	}

	cancel()
	s.Add("b")
	if calls != 6 {
		t.Fatalf("listener ran after cancel: calls = %d", calls)
	}
}

func TestSubscribeOrder(t *testing.T) {
	s := NewStore()
	var order []string
	s.Subscribe(func() { order = append(order, "first") })
	s.Subscribe(func() { order = append(order, "second") })
	s.Add("x")

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("order = %v", order)
	}
}
