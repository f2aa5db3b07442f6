package tui

import (
	"strings"
	"testing"

	"github.com/jask/jasktodo/internal/config"
)

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	toggle := r.Lookup(" ", scopeList)
	if toggle == nil || toggle.Action != actionToggle {
		t.Fatalf("space in list = %v, want toggle", toggle)
	}
	if got := r.Lookup("x", scopeInput); got != nil {
		t.Fatalf("did not expect x bound in input scope, got %q", got.Action)
	}

	quit := r.Lookup("ctrl+c", scopeInput)
	if quit == nil || quit.Action != actionForceQuit {
		t.Fatal("expected global ctrl+c to be reachable from the input scope")
	}
	if got := r.Lookup("q", scopeAlert); got != nil {
		t.Fatalf("q should be unbound in the alert scope, got %q", got.Action)
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionToggle, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionDelete, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionDelete, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 || a[0].Action != actionToggle {
		t.Fatalf("scope_a bindings = %+v, want only toggle", a)
	}
	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != actionDelete {
		t.Fatalf("scope_b bindings = %+v, want only delete", b)
	}
}

func TestKeyRegistryHelpBindings(t *testing.T) {
	r := NewKeyRegistry()
	items := r.HelpBindings(scopeInput)
	if len(items) != 2 {
		t.Fatalf("input help bindings = %d, want 2", len(items))
	}
	if h := items[0].Help(); h.Key != "enter" || h.Desc != "add" {
		t.Fatalf("first help = %+v", h)
	}
}

func TestNormalizeKeyName(t *testing.T) {
	tests := map[string]string{
		" ":           "space",
		"Control+C":   "ctrl+c",
		"ctl+x":       "ctrl+x",
		"Return":      "enter",
		"Spacebar":    "space",
		"K":           "K",
		"  Shift+Tab": "shift+tab",
	}
	for in, want := range tests {
		if got := normalizeKeyName(in); got != want {
			t.Errorf("normalizeKeyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyKeybindingConfigOverrides(t *testing.T) {
	r := NewKeyRegistry()
	err := r.ApplyKeybindingConfig([]config.Keybinding{
		{Scope: "list", Action: "toggle", Keys: []string{"t", "Return"}},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if b := r.Lookup("t", scopeList); b == nil || b.Action != actionToggle {
		t.Fatal("t should toggle after override")
	}
	if b := r.Lookup("enter", scopeList); b == nil || b.Action != actionToggle {
		t.Fatal("Return should normalise to enter")
	}
	if b := r.Lookup("x", scopeList); b != nil {
		t.Fatalf("old key x still bound to %q", b.Action)
	}
}

func TestApplyKeybindingConfigRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		in   config.Keybinding
		want string
	}{
		{name: "no scope", in: config.Keybinding{Action: "toggle", Keys: []string{"t"}}, want: "scope is required"},
		{name: "no action", in: config.Keybinding{Scope: "list", Keys: []string{"t"}}, want: "action is required"},
		{name: "no keys", in: config.Keybinding{Scope: "list", Action: "toggle", Keys: []string{""}}, want: "keys are required"},
		{name: "unknown scope", in: config.Keybinding{Scope: "sidebar", Action: "toggle", Keys: []string{"t"}}, want: "unknown scope"},
		{name: "unknown action", in: config.Keybinding{Scope: "list", Action: "archive", Keys: []string{"t"}}, want: "unknown action"},
		{name: "conflict", in: config.Keybinding{Scope: "list", Action: "delete", Keys: []string{"space"}}, want: "conflict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewKeyRegistry().ApplyKeybindingConfig([]config.Keybinding{tt.in})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}

	err := NewKeyRegistry().ApplyKeybindingConfig([]config.Keybinding{
		{Scope: "list", Action: "toggle", Keys: []string{"t"}},
		{Scope: "list", Action: "toggle", Keys: []string{"y"}},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicated") {
		t.Fatalf("duplicate entry err = %v", err)
	}
}

func TestExportKeybindingConfigIsSortedAndReapplies(t *testing.T) {
	r := NewKeyRegistry()
	out := r.ExportKeybindingConfig()
	if len(out) == 0 {
		t.Fatal("export is empty")
	}
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.Scope > cur.Scope || (prev.Scope == cur.Scope && prev.Action > cur.Action) {
			t.Fatalf("export not sorted at %d: %+v before %+v", i, prev, cur)
		}
	}
	if err := NewKeyRegistry().ApplyKeybindingConfig(out); err != nil {
		t.Fatalf("re-applying export: %v", err)
	}
}

func TestKeybindingOverrideDrivesModel(t *testing.T) {
	keys := NewKeyRegistry()
	if err := keys.ApplyKeybindingConfig([]config.Keybinding{{Scope: "list", Action: "toggle", Keys: []string{"t"}}}); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t)
	m.keys = keys
	m = addTasks(t, m, "walk")
	m, _ = press(m, "esc", "t")
	if tk, _ := m.dispatcher.Store().Get(1); !tk.Completed {
		t.Fatal("overridden key should toggle")
	}
}
