package input

import "testing"

func TestResolveNormal(t *testing.T) {
	tests := []struct {
		name   string
		ev     Event
		want   Action
		wantOK bool
	}{
		{"q quits", Event{Key: KeyRune, Rune: 'q'}, Action{Op: Quit}, true},
		{"k moves up", Event{Key: KeyRune, Rune: 'k'}, Action{Op: MoveUp}, true},
		{"l moves down", Event{Key: KeyRune, Rune: 'l'}, Action{Op: MoveDown}, true},
		{"j moves left", Event{Key: KeyRune, Rune: 'j'}, Action{Op: MoveLeft}, true},
		{"semicolon moves right", Event{Key: KeyRune, Rune: ';'}, Action{Op: MoveRight}, true},
		{"arrow up", Event{Key: KeyUp}, Action{Op: MoveUp}, true},
		{"arrow down", Event{Key: KeyDown}, Action{Op: MoveDown}, true},
		{"arrow left", Event{Key: KeyLeft}, Action{Op: MoveLeft}, true},
		{"arrow right", Event{Key: KeyRight}, Action{Op: MoveRight}, true},
		{"i enters insert", Event{Key: KeyRune, Rune: 'i'}, Action{Op: EnterMode, Mode: ModeInsert}, true},
		{"page up key", Event{Key: KeyPageUp}, Action{Op: PageUp}, true},
		{"page down key", Event{Key: KeyPageDown}, Action{Op: PageDown}, true},
		{"ctrl-f pages down", Event{Key: KeyRune, Rune: 'f', Mod: ModCtrl}, Action{Op: PageDown}, true},
		{"ctrl-b pages up", Event{Key: KeyRune, Rune: 'b', Mod: ModCtrl}, Action{Op: PageUp}, true},
		{"dollar to line end", Event{Key: KeyRune, Rune: '$'}, Action{Op: EndOfLine}, true},
		{"end to line end", Event{Key: KeyEnd}, Action{Op: EndOfLine}, true},
		{"zero to line start", Event{Key: KeyRune, Rune: '0'}, Action{Op: StartOfLine}, true},
		{"home to line start", Event{Key: KeyHome}, Action{Op: StartOfLine}, true},
		{"x deletes at cursor", Event{Key: KeyRune, Rune: 'x'}, Action{Op: DeleteCharAtCursor}, true},
		{"unbound letter", Event{Key: KeyRune, Rune: 'z'}, Action{}, false},
		{"unbound ctrl letter", Event{Key: KeyRune, Rune: 'x', Mod: ModCtrl}, Action{}, false},
		{"escape unbound", Event{Key: KeyEscape}, Action{}, false},
		{"enter unbound", Event{Key: KeyEnter}, Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(ModeNormal, tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(Normal, %v) ok = %v, want %v", tt.ev, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Resolve(Normal, %v) = %+v, want %+v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestResolveInsert(t *testing.T) {
	tests := []struct {
		name   string
		ev     Event
		want   Action
		wantOK bool
	}{
		{"escape to normal", Event{Key: KeyEscape}, Action{Op: EnterMode, Mode: ModeNormal}, true},
		{"letter inserts", Event{Key: KeyRune, Rune: 'a'}, Action{Op: InsertChar, Rune: 'a'}, true},
		{"space inserts", Event{Key: KeyRune, Rune: ' '}, Action{Op: InsertChar, Rune: ' '}, true},
		{"multibyte inserts", Event{Key: KeyRune, Rune: 'é'}, Action{Op: InsertChar, Rune: 'é'}, true},
		{"q inserts literally", Event{Key: KeyRune, Rune: 'q'}, Action{Op: InsertChar, Rune: 'q'}, true},
		{"ctrl suppresses insert", Event{Key: KeyRune, Rune: 'a', Mod: ModCtrl}, Action{}, false},
		{"alt suppresses insert", Event{Key: KeyRune, Rune: 'a', Mod: ModAlt}, Action{}, false},
		{"enter breaks line", Event{Key: KeyEnter}, Action{Op: NewLine}, true},
		{"backspace deletes before", Event{Key: KeyBackspace}, Action{Op: DeleteCharBefore}, true},
		{"delete deletes at cursor", Event{Key: KeyDelete}, Action{Op: DeleteCharAtCursor}, true},
		{"arrows still move", Event{Key: KeyUp}, Action{Op: MoveUp}, true},
		{"page down", Event{Key: KeyPageDown}, Action{Op: PageDown}, true},
		{"home", Event{Key: KeyHome}, Action{Op: StartOfLine}, true},
		{"end", Event{Key: KeyEnd}, Action{Op: EndOfLine}, true},
		{"tab unbound", Event{Key: KeyTab}, Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(ModeInsert, tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(Insert, %v) ok = %v, want %v", tt.ev, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Resolve(Insert, %v) = %+v, want %+v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestIsChar(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"plain letter", Event{Key: KeyRune, Rune: 'a'}, true},
		{"shifted letter", Event{Key: KeyRune, Rune: 'A', Mod: ModShift}, true},
		{"ctrl letter", Event{Key: KeyRune, Rune: 'a', Mod: ModCtrl}, false},
		{"meta letter", Event{Key: KeyRune, Rune: 'a', Mod: ModMeta}, false},
		{"named key", Event{Key: KeyEnter}, false},
		{"control rune", Event{Key: KeyRune, Rune: '\x01'}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsChar(); got != tt.want {
				t.Errorf("IsChar(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
