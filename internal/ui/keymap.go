package ui

// Keymap holds the rebindable editing keys, compared against
// tea.KeyMsg.String(). The single-letter navigation mnemonics are fixed to
// the menu titles and the ctrl chords for update/delete stay as they are.
type Keymap struct {
	EnterEdit string
	ExitEdit  string
	Save      string
}

// DefaultKeymap mirrors the historical bindings.
func DefaultKeymap() Keymap {
	return Keymap{EnterEdit: "f2", ExitEdit: "f12", Save: "f9"}
}
