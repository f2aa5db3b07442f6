package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Keybinding overrides the keys of one action in one scope.
type Keybinding struct {
	Scope  string   `toml:"scope"`
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

type keybindingFile struct {
	Keybinding []Keybinding `toml:"keybinding"`
}

// LoadKeybindings reads overrides from path. An empty path or a missing
// file yields no overrides.
func LoadKeybindings(path string) ([]Keybinding, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read keybindings: %w", err)
	}
	return ParseKeybindings(data)
}

// ParseKeybindings decodes TOML of the form
//
//	[[keybinding]]
//	scope = "list"
//	action = "toggle"
//	keys = ["space", "x"]
func ParseKeybindings(data []byte) ([]Keybinding, error) {
	var f keybindingFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("parse keybindings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse keybindings: unknown field %q", undecoded[0].String())
	}
	return f.Keybinding, nil
}

// EncodeKeybindings writes items in the format ParseKeybindings reads.
func EncodeKeybindings(w io.Writer, items []Keybinding) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(keybindingFile{Keybinding: items}); err != nil {
		return fmt.Errorf("encode keybindings: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
