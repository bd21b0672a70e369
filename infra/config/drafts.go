package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadDrafts reads a TOML file of replies keyed by comment id:
//
//	[drafts]
//	"17890001" = "Thanks for asking!"
//	"17890002" = "Sent you a DM"
//
// Blank replies are kept; the dispatcher skips them.
func LoadDrafts(path string) (map[string]string, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("loading drafts %s: %w", path, err)
	}
	if !k.Exists("drafts") {
		return nil, fmt.Errorf("drafts %s: missing [drafts] table", path)
	}

	raw, ok := k.Get("drafts").(map[string]any)
	if !ok {
		return nil, fmt.Errorf("drafts %s: [drafts] must be a table", path)
	}
	out := make(map[string]string, len(raw))
	for id, v := range raw {
		text, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("drafts %s: reply for %q must be a string", path, id)
		}
		out[strings.TrimSpace(id)] = text
	}
	return out, nil
}
