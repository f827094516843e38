package levels

import (
	"embed"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded default levels so the game runs with no
// level files on disk. Files that fail to parse are skipped.
func Builtin() []Level {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}

	var out []Level
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			continue
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			continue
		}
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
