package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns a profile document. A copy under prefabs/ in the working
// directory wins over the embedded one so profiles can be tuned while the
// game runs.
func Load(name string) ([]byte, error) {
	return readOverridable(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript returns a platform script by name; the .tengo extension and a
// leading prefabs/ or scripts/ are optional.
func LoadScript(name string) ([]byte, error) {
	data, err := readOverridable(ScriptsFS, cleanScriptPath(name))
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return data, nil
}

func readOverridable(fsys embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fsys.ReadFile(clean)
}

func cleanPrefabPath(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, "prefabs/")
	return s
}

func cleanScriptPath(name string) string {
	s := cleanPrefabPath(name)
	s, _ = strings.CutPrefix(s, "scripts/")
	if !isScriptFile(s) {
		s += ".tengo"
	}
	return path.Join("scripts", s)
}
