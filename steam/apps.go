package steam

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/parse"
)

// App is one installed Steam app, read from its appmanifest_<id>.acf.
type App struct {
	ID         uint32
	Name       string
	InstallDir string

	// Library is the library folder the manifest was found in.
	Library string
}

// Dir returns the app's install directory on disk.
func (a App) Dir() string {
	return filepath.Join(a.Library, "steamapps", "common", a.InstallDir)
}

// Apps reads every app manifest in the given library folder. A manifest
// that is malformed or lacks an AppState block is skipped; one broken
// file should not hide the rest of the library.
func Apps(library string) ([]App, error) {
	pattern := filepath.Join(library, "steamapps", "appmanifest_*.acf")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	res := []App{}
	for _, m := range matches {
		d, err := os.ReadFile(m)
		if err != nil {
			return nil, err
		}
		doc, err := parse.Parse(d)
		if err != nil {
			continue
		}
		state := ir.Get(doc, "AppState")
		if state == nil {
			continue
		}
		id, err := strconv.ParseUint(ir.GetString(state, "appid"), 10, 32)
		if err != nil {
			continue
		}
		res = append(res, App{
			ID:         uint32(id),
			Name:       ir.GetString(state, "name"),
			InstallDir: ir.GetString(state, "installdir"),
			Library:    library,
		})
	}
	return res, nil
}

// AllApps enumerates the apps of every library folder of the
// installation at root.
func AllApps(root string) ([]App, error) {
	libs, err := LibraryFolders(root)
	if err != nil {
		return nil, err
	}
	res := []App{}
	for _, lib := range libs {
		apps, err := Apps(lib)
		if err != nil {
			return nil, err
		}
		res = append(res, apps...)
	}
	return res, nil
}
