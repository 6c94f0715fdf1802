package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/vdf-format/go-vdf/ir"
	"github.com/vdf-format/go-vdf/parse"
)

// LibraryFolders returns the paths of all Steam library folders known
// to the installation at root, the root itself included. Both layouts
// of libraryfolders.vdf are understood: the modern one, where each
// numeric key maps to an object with a "path" entry, and the legacy
// one, where the numeric key maps directly to the path string.
func LibraryFolders(root string) ([]string, error) {
	d, err := os.ReadFile(filepath.Join(root, "steamapps", "libraryfolders.vdf"))
	if os.IsNotExist(err) {
		return []string{root}, nil
	}
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("libraryfolders.vdf: %w", err)
	}
	folders := ir.Get(doc, "libraryfolders")
	if folders == nil {
		// older installs used a capitalized top-level key
		folders = ir.Get(doc, "LibraryFolders")
	}
	res := []string{root}
	if folders == nil || folders.Type != ir.ObjectType {
		return res, nil
	}
	for i, f := range folders.Fields {
		if _, err := strconv.Atoi(f); err != nil {
			// non-numeric keys like "contentstatsid"
			continue
		}
		val := folders.Values[i]
		var path string
		switch val.Type {
		case ir.StringType:
			path = val.String
		case ir.ObjectType:
			path = ir.GetString(val, "path")
		}
		if path == "" || slices.Contains(res, path) {
			continue
		}
		res = append(res, path)
	}
	return res, nil
}
