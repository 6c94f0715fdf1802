// Package steam locates a Steam installation and reads its VDF data.
//
// # Usage
//
//	root, err := steam.Root()
//	libs, err := steam.LibraryFolders(root)
//	for _, lib := range libs {
//	    apps, err := steam.Apps(lib)
//	    ...
//	}
//
// The package consumes the codec packages (parse, ir); it owns all
// file I/O, which the codec itself never performs.
package steam
