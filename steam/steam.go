package steam

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

var ErrNotFound = errors.New("steam installation not found")

// Root locates the Steam installation directory. The STEAM_ROOT
// environment variable overrides discovery; otherwise the
// platform-conventional locations are probed in order. A directory
// qualifies when it contains a steamapps subdirectory.
func Root() (string, error) {
	if env := os.Getenv("STEAM_ROOT"); env != "" {
		if isRoot(env) {
			return env, nil
		}
		return "", ErrNotFound
	}
	for _, dir := range rootCandidates() {
		if isRoot(dir) {
			return dir, nil
		}
	}
	return "", ErrNotFound
}

func isRoot(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, "steamapps"))
	return err == nil && fi.IsDir()
}

func rootCandidates() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Application Support", "Steam"),
		}
	case "windows":
		res := []string{}
		if pf := os.Getenv("PROGRAMFILES(X86)"); pf != "" {
			res = append(res, filepath.Join(pf, "Steam"))
		}
		return append(res, `C:\Program Files (x86)\Steam`)
	default:
		return []string{
			filepath.Join(xdg.DataHome, "Steam"),
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
			// flatpak install
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam",
				"data", "Steam"),
		}
	}
}
