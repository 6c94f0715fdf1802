package steam

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func fakeRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "steamapps"), 0o755); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestRootEnvOverride(t *testing.T) {
	root := fakeRoot(t)
	t.Setenv("STEAM_ROOT", root)
	got, err := Root()
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Errorf("Root() = %q, want %q", got, root)
	}

	t.Setenv("STEAM_ROOT", filepath.Join(root, "missing"))
	if _, err := Root(); err == nil {
		t.Error("bad STEAM_ROOT should fail")
	}
}

func TestLibraryFoldersModern(t *testing.T) {
	root := fakeRoot(t)
	other := t.TempDir()
	writeFile(t, filepath.Join(root, "steamapps", "libraryfolders.vdf"),
		"\"libraryfolders\"\n{\n"+
			"\t\"contentstatsid\"\t\t\"-1234\"\n"+
			"\t\"0\"\n\t{\n\t\t\"path\"\t\t\""+root+"\"\n\t}\n"+
			"\t\"1\"\n\t{\n\t\t\"path\"\t\t\""+other+"\"\n\t}\n"+
			"}\n")
	libs, err := LibraryFolders(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{root, other}
	if len(libs) != 2 || libs[0] != want[0] || libs[1] != want[1] {
		t.Errorf("libs = %v, want %v", libs, want)
	}
}

func TestLibraryFoldersLegacy(t *testing.T) {
	root := fakeRoot(t)
	writeFile(t, filepath.Join(root, "steamapps", "libraryfolders.vdf"),
		"\"LibraryFolders\"\n{\n"+
			"\t\"TimeNextStatsReport\"\t\t\"0\"\n"+
			"\t\"1\"\t\t\"/mnt/games\"\n"+
			"}\n")
	libs, err := LibraryFolders(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(libs) != 2 || libs[1] != "/mnt/games" {
		t.Errorf("libs = %v", libs)
	}
}

func TestLibraryFoldersMissingFile(t *testing.T) {
	root := fakeRoot(t)
	libs, err := LibraryFolders(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(libs) != 1 || libs[0] != root {
		t.Errorf("libs = %v", libs)
	}
}

const tf2Manifest = "\"AppState\"\n{\n" +
	"\t\"appid\"\t\t\"440\"\n" +
	"\t\"name\"\t\t\"Team Fortress 2\"\n" +
	"\t\"installdir\"\t\t\"Team Fortress 2\"\n" +
	"}\n"

func TestApps(t *testing.T) {
	root := fakeRoot(t)
	writeFile(t, filepath.Join(root, "steamapps", "appmanifest_440.acf"), tf2Manifest)
	// a broken manifest is skipped, not fatal
	writeFile(t, filepath.Join(root, "steamapps", "appmanifest_999.acf"), "}")

	apps, err := Apps(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) != 1 {
		t.Fatalf("apps = %v", apps)
	}
	app := apps[0]
	if app.ID != 440 || app.Name != "Team Fortress 2" {
		t.Errorf("app = %+v", app)
	}
	wantDir := filepath.Join(root, "steamapps", "common", "Team Fortress 2")
	if app.Dir() != wantDir {
		t.Errorf("Dir() = %q, want %q", app.Dir(), wantDir)
	}
}

func TestAllApps(t *testing.T) {
	root := fakeRoot(t)
	other := t.TempDir()
	writeFile(t, filepath.Join(root, "steamapps", "libraryfolders.vdf"),
		"\"libraryfolders\"\n{\n"+
			"\t\"0\"\n\t{\n\t\t\"path\"\t\t\""+other+"\"\n\t}\n"+
			"}\n")
	writeFile(t, filepath.Join(root, "steamapps", "appmanifest_440.acf"), tf2Manifest)
	writeFile(t, filepath.Join(other, "steamapps", "appmanifest_620.acf"),
		"\"AppState\"\n{\n\t\"appid\"\t\t\"620\"\n\t\"name\"\t\t\"Portal 2\"\n"+
			"\t\"installdir\"\t\t\"Portal 2\"\n}\n")

	apps, err := AllApps(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) != 2 {
		t.Fatalf("apps = %v", apps)
	}
	if apps[0].ID != 440 || apps[1].ID != 620 {
		t.Errorf("apps = %v", apps)
	}
	if apps[1].Library != other {
		t.Errorf("library = %q", apps[1].Library)
	}
}
