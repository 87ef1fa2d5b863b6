package stash

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/prehook/prehook/internal/git"
)

// chdir changes the working directory for the duration of the test,
// restoring the previous directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

// initRepo builds a throwaway repository with one commit and makes it the
// working directory for the test.
func initRepo(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not on PATH")
	}
	chdir(t, t.TempDir())
	mustGit(t, "init", "-q")
	mustGit(t, "config", "user.email", "hook@example.com")
	mustGit(t, "config", "user.name", "Hook Test")
	mustGit(t, "config", "commit.gpgsign", "false")
	writeFile(t, "base.txt", "base\n")
	mustGit(t, "add", "base.txt")
	mustGit(t, "commit", "-q", "-m", "base")
}

func mustGit(t *testing.T, args ...string) {
	t.Helper()
	if _, err := git.Run(args...); err != nil {
		t.Fatalf("git %v: %v", args, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestAcquireCleanTree(t *testing.T) {
	initRepo(t)

	g, err := Acquire("checks")
	if err != nil {
		t.Fatal(err)
	}
	if g.Active() {
		t.Error("clean tree should not create a stash")
	}
	if out, _ := git.Run("stash", "list"); out != "" {
		t.Errorf("stash list = %q, want empty", out)
	}
	g.Release()
}

func TestAcquireRestoresTrackedChanges(t *testing.T) {
	initRepo(t)
	writeFile(t, "base.txt", "modified\n")

	g, err := Acquire("checks")
	if err != nil {
		t.Fatal(err)
	}
	if !g.Active() {
		t.Fatal("dirty tree should create a stash")
	}
	if got := readFile(t, "base.txt"); got != "base\n" {
		t.Errorf("during checks base.txt = %q, want committed content", got)
	}

	g.Release()

	if got := readFile(t, "base.txt"); got != "modified\n" {
		t.Errorf("after release base.txt = %q, want %q", got, "modified\n")
	}
	if out, _ := git.Run("stash", "list"); out != "" {
		t.Errorf("stash list = %q, want empty", out)
	}
}

func TestAcquireRestoresUntrackedFiles(t *testing.T) {
	initRepo(t)
	writeFile(t, "scratch.txt", "notes\n")

	g, err := Acquire("checks")
	if err != nil {
		t.Fatal(err)
	}
	if !g.Active() {
		t.Fatal("untracked file should be stashed")
	}
	if _, err := os.Stat("scratch.txt"); !os.IsNotExist(err) {
		t.Error("scratch.txt should be out of the tree during checks")
	}

	g.Release()

	if got := readFile(t, "scratch.txt"); got != "notes\n" {
		t.Errorf("after release scratch.txt = %q, want %q", got, "notes\n")
	}
}

func TestAcquirePreservesForeignStash(t *testing.T) {
	initRepo(t)

	// A stash the user made themselves, before the hook ever ran.
	writeFile(t, "base.txt", "precious work\n")
	mustGit(t, "stash", "push", "-m", "user work")

	// Untracked-only dirtiness at hook time.
	writeFile(t, "scratch.txt", "notes\n")

	g, err := Acquire("checks")
	if err != nil {
		t.Fatal(err)
	}
	g.Release()

	out, err := git.Run("stash", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "user work") {
		t.Fatalf("pre-existing stash was consumed: %q", out)
	}
	if len(strings.Split(out, "\n")) != 1 {
		t.Errorf("stash list has extra entries: %q", out)
	}
	if got := readFile(t, "base.txt"); got != "base\n" {
		t.Errorf("base.txt = %q; the user's stashed work was applied", got)
	}
	if got := readFile(t, "scratch.txt"); got != "notes\n" {
		t.Errorf("scratch.txt = %q, want untracked file restored", got)
	}
}

func TestReleaseSkipsChangedStack(t *testing.T) {
	initRepo(t)
	writeFile(t, "base.txt", "modified\n")

	g, err := Acquire("checks")
	if err != nil {
		t.Fatal(err)
	}
	if !g.Active() {
		t.Fatal("dirty tree should create a stash")
	}

	// Something pushed onto the stack after acquire; the top entry is no
	// longer the guard's.
	writeFile(t, "other.txt", "other\n")
	mustGit(t, "stash", "push", "--include-untracked", "-m", "interloper")

	g.Release()

	out, err := git.Run("stash", "list")
	if err != nil {
		t.Fatal(err)
	}
	if len(strings.Split(out, "\n")) != 2 {
		t.Errorf("stash list = %q, want both entries untouched", out)
	}
}

func TestInertGuard(t *testing.T) {
	// A guard over a clean tree holds nothing; Release must be a no-op
	// and must not touch git, even when called repeatedly.
	g := &Guard{}
	if g.Active() {
		t.Error("zero guard should be inactive")
	}
	g.Release()
	g.Release()
}

func TestReleaseOnlyOnce(t *testing.T) {
	g := &Guard{active: true, released: true}
	// Already released; a second Release must return before any git call.
	g.Release()
	if !g.released {
		t.Error("released flag lost")
	}
}
