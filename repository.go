// Package wyag ties together the object database, refs, branches, and
// staging index into a single repository: init/discover, config
// lookup, and the factory for the working index.
package wyag

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/spindlymist/wyag-go/internal/trace"
	"github.com/spindlymist/wyag-go/plumbing/branch"
	"github.com/spindlymist/wyag-go/plumbing/object"
	"github.com/spindlymist/wyag-go/plumbing/refs"
	"github.com/spindlymist/wyag-go/worktree"
)

// ErrInitPathExists is returned by Init when the target directory is
// nonempty.
var ErrInitPathExists = errors.New("repository: init path already exists and is nonempty")

// ErrUninitializedDirectory is returned by Find when no ancestor
// directory contains a .git metadata directory.
var ErrUninitializedDirectory = errors.New("repository: not inside a repository")

// ErrFmtVersionMissing is returned when config has no
// core.repositoryformatversion.
var ErrFmtVersionMissing = errors.New("repository: core.repositoryformatversion missing")

// ErrFmtVersionUnsupported is returned for any repositoryformatversion
// other than 0.
var ErrFmtVersionUnsupported = errors.New("repository: unsupported core.repositoryformatversion")

// ErrIndexMissing is returned by Repository.Index when HEAD has a tip
// but the index file is gone.
var ErrIndexMissing = errors.New("repository: index file missing")

// Repository bundles a working directory with its object database,
// ref store, and branch store.
type Repository struct {
	WD       *worktree.WorkDir
	Objects  *object.Database
	Refs     *refs.Store
	Branches *branch.Store
	config   *ini.File
}

// Init creates a new repository rooted at dir, which must either not
// exist or be an empty directory.
func Init(dir string) (*Repository, error) {
	if entries, err := os.ReadDir(dir); err == nil {
		if len(entries) > 0 {
			return nil, ErrInitPathExists
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	wd, err := worktree.NewWorkDir(dir)
	if err != nil {
		return nil, err
	}

	for _, d := range []string{"objects", "refs/heads", "refs/tags"} {
		if err := wd.MakeGitDir(d); err != nil {
			return nil, err
		}
	}

	cfg := ini.Empty()
	core, _ := cfg.NewSection("core")
	core.NewKey("repositoryformatversion", "0")
	core.NewKey("filemode", "false")
	core.NewKey("bare", "false")

	if err := writeConfig(wd, cfg); err != nil {
		return nil, err
	}

	if f, err := wd.CreateGitFile("description"); err == nil {
		_, _ = f.Write([]byte("Unnamed repository; edit this file 'description' to name the repository.\n"))
		f.Close()
	} else {
		return nil, err
	}

	refStore := refs.NewStore(wd)
	if err := refStore.WriteRawHead("ref: refs/heads/master\n"); err != nil {
		return nil, err
	}

	trace.General.Printf("initialized repository at %s", wd.Root())

	return open(wd, cfg)
}

// Find walks upward from dir until it locates a directory containing a
// .git metadata directory, then opens the repository rooted there.
func Find(dir string) (*Repository, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cur := abs
	for {
		if info, err := os.Stat(filepath.Join(cur, worktree.MetaDirName)); err == nil && info.IsDir() {
			wd, err := worktree.NewWorkDir(cur)
			if err != nil {
				return nil, err
			}
			cfg, err := readConfig(wd)
			if err != nil {
				return nil, err
			}
			return open(wd, cfg)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, ErrUninitializedDirectory
		}
		cur = parent
	}
}

func open(wd *worktree.WorkDir, cfg *ini.File) (*Repository, error) {
	objs := object.NewDatabase(wd)
	refStore := objs.Refs()
	branches := branch.NewStore(refStore, objs)
	return &Repository{WD: wd, Objects: objs, Refs: refStore, Branches: branches, config: cfg}, nil
}

func writeConfig(wd *worktree.WorkDir, cfg *ini.File) error {
	f, err := wd.CreateGitFile("config")
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = cfg.WriteTo(f)
	return err
}

func readConfig(wd *worktree.WorkDir) (*ini.File, error) {
	f, err := wd.OpenGitFile("config")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := ini.Load(f)
	if err != nil {
		return nil, err
	}

	core := cfg.Section("core")
	if !core.HasKey("repositoryformatversion") {
		return nil, ErrFmtVersionMissing
	}
	if v := core.Key("repositoryformatversion").MustInt(-1); v != 0 {
		return nil, fmt.Errorf("%w: %d", ErrFmtVersionUnsupported, v)
	}

	return cfg, nil
}

// UserName returns the configured [user] name, if any.
func (r *Repository) UserName() string {
	return r.config.Section("user").Key("name").String()
}

// UserEmail returns the configured [user] email, if any.
func (r *Repository) UserEmail() string {
	return r.config.Section("user").Key("email").String()
}
