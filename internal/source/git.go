package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo serves a content tree from the committed state of a git reference.
// The repository is reopened on every call so commits pushed from outside
// the process are picked up without a restart.
type Repo struct {
	mu  sync.Mutex
	dir string
	ref string
}

func NewRepo(dir, ref string) *Repo {
	return &Repo{dir: dir, ref: ref}
}

func (r *Repo) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tree, err := r.refTree()
	if err != nil {
		return nil, err
	}
	var paths []string
	err = tree.Files().ForEach(func(file *object.File) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		paths = append(paths, file.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk tree: %w", err)
	}
	return paths, nil
}

func (r *Repo) Read(ctx context.Context, path string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tree, err := r.refTree()
	if err != nil {
		return nil, err
	}
	file, err := tree.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func (r *Repo) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.refTree()
	return err
}

// refTree resolves the configured reference to its commit tree. Branch
// names are tried first, then any revision go-git can parse (tags, short
// hashes).
func (r *Repo) refTree() (*object.Tree, error) {
	repo, err := git.PlainOpen(r.dir)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", r.dir, err)
	}
	hash, err := r.resolveRef(repo)
	if err != nil {
		return nil, err
	}
	commit, err := repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree for %s: %w", hash, err)
	}
	return tree, nil
}

func (r *Repo) resolveRef(repo *git.Repository) (plumbing.Hash, error) {
	branch, err := repo.Reference(plumbing.NewBranchReferenceName(r.ref), true)
	if err == nil {
		return branch.Hash(), nil
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(r.ref))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve %s: %w", r.ref, err)
	}
	return *hash, nil
}
