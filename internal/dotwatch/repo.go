package dotwatch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// maxAheadScan bounds how far the fetch comparison walks remote history
// when counting commits the local branch is behind.
const maxAheadScan = 1000

// Repo wraps the go-git operations the watcher performs on the dotfiles
// repository.
type Repo struct {
	repo *git.Repository
	name string
	path string
}

// OpenRepo opens the repository at path.
func OpenRepo(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", path, err)
	}
	return &Repo{repo: repo, name: lastPathElement(path), path: path}, nil
}

// Name returns the repository's directory name, used in commit messages
// and notifications.
func (r *Repo) Name() string { return r.name }

// HasChanges reports whether the work tree has anything to commit.
func (r *Repo) HasChanges() (bool, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open work tree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read status: %w", err)
	}
	return !status.IsClean(), nil
}

// CommitAll stages every change and commits it with a message summarizing
// what happened (add/update/remove, by name for single files, by count
// otherwise). Returns the message and false when there was nothing to do.
func (r *Repo) CommitAll(_ context.Context) (string, bool, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", false, fmt.Errorf("failed to open work tree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return "", false, fmt.Errorf("failed to read status: %w", err)
	}
	if status.IsClean() {
		return "", false, nil
	}

	message := commitMessage(status, r.name)

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", false, fmt.Errorf("failed to stage changes: %w", err)
	}
	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "dotwatch", Email: "dotwatch@localhost", When: time.Now()},
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to commit: %w", err)
	}
	return message, true, nil
}

// Push pushes to origin. An already-up-to-date remote is not an error.
func (r *Repo) Push(ctx context.Context) error {
	err := r.repo.PushContext(ctx, &git.PushOptions{RemoteName: "origin"})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}

// Fetch updates remote tracking refs from origin.
func (r *Repo) Fetch(ctx context.Context) error {
	err := r.repo.FetchContext(ctx, &git.FetchOptions{RemoteName: "origin", Tags: git.NoTags})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	return nil
}

// BranchChange describes a local branch whose remote counterpart moved.
type BranchChange struct {
	Branch    string
	RemoteSHA string
	Commits   int
}

// RemoteChanges compares every local branch against its origin tracking
// ref and returns the branches where the remote is ahead.
func (r *Repo) RemoteChanges() ([]BranchChange, error) {
	branches, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer branches.Close()

	var changes []BranchChange
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		branch := ref.Name().Short()
		remoteRef, refErr := r.repo.Reference(
			plumbing.NewRemoteReferenceName("origin", branch), true)
		if refErr != nil {
			return nil // no remote counterpart
		}
		if remoteRef.Hash() == ref.Hash() {
			return nil
		}
		ahead, aheadErr := r.commitsAhead(ref.Hash(), remoteRef.Hash())
		if aheadErr != nil || ahead == 0 {
			return nil // local is ahead or histories diverged oddly
		}
		changes = append(changes, BranchChange{
			Branch:    branch,
			RemoteSHA: remoteRef.Hash().String(),
			Commits:   ahead,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compare branches: %w", err)
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Branch < changes[j].Branch })
	return changes, nil
}

// commitsAhead counts commits reachable from remote but not yet at local.
func (r *Repo) commitsAhead(local, remote plumbing.Hash) (int, error) {
	iter, err := r.repo.Log(&git.LogOptions{From: remote})
	if err != nil {
		return 0, fmt.Errorf("failed to walk remote history: %w", err)
	}
	defer iter.Close()

	count := 0
	found := false
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == local {
			found = true
			return storer.ErrStop
		}
		count++
		if count >= maxAheadScan {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count commits: %w", err)
	}
	if !found && count >= maxAheadScan {
		return count, nil
	}
	if !found {
		return 0, nil
	}
	return count, nil
}

// commitMessage summarizes a status the way the commit log reads well:
// "add vimrc, update 2 files in dotfiles".
func commitMessage(status git.Status, location string) string {
	var added, modified, deleted []string
	for file, entry := range status {
		code := entry.Worktree
		if code == git.Unmodified {
			code = entry.Staging
		}
		switch code {
		case git.Untracked, git.Added:
			added = append(added, file)
		case git.Deleted:
			deleted = append(deleted, file)
		default:
			modified = append(modified, file)
		}
	}
	sort.Strings(added)
	sort.Strings(modified)
	sort.Strings(deleted)

	var parts []string
	if part := describe("add", added); part != "" {
		parts = append(parts, part)
	}
	if part := describe("update", modified); part != "" {
		parts = append(parts, part)
	}
	if part := describe("remove", deleted); part != "" {
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("update files in %s", location)
	}
	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), location)
}

func describe(verb string, files []string) string {
	switch len(files) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s %s", verb, lastPathElement(files[0]))
	default:
		return fmt.Sprintf("%s %d files", verb, len(files))
	}
}

func lastPathElement(path string) string {
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
