// Package gitstatus renders the one-line branch/dirtiness indicator used
// in the tmux status bar.
package gitstatus

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/tenzin/deskctl/internal/logging"
)

const (
	cleanMark = "✓"
	dirtyMark = "✗"
)

// Report returns the status line for the repository containing dir:
// " <ref> ✓" when the work tree is clean, " <ref> ✗" when dirty. The
// leading space is intentional, it doubles as the status-bar separator.
// Outside a git work tree the report is the empty string and no error.
func Report(ctx context.Context, dir string) (string, error) {
	log := logging.Get(ctx)

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	ref, err := refName(repo)
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to resolve ref name")
		return "", err
	}

	dirty, err := isDirty(repo)
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to compute work tree status")
		return "", err
	}

	mark := cleanMark
	if dirty {
		mark = dirtyMark
	}
	return fmt.Sprintf(" %s %s", ref, mark), nil
}

// refName prefers the short branch name; on a detached HEAD it falls back
// to an exact-match tag, then to the short commit hash.
func refName(repo *git.Repository) (string, error) {
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}

	resolved, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if tag, ok := exactTag(repo, resolved.Hash()); ok {
		return tag, nil
	}
	return resolved.Hash().String()[:7], nil
}

// exactTag finds a tag pointing exactly at the given commit. Annotated
// tags are peeled to their target first.
func exactTag(repo *git.Repository, commit plumbing.Hash) (string, bool) {
	tags, err := repo.Tags()
	if err != nil {
		return "", false
	}
	defer tags.Close()

	found := ""
	_ = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tagObj, tagErr := repo.TagObject(ref.Hash()); tagErr == nil {
			target = tagObj.Target
		}
		if target == commit {
			found = ref.Name().Short()
			return errors.New("stop")
		}
		return nil
	})
	return found, found != ""
}

// isDirty reports whether the work tree has any staged, unstaged or
// untracked entries, the porcelain-status notion of dirty.
func isDirty(repo *git.Repository) (bool, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open work tree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read status: %w", err)
	}
	return !status.IsClean(), nil
}
