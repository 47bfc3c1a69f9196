package git

import (
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repo reads branch information from the repository containing Path
type Repo struct {
	// Path is any directory inside the work tree; empty means the working directory
	Path string
}

// NewRepo returns a Repo rooted at the current working directory
func NewRepo() *Repo {
	return &Repo{}
}

// CurrentBranch returns the short name of the branch HEAD points at.
// Any failure (not a repository, detached HEAD, unreadable refs) yields "".
// An unborn branch still reports its name.
func (r *Repo) CurrentBranch() string {
	path := r.Path
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		path = cwd
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}

	// Unresolved so a branch without commits still reads as a branch
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return ""
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return ""
	}
	return head.Target().Short()
}
