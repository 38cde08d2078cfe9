// Package branch provides branch name validation and reference path helpers.
package branch

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// headsPrefix is the short reference namespace used when reading a branch.
	headsPrefix = "heads/"
	// refsHeadsPrefix is the fully-qualified namespace required when creating a branch.
	refsHeadsPrefix = "refs/" + headsPrefix
)

// namePattern lists the characters accepted in a new branch name.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9-_./]+$`)

// ErrBranchNameEmpty is returned when the branch name is empty.
var ErrBranchNameEmpty = &Error{message: "branch name cannot be empty"}

// ErrBranchNameInvalid is returned when the branch name contains a forbidden character.
var ErrBranchNameInvalid = &Error{message: "branch name contains invalid characters"}

// Error represents an error related to branch operations.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

// ValidateName checks that a branch name is only made of letters, digits,
// hyphens, underscores, dots and forward slashes.
func ValidateName(name string) error {
	if name == "" {
		return ErrBranchNameEmpty
	}

	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrBranchNameInvalid, name)
	}

	return nil
}

// HasDotSegment reports whether name has a "." or ".." path segment.
// Such names cannot be addressed in a URL path without being rewritten.
func HasDotSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if segment == "." || segment == ".." {
			return true
		}
	}
	return false
}

// HeadsRef returns the short reference path of a branch (heads/<name>).
func HeadsRef(name string) string {
	return headsPrefix + name
}

// FullRef returns the fully-qualified reference path of a branch (refs/heads/<name>).
func FullRef(name string) string {
	return refsHeadsPrefix + name
}
