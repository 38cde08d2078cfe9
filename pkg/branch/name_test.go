//go:build unit

package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "Simple branch name",
			input: "main",
		},
		{
			name:  "Branch name with slash, hyphen, underscore and dots",
			input: "feat/new-thing_1.0",
		},
		{
			name:  "Nested branch name",
			input: "release/v1.0.0/hotfix",
		},
		{
			name:    "Empty branch name",
			input:   "",
			wantErr: ErrBranchNameEmpty,
		},
		{
			name:    "Branch name with space and exclamation mark",
			input:   "feat branch!",
			wantErr: ErrBranchNameInvalid,
		},
		{
			name:    "Branch name with hash",
			input:   "bugfix/issue#123",
			wantErr: ErrBranchNameInvalid,
		},
		{
			name:    "Branch name with tilde",
			input:   "feature~1",
			wantErr: ErrBranchNameInvalid,
		},
		{
			name:    "Branch name with non-ASCII letter",
			input:   "fonctionnalité",
			wantErr: ErrBranchNameInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHeadsRef(t *testing.T) {
	assert.Equal(t, "heads/main", HeadsRef("main"))
	assert.Equal(t, "heads/feature/x", HeadsRef("feature/x"))
}

func TestFullRef(t *testing.T) {
	assert.Equal(t, "refs/heads/main", FullRef("main"))
	assert.Equal(t, "refs/heads/feature/x", FullRef("feature/x"))
}

func TestHasDotSegment(t *testing.T) {
	assert.False(t, HasDotSegment("main"))
	assert.False(t, HasDotSegment("release/v1.0.0"))
	assert.False(t, HasDotSegment("feature/..x"))
	assert.True(t, HasDotSegment("nonexistent/../main"))
	assert.True(t, HasDotSegment("./main"))
	assert.True(t, HasDotSegment(".."))
}
