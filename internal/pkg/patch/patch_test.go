//go:build unit

package patch_test

import (
	"testing"

	"mask-ledger/internal/pkg/patch"
	"mask-ledger/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, patch.Coalesce(ptr.To(3), 7))
	assert.Equal(t, 7, patch.Coalesce(nil, 7))
}

func TestFirstNonZero(t *testing.T) {
	assert.Equal(t, "flag.json", patch.FirstNonZero("", "flag.json", "env.json"))
	assert.Equal(t, "env.json", patch.FirstNonZero("", "env.json"))
	assert.Equal(t, "", patch.FirstNonZero[string]())
}
