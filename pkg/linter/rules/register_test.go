package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/aglint/pkg/linter"
)

func TestRegisterDefaults(t *testing.T) {
	l, err := linter.New(nil)
	require.NoError(t, err)
	require.NoError(t, RegisterDefaults(l))

	assert.True(t, l.HasRule("hint-platforms-consistency"))
	assert.True(t, l.HasRule("single-selector"))
}

func TestRegisterDefaults_DuplicateFails(t *testing.T) {
	l, err := linter.New(nil)
	require.NoError(t, err)
	require.NoError(t, RegisterDefaults(l))

	err = RegisterDefaults(l)
	var regErr *linter.RegistryError
	assert.ErrorAs(t, err, &regErr)
}
