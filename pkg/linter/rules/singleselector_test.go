package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/aglint/pkg/linter"
)

func TestSingleSelector(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantProblems int
	}{
		{
			name:         "single selector",
			input:        "example.com##.ad\n",
			wantProblems: 0,
		},
		{
			name:         "two selectors",
			input:        "example.com##.a, .b\n",
			wantProblems: 1,
		},
		{
			name:         "comma inside attribute selector is not a split",
			input:        `example.com##div[data-x="1,2"]` + "\n",
			wantProblems: 0,
		},
		{
			name:         "comma inside :has() is not a split",
			input:        "example.com##div:has(.a, .b)\n",
			wantProblems: 0,
		},
		{
			name:         "non-elementhiding cosmetic is ignored",
			input:        "example.com#$#.a { display: none; }\n",
			wantProblems: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := linter.New(nil)
			require.NoError(t, err)
			require.NoError(t, l.AddRule(&SingleSelector{}))

			result, err := l.Lint(tt.input, false)
			require.NoError(t, err)
			assert.Len(t, result.Problems, tt.wantProblems)
		})
	}
}

func TestSplitTopLevelSelectors(t *testing.T) {
	assert.Equal(t, []string{"a"}, splitTopLevelSelectors("a"))
	assert.Equal(t, []string{"a", "b"}, splitTopLevelSelectors("a, b"))
	assert.Equal(t, []string{`div[data-x="1,2"]`}, splitTopLevelSelectors(`div[data-x="1,2"]`))
	assert.Equal(t, []string{"div:has(.a, .b)"}, splitTopLevelSelectors("div:has(.a, .b)"))
}

func TestSingleSelector_Metadata(t *testing.T) {
	r := &SingleSelector{}
	assert.Equal(t, "single-selector", r.Name())
	assert.False(t, r.CanFix())
}
