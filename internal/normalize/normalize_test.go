package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TrimsAndDeduplicates(t *testing.T) {
	n := NewNormalizer(nil)

	set := n.Normalize([]string{"Python", "python ", "SQL"})

	require.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"python", "sql"}, set.Canonicals())
}

func TestNormalize_MergesSurfaceForms(t *testing.T) {
	n := NewNormalizer(nil)

	set := n.Normalize([]string{"Node.js", "nodejs", "Node JS"})

	require.Equal(t, 1, set.Len())
	token := set.Skills[0]
	assert.Equal(t, "nodejs", token.Canonical)
	assert.ElementsMatch(t, []string{"Node.js", "nodejs", "Node JS"}, token.Surfaces)
}

func TestNormalize_DropsBlankEntries(t *testing.T) {
	n := NewNormalizer(nil)

	set := n.Normalize([]string{"", "   ", "\t", "Go"})

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "go", set.Skills[0].Canonical)
}

func TestNormalize_AliasResolution(t *testing.T) {
	n := NewNormalizer(nil)

	set := n.Normalize([]string{"golang", "K8s", "JS"})

	assert.Equal(t, []string{"go", "javascript", "kubernetes"}, set.Canonicals())
}

func TestNormalize_OrderInsensitive(t *testing.T) {
	n := NewNormalizer(nil)

	forward := n.Normalize([]string{"Python", "SQL", "Excel", "node.js"})
	backward := n.Normalize([]string{"node.js", "Excel", "SQL", "Python"})

	assert.Equal(t, forward, backward)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer(nil)

	first := n.Normalize([]string{"Python", "python ", "SQL", "golang"})
	second := n.Normalize(first.Canonicals())

	assert.Equal(t, first.Canonicals(), second.Canonicals())
}

func TestNormalize_CustomAliasTable(t *testing.T) {
	n := NewNormalizer(AliasTable{"tf": "terraform"})

	set := n.Normalize([]string{"TF", "terraform"})

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "terraform", set.Skills[0].Canonical)
}

func TestCanonicalize_CollapsesWhitespaceAndPunctuation(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, "machinelearning", n.Canonicalize("Machine   Learning"))
	assert.Equal(t, "machinelearning", n.Canonicalize("machine-learning"))
	assert.Equal(t, "", n.Canonicalize("   "))
}
