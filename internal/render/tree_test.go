package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hcasse/ltgen/internal/tree"
)

func sampleTree() *tree.Tree {
	root := &tree.Tree{Symbol: "S", Rule: 1}
	root.PrependChild(tree.NewLeaf("c"))
	root.PrependChild(tree.NewLeaf("b"))
	root.PrependChild(tree.NewLeaf("a"))
	return root
}

func TestTreeIndentedLeafHasNoPlus(t *testing.T) {
	assert.Equal(t, "a\n", TreeIndented(tree.NewLeaf("a")))
}

func TestTreeIndentedInternalNodeUsesPlusAndPipes(t *testing.T) {
	out := TreeIndented(sampleTree())

	assert.Contains(t, out, "S +")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.Contains(t, out, "c")
	assert.Contains(t, out, "|")
}

func TestTreeDotProducesValidDigraphShape(t *testing.T) {
	out := TreeDot(sampleTree())

	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="S"`)
	assert.Contains(t, out, `label="(1)"`)
	assert.Equal(t, 5, strings.Count(out, "[label=")) // 4 node labels + 1 edge label
}
