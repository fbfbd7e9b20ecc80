package fancy_test

import (
	"testing"

	"github.com/atlanticdynamic/hellolynx/internal/fancy"
	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tree := fancy.Tree()
	assert.NotNil(t, tree)

	tree.Root("Root Node")
	child := fancy.Section("Child Node", "(2)")
	child.Child("Grandchild")
	tree.Child(child)

	out := tree.String()
	assert.Contains(t, out, "Root Node")
	assert.Contains(t, out, "Child Node")
	assert.Contains(t, out, "(2)")
	assert.Contains(t, out, "Grandchild")
}

func TestSection_NoNote(t *testing.T) {
	assert.Contains(t, fancy.Section("Title", "").String(), "Title")
}

func TestSetting(t *testing.T) {
	out := fancy.Setting("Port", 8080)
	assert.Contains(t, out, "Port:")
	assert.Contains(t, out, "8080")
}

func TestTextHelpers(t *testing.T) {
	assert.Contains(t, fancy.ListenerText("0.0.0.0:8080"), "0.0.0.0:8080")
	assert.Contains(t, fancy.DisabledText("disabled"), "disabled")
}
