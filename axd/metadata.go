package axd

import (
	"github.com/tsawler/anasys/model"
	"github.com/tsawler/anasys/xmltree"
)

// FlattenMetadata copies the children of parent into meta. A leaf child
// is stored under its own name; a child with element children stores
// each grandchild's text as "child_grandchild". Nothing deeper is
// visited. Children for which skip returns true are left alone.
func FlattenMetadata(meta *model.Metadata, parent *xmltree.Node, skip func(name string) bool) {
	for _, child := range parent.Children {
		if skip != nil && skip(child.Name) {
			continue
		}
		flattenElement(meta, child)
	}
}

func flattenElement(meta *model.Metadata, n *xmltree.Node) {
	if !n.HasChildren() {
		meta.Set(n.Name, n.Text)
		return
	}
	for _, sub := range n.Children {
		meta.Set(n.Name+"_"+sub.Name, sub.Text)
	}
}
