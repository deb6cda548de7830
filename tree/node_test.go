package tree

import (
	"testing"
)

func TestInsertAndIsolate(t *testing.T) {
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	x := NewNode("x")
	root.InsertChildAt(root.IndexOfChild(a)+1, x)
	if root.ChildCount() != 3 || root.IndexOfChild(x) != 1 {
		t.Fatalf("expected x to be inserted after a, children are %v", root.Children())
	}
	if x.Parent() != root {
		t.Errorf("expected parent of x to be root, is %v", x.Parent())
	}
	x.Isolate()
	if root.ChildCount() != 2 || root.IndexOfChild(x) != -1 || x.Parent() != nil {
		t.Errorf("expected x to be removed without residue, children are %v", root.Children())
	}
	if ch, ok := root.Child(1); !ok || ch != b {
		t.Errorf("expected b to move back to position 1, is %v", ch)
	}
}

func TestTopDown(t *testing.T) {
	root := NewNode("r")
	a := NewNode("a")
	root.AddChild(a).AddChild(NewNode("b"))
	a.AddChild(NewNode("a1"))
	var order []string
	root.TopDown(func(n *Node[string]) bool {
		order = append(order, n.Payload)
		return true
	})
	if len(order) != 4 || order[0] != "r" || order[1] != "a" || order[2] != "a1" || order[3] != "b" {
		t.Errorf("expected pre-order r,a,a1,b, have %v", order)
	}
	var pruned []string
	root.TopDown(func(n *Node[string]) bool {
		pruned = append(pruned, n.Payload)
		return n.Payload != "a"
	})
	if len(pruned) != 3 {
		t.Errorf("expected sub-tree of a to be skipped, have %v", pruned)
	}
}
