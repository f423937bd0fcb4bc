package domain

// TreeNode represents a node of either hierarchy for navigation and
// rendering (CLI tree, TUI browser, MCP tree tool).
type TreeNode struct {
	DocType    string
	Name       string
	Title      string
	Linked     bool // has a counterpart on the other side
	SyncOwned  bool // synced_from_education (learning side only)
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// Flatten returns all visible nodes in depth-first order (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// AddChild appends child and wires its parent pointer.
func (n *TreeNode) AddChild(child *TreeNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Expand marks the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse marks the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}

// ExpandAll expands this node and every descendant
func (n *TreeNode) ExpandAll() {
	n.IsExpanded = true
	for _, child := range n.Children {
		child.ExpandAll()
	}
}
