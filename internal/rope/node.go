package rope

import "strings"

// Tree structure constants
const (
	// maxChildren is the maximum children per internal node before splitting.
	maxChildren = 8

	// maxLeafBytes is the target byte size of a leaf's text.
	// Leaves produced by splits may be smaller; concatenation merges
	// neighbors back together while they fit.
	maxLeafBytes = 512
)

// node is a node in the rope tree.
// Leaf nodes (height == 0) hold a text fragment.
// Internal nodes (height > 0) hold child node references.
// Nodes are never mutated after construction; edits build new nodes
// along the affected path and share the rest.
type node struct {
	height  uint8
	summary Summary

	// Internal node fields (height > 0)
	children []*node

	// Leaf node field (height == 0)
	text string
}

// newLeaf creates a leaf node holding the given text.
func newLeaf(text string) *node {
	return &node{
		height:  0,
		summary: summarize(text),
		text:    text,
	}
}

// newInternal creates an internal node with the given children.
func newInternal(children []*node) *node {
	if len(children) == 0 {
		return newLeaf("")
	}

	var total Summary
	for _, child := range children {
		total = total.add(child.summary)
	}

	return &node{
		height:   children[0].height + 1,
		summary:  total,
		children: children,
	}
}

// isLeaf returns true if this is a leaf node.
func (n *node) isLeaf() bool {
	return n.height == 0
}

// appendTo appends all text in this subtree to the builder.
func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		sb.WriteString(n.text)
		return
	}

	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends text in the rune range [start, end) to the builder.
// The range must already be clamped to the subtree.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}

	if n.isLeaf() {
		sb.WriteString(n.text[byteIndex(n.text, start):byteIndex(n.text, end)])
		return
	}

	offset := 0
	for _, child := range n.children {
		childEnd := offset + child.summary.Runes

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childStop := child.summary.Runes
		if end < childEnd {
			childStop = end - offset
		}

		child.appendRange(sb, childStart, childStop)
		offset = childEnd
	}
}

// lineOffset returns the rune offset immediately after the nth newline
// in this subtree. n must be in [1, summary.Lines].
func (n *node) lineOffset(nth int) int {
	if n.isLeaf() {
		runes := 0
		for _, r := range n.text {
			runes++
			if r == '\n' {
				nth--
				if nth == 0 {
					return runes
				}
			}
		}
		return runes
	}

	offset := 0
	for _, child := range n.children {
		if nth <= child.summary.Lines {
			return offset + child.lineOffset(nth)
		}
		nth -= child.summary.Lines
		offset += child.summary.Runes
	}
	return offset
}

// split splits the node at the given rune offset.
// Returns two nodes: left holds [0, offset), right holds [offset, end).
func (n *node) split(offset int) (*node, *node) {
	if offset <= 0 {
		return newLeaf(""), n
	}
	if offset >= n.summary.Runes {
		return n, newLeaf("")
	}

	if n.isLeaf() {
		at := byteIndex(n.text, offset)
		return newLeaf(n.text[:at]), newLeaf(n.text[at:])
	}
	return n.splitInternal(offset)
}

// splitInternal splits an internal node at the given rune offset.
func (n *node) splitInternal(offset int) (*node, *node) {
	var leftChildren, rightChildren []*node
	current := 0

	for _, child := range n.children {
		childRunes := child.summary.Runes

		switch {
		case current+childRunes <= offset:
			leftChildren = append(leftChildren, child)
		case current >= offset:
			rightChildren = append(rightChildren, child)
		default:
			left, right := child.split(offset - current)
			if left.summary.Runes > 0 {
				leftChildren = append(leftChildren, left)
			}
			if right.summary.Runes > 0 {
				rightChildren = append(rightChildren, right)
			}
		}
		current += childRunes
	}

	return buildFromNodes(leftChildren), buildFromNodes(rightChildren)
}

// buildFromNodes creates a balanced tree from a list of same-order nodes.
func buildFromNodes(nodes []*node) *node {
	if len(nodes) == 0 {
		return newLeaf("")
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	if len(nodes) <= maxChildren {
		return newInternal(nodes)
	}

	var parents []*node
	for i := 0; i < len(nodes); i += maxChildren {
		end := i + maxChildren
		if end > len(nodes) {
			end = len(nodes)
		}
		parents = append(parents, newInternal(nodes[i:end]))
	}
	return buildFromNodes(parents)
}

// concat concatenates two nodes.
func concat(left, right *node) *node {
	if left == nil || left.summary.Runes == 0 {
		if right == nil {
			return newLeaf("")
		}
		return right
	}
	if right == nil || right.summary.Runes == 0 {
		return left
	}

	if left.isLeaf() && right.isLeaf() {
		return concatLeaves(left, right)
	}

	// Bring both sides to the same height, then merge at that level.
	for left.height < right.height {
		left = newInternal([]*node{left})
	}
	for right.height < left.height {
		right = newInternal([]*node{right})
	}

	return mergeNodes(left, right)
}

// concatLeaves concatenates two leaf nodes, merging when the result
// still fits in one leaf.
func concatLeaves(left, right *node) *node {
	if left.summary.Bytes+right.summary.Bytes <= maxLeafBytes {
		return newLeaf(left.text + right.text)
	}
	return newInternal([]*node{left, right})
}

// mergeNodes merges two nodes of the same height.
func mergeNodes(left, right *node) *node {
	if left.isLeaf() {
		return concatLeaves(left, right)
	}

	all := make([]*node, 0, len(left.children)+len(right.children))
	all = append(all, left.children...)
	all = append(all, right.children...)

	if len(all) <= maxChildren {
		return newInternal(all)
	}
	return buildFromNodes(all)
}
