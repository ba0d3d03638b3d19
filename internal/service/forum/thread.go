package forum

import (
	"sort"

	"github.com/google/uuid"

	"campus-helper/internal/domain"
)

type threadNode struct {
	comment  domain.Comment
	children []int
}

// BuildThread reassembles a flat comment batch into reply trees.
//
// A comment becomes a child of its parent when the parent is part of the same
// batch; otherwise it is a root. Links that would close a cycle are dropped
// and the comment is kept as a root, so every input comment appears exactly
// once in the result. Every sibling list is ordered by CreatedAt and keeps
// arrival order for equal timestamps.
func BuildThread(comments []domain.Comment) []domain.ThreadedComment {
	nodes := make([]threadNode, len(comments))
	index := make(map[uuid.UUID]int, len(comments))
	for i, c := range comments {
		nodes[i] = threadNode{comment: c}
		if _, dup := index[c.ID]; !dup {
			index[c.ID] = i
		}
	}

	// parent[i] is the accepted parent of node i, -1 for roots.
	parent := make([]int, len(nodes))
	for i := range parent {
		parent[i] = -1
	}

	var roots []int
	for i := range nodes {
		p, ok := resolveParent(nodes[i].comment, index)
		if !ok || p == i || leadsTo(parent, p, i) {
			roots = append(roots, i)
			continue
		}
		parent[i] = p
		nodes[p].children = append(nodes[p].children, i)
	}

	return materialize(nodes, roots)
}

func resolveParent(c domain.Comment, index map[uuid.UUID]int) (int, bool) {
	if c.ParentID == nil {
		return 0, false
	}
	p, ok := index[*c.ParentID]
	return p, ok
}

// leadsTo reports whether walking accepted parent links up from start reaches
// target. Accepted links always form a forest, so the walk terminates.
func leadsTo(parent []int, start, target int) bool {
	for cur := start; cur != -1; cur = parent[cur] {
		if cur == target {
			return true
		}
	}
	return false
}

func materialize(nodes []threadNode, ids []int) []domain.ThreadedComment {
	sorted := append([]int(nil), ids...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return nodes[sorted[a]].comment.CreatedAt.Before(nodes[sorted[b]].comment.CreatedAt)
	})

	out := make([]domain.ThreadedComment, len(sorted))
	for i, id := range sorted {
		out[i] = domain.ThreadedComment{
			Comment: nodes[id].comment,
			Replies: materialize(nodes, nodes[id].children),
		}
	}
	return out
}

// Flat wraps every comment as a root with no replies, keeping the order
// BuildThread would give them.
func Flat(comments []domain.Comment) []domain.ThreadedComment {
	flat := make([]domain.Comment, len(comments))
	for i, c := range comments {
		c.ParentID = nil
		flat[i] = c
	}
	return BuildThread(flat)
}

// Count returns the number of comments in a thread, replies included.
func Count(thread []domain.ThreadedComment) int {
	n := 0
	for _, c := range thread {
		n += 1 + Count(c.Replies)
	}
	return n
}
