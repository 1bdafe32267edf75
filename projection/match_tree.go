package projection

import "github.com/katalvlaran/patterndb/task"

// MatchTree is a decision tree over pattern positions that returns the
// backward operators applicable in an abstract state without testing every
// operator.
//
// The node at depth d tests pattern position d. An operator is routed to the
// child matching its required value at d, or to the star child when it does
// not constrain position d; it is stored at the first node where its facts
// are exhausted.
type MatchTree struct {
	hasher *Hasher
	root   *matchNode
	size   int
}

type matchNode struct {
	ops      []int
	children []*matchNode // indexed by value; nil until some operator tests this position
	star     *matchNode
}

// NewMatchTree returns an empty tree for the pattern hashed by h.
func NewMatchTree(h *Hasher) *MatchTree {
	return &MatchTree{hasher: h}
}

// Len returns the number of inserted operators.
func (m *MatchTree) Len() int { return m.size }

// Insert adds operator id with the given required facts. facts use pattern
// positions as Var and must be sorted by strictly increasing position.
func (m *MatchTree) Insert(id int, facts []task.Fact) {
	node := &m.root
	depth, i := 0, 0
	for {
		if *node == nil {
			*node = &matchNode{}
		}
		n := *node
		if i == len(facts) {
			n.ops = append(n.ops, id)
			m.size++
			return
		}
		if f := facts[i]; f.Var == depth {
			if n.children == nil {
				n.children = make([]*matchNode, m.hasher.DomainSize(depth))
			}
			node = &n.children[f.Value]
			i++
		} else {
			node = &n.star
		}
		depth++
	}
}

// Applicable appends to dst the ids of all operators whose facts hold in
// abstract state index and returns the extended slice.
func (m *MatchTree) Applicable(index int, dst []int) []int {
	return m.collect(m.root, 0, index, dst)
}

func (m *MatchTree) collect(n *matchNode, depth, index int, dst []int) []int {
	if n == nil {
		return dst
	}
	dst = append(dst, n.ops...)
	if depth == m.hasher.Len() {
		return dst
	}
	if n.children != nil {
		dst = m.collect(n.children[m.hasher.ValueAt(index, depth)], depth+1, index, dst)
	}

	return m.collect(n.star, depth+1, index, dst)
}
