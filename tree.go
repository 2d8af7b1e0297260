// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffpack

import (
	"container/heap"
	"errors"
)

// none marks a missing child.
const none int32 = -1

// A tree is a binary prefix tree stored in an arena.
// Children are indexes into nodes; each node has exactly one parent.
type tree struct {
	nodes []node
	root  int32
}

type node struct {
	freq uint64
	// rank orders nodes of equal frequency: leaves rank by symbol,
	// merged nodes by creation, after all leaves.
	rank        int
	left, right int32
	sym         byte
	leaf        bool
}

func (t *tree) add(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// buildTree builds a Huffman tree for the symbols of f with a nonzero count.
// The two least frequent nodes are merged repeatedly; the first one
// extracted becomes the left child.
// A single symbol becomes the left child of an otherwise empty root.
func buildTree(f *Frequencies) (*tree, error) {
	t := &tree{}
	h := &nodeHeap{t: t}
	for s, c := range f {
		if c == 0 {
			continue
		}
		h.idx = append(h.idx, t.add(node{freq: c, rank: s, left: none, right: none, sym: byte(s), leaf: true}))
	}
	switch len(h.idx) {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		leaf := h.idx[0]
		t.root = t.add(node{freq: t.nodes[leaf].freq, rank: len(f), left: leaf, right: none})
		return t, nil
	}
	heap.Init(h)
	rank := len(f)
	for h.Len() > 1 {
		l := heap.Pop(h).(int32)
		r := heap.Pop(h).(int32)
		heap.Push(h, t.add(node{
			freq:  t.nodes[l].freq + t.nodes[r].freq,
			rank:  rank,
			left:  l,
			right: r,
		}))
		rank++
	}
	t.root = h.idx[0]
	return t, nil
}

// newTrie returns a tree holding only an empty root, ready for insert.
func newTrie() *tree {
	t := &tree{}
	t.root = t.add(node{left: none, right: none})
	return t
}

var (
	errEmptyPath     = errors.New("empty path")
	errNotPrefixFree = errors.New("codes are not prefix-free")
)

// insert adds a leaf for sym at the end of p, creating interior nodes as needed.
func (t *tree) insert(p Path, sym byte) error {
	if p.Len() == 0 {
		return errEmptyPath
	}
	cur := t.root
	for i := range p.Len() {
		if t.nodes[cur].leaf {
			return errNotPrefixFree
		}
		bit := p.Bit(i)
		child := t.child(cur, bit)
		if child == none {
			child = t.add(node{left: none, right: none})
			if bit == 1 {
				t.nodes[cur].left = child
			} else {
				t.nodes[cur].right = child
			}
		}
		cur = child
	}
	n := &t.nodes[cur]
	if n.leaf || n.left != none || n.right != none {
		return errNotPrefixFree
	}
	n.leaf = true
	n.sym = sym
	return nil
}

// child returns the left child of i for a 1 bit and the right child for a 0 bit.
func (t *tree) child(i int32, bit byte) int32 {
	if bit == 1 {
		return t.nodes[i].left
	}
	return t.nodes[i].right
}

// paths returns the path to every leaf, indexed by symbol.
// Symbols without a leaf get the empty path.
func (t *tree) paths() (*[256]Path, error) {
	type item struct {
		i int32
		p Path
	}
	var out [256]Path
	stack := []item{{t.root, Path{}}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[it.i]
		if n.leaf {
			out[n.sym] = it.p
			continue
		}
		for _, c := range [2]struct {
			i   int32
			bit byte
		}{{n.right, 0}, {n.left, 1}} {
			if c.i == none {
				continue
			}
			p, err := it.p.append(c.bit)
			if err != nil {
				return nil, err
			}
			stack = append(stack, item{c.i, p})
		}
	}
	return &out, nil
}

// nodeHeap is a min-heap of node indexes ordered by frequency, then rank.
type nodeHeap struct {
	t   *tree
	idx []int32
}

func (h *nodeHeap) Len() int { return len(h.idx) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := &h.t.nodes[h.idx[i]], &h.t.nodes[h.idx[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.rank < b.rank
}

func (h *nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *nodeHeap) Push(x any) { h.idx = append(h.idx, x.(int32)) }

func (h *nodeHeap) Pop() any {
	n := len(h.idx)
	x := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return x
}
