// Package chain implements operations on a singly linked chain of nodes.
//
// A chain has no container type of its own: it is identified by a pointer to
// its head node, and any number of callers may hold pointers into the same
// chain. Changes made through one pointer are visible through all of them.
// Chains are assumed to be acyclic; nothing here checks that, and a cyclic
// chain makes the traversing functions loop forever.
//
// None of the functions are safe for concurrent use on the same chain.
//
// The package is written against generic.T and doubles as a gengen template:
//
//	$ gengen -o ./intchain -p intchain ./chain int
package chain

import (
	"fmt"
	"io"
	"strings"

	"github.com/joeshaw/linkedlist/generic"
)

// Node is one element of a chain. Next is nil for the tail.
type Node struct {
	Val  generic.T
	Next *Node
}

// NewNode returns an unlinked node holding v.
func NewNode(v generic.T) *Node {
	return &Node{Val: v}
}

// Insert splices p into the chain immediately after n0. Whatever followed n0
// now follows p. n0 must not be nil.
func Insert(n0, p *Node) {
	p.Next = n0.Next
	n0.Next = p
}

// Remove unlinks the node immediately after n0 and clears its Next pointer,
// leaving it isolated. It does nothing if n0 is the tail.
func Remove(n0 *Node) {
	p := n0.Next
	if p == nil {
		return
	}
	n0.Next = p.Next
	p.Next = nil
}

// Access returns the node at the zero-based position index, counting from
// head. Indices at or below zero yield head; indices past the end yield the
// tail.
func Access(head *Node, index int) *Node {
	n := head
	for ; index > 0 && n != nil && n.Next != nil; index-- {
		n = n.Next
	}
	return n
}

// Find returns the position of the first node whose value equals target, or
// -1 if there is none. index is the position attributed to head; pass 0 to
// count from the start of the chain.
func Find(head *Node, target generic.T, index int) int {
	for n := head; n != nil; n = n.Next {
		// This type of equality check is not generically safe,
		// but will work fine for all comparable types.
		if n.Val == target {
			return index
		}
		index++
	}
	return -1
}

// FromSlice builds a chain holding vals in order and returns its head, or nil
// if vals is empty.
func FromSlice(vals []generic.T) *Node {
	dummy := &Node{}
	tail := dummy
	for _, v := range vals {
		tail.Next = NewNode(v)
		tail = tail.Next
	}
	return dummy.Next
}

// Values returns the values of the chain in traversal order.
func Values(head *Node) []generic.T {
	var vals []generic.T
	for n := head; n != nil; n = n.Next {
		vals = append(vals, n.Val)
	}
	return vals
}

// Len returns the number of nodes reachable from head.
func Len(head *Node) int {
	l := 0
	for n := head; n != nil; n = n.Next {
		l++
	}
	return l
}

// Tail returns the last node of the chain, or nil for a nil head.
func Tail(head *Node) *Node {
	if head == nil {
		return nil
	}
	n := head
	for n.Next != nil {
		n = n.Next
	}
	return n
}

// Format renders the chain as its values joined by " -> ".
func Format(head *Node) string {
	var sb strings.Builder
	for n := head; n != nil; n = n.Next {
		if n != head {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, n.Val)
	}
	return sb.String()
}

// Print writes the rendering of the chain followed by a newline to w.
func Print(w io.Writer, head *Node) error {
	_, err := fmt.Fprintln(w, Format(head))
	return err
}
