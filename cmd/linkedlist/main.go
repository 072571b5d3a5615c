// Command linkedlist builds a small chain of ints and walks it through
// insert, remove, access and find, printing the chain after each change.
package main

//go:generate go run ../gengen -o ../../intchain -p intchain ../../chain int

import (
	"fmt"
	"io"
	"os"

	"github.com/joeshaw/linkedlist/intchain"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	n0 := intchain.NewNode(1)
	n1 := intchain.NewNode(3)
	n2 := intchain.NewNode(2)
	n3 := intchain.NewNode(5)
	n4 := intchain.NewNode(4)
	n0.Next = n1
	n1.Next = n2
	n2.Next = n3
	n3.Next = n4

	if err := show(w, "initial chain", n0); err != nil {
		return err
	}

	intchain.Insert(n0, intchain.NewNode(0))
	if err := show(w, "after insert", n0); err != nil {
		return err
	}

	intchain.Remove(n0)
	if err := show(w, "after remove", n0); err != nil {
		return err
	}

	node := intchain.Access(n0, 3)
	if _, err := fmt.Fprintf(w, "value at index 3: %d\n", node.Val); err != nil {
		return err
	}

	index := intchain.Find(n0, 2, 0)
	_, err := fmt.Fprintf(w, "index of value 2: %d\n", index)
	return err
}

func show(w io.Writer, label string, head *intchain.Node) error {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return err
	}
	return intchain.Print(w, head)
}
