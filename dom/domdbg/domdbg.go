// Package domdbg implements helpers to debug a DOM tree.
package domdbg

import (
	"fmt"
	"io"
	"strings"

	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"

	"github.com/voidwalk/hiddenstyle/dom"
)

// Dump writes an indented tree rendering of the document to w. Text nodes
// are shown trimmed, element nodes with their tag, id, class and inline
// style.
func Dump(w io.Writer, doc *dom.Document) error {
	tree := tp.New()
	addChildren(tree, doc.Root())
	_, err := io.WriteString(w, tree.String())
	return err
}

// DumpElement writes the subtree rooted at el.
func DumpElement(w io.Writer, el *dom.Element) error {
	tree := tp.NewWithRoot(nodeLabel(el.Node()))
	addChildren(tree, el.Node())
	_, err := io.WriteString(w, tree.String())
	return err
}

func addChildren(tree tp.Tree, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			addChildren(tree.AddBranch(nodeLabel(c)), c)
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				tree.AddNode(fmt.Sprintf("%q", text))
			}
		}
	}
}

func nodeLabel(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		switch a.Key {
		case "id":
			sb.WriteString(" #" + a.Val)
		case "class":
			sb.WriteString(" ." + strings.Join(strings.Fields(a.Val), " ."))
		case "style":
			sb.WriteString(fmt.Sprintf(" style=%q", a.Val))
		}
	}
	sb.WriteString(">")
	return sb.String()
}
