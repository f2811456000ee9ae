// Package xliff reads XLIFF localization files as a plain element tree and
// collects their translation units.
package xliff

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseError reports malformed XML or a document missing an expected node.
type ParseError struct {
	File string
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	if e.File != "" {
		return fmt.Sprintf("parse %s: %s", e.File, msg)
	}
	return "parse: " + msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Node is one element. Text holds the character data that precedes the first child.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []*Node
}

// Attr returns the value of the un-namespaced attribute local.
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the i-th child element or a ParseError naming the missing position.
func (n *Node) Child(i int) (*Node, error) {
	if i < 0 || i >= len(n.Children) {
		return nil, errors.WithStack(&ParseError{Msg: fmt.Sprintf("<%s> has no child at index %d", n.Name.Local, i)})
	}
	return n.Children[i], nil
}

// Parse reads a whole document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	br := bufio.NewReader(r)
	if bom, _ := br.Peek(3); bytes.Equal(bom, utf8BOM) {
		br.Discard(3)
	}
	dec := xml.NewDecoder(br)
	dec.Strict = true

	var (
		root  *Node
		stack []*Node
		text  []string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WithStack(&ParseError{Err: err})
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name, Attrs: t.Copy().Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.WithStack(&ParseError{Msg: "multiple root elements"})
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				if len(parent.Children) == 0 {
					parent.Text = text[len(text)-1]
				}
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
			text = append(text, "")
		case xml.EndElement:
			node := stack[len(stack)-1]
			if len(node.Children) == 0 {
				node.Text = text[len(text)-1]
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) > 0 && len(stack[len(stack)-1].Children) == 0 {
				text[len(text)-1] += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.WithStack(&ParseError{Msg: "no root element"})
	}
	return root, nil
}

// ParseFile parses the document at path.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	return root, nil
}
