package xliff

import (
	"strings"

	"github.com/pkg/errors"
)

// Unit is one translation unit.
type Unit struct {
	ID     string
	Source string
	Target string
}

// Document is what Collect extracts from a parsed file.
type Document struct {
	TargetLanguage string
	Units          []Unit
}

// Collect walks every <file> child of root and takes target-language and the
// translation units found at file[0][0] (body → group → trans-unit).
//
// Each child overwrites the previous result, so only the last child's units are
// returned. Callers rely on this: files with several groups contribute the last one.
func Collect(root *Node) (*Document, error) {
	if len(root.Children) == 0 {
		return nil, errors.WithStack(&ParseError{Msg: "<" + root.Name.Local + "> has no child nodes"})
	}

	var doc *Document
	for _, node := range root.Children {
		lang, ok := node.Attr("target-language")
		if !ok {
			return nil, errors.WithStack(&ParseError{Msg: "<" + node.Name.Local + "> has no target-language attribute"})
		}
		body, err := node.Child(0)
		if err != nil {
			return nil, err
		}
		group, err := body.Child(0)
		if err != nil {
			return nil, err
		}

		units := make([]Unit, 0, len(group.Children))
		for _, tu := range group.Children {
			if !IsTranslationUnit(tu) {
				continue
			}
			id, ok := tu.Attr("id")
			if !ok {
				return nil, errors.WithStack(&ParseError{Msg: "<" + tu.Name.Local + "> has no id attribute"})
			}
			units = append(units, Unit{
				ID:     id,
				Source: tu.Children[0].Text,
				Target: tu.Children[1].Text,
			})
		}
		doc = &Document{TargetLanguage: lang, Units: units}
	}
	return doc, nil
}

// IsTranslationUnit reports whether n has a source element with text as its first
// child and a target element as its second. The target may be empty.
func IsTranslationUnit(n *Node) bool {
	if len(n.Children) < 2 {
		return false
	}
	source, target := n.Children[0], n.Children[1]
	if !strings.Contains(source.Name.Local, "source") {
		return false
	}
	if source.Text == "" {
		return false
	}
	return strings.Contains(target.Name.Local, "target")
}

// ReadFile parses and collects the file at path.
func ReadFile(path string) (*Document, error) {
	root, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Collect(root)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	return doc, nil
}
