package xmlconfig

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// element is one node of the decoded configuration tree. Line numbers are
// kept so errors point at the offending declaration.
type element struct {
	name     string
	attrs    map[string]string
	children []*element
	line     int
}

// attr returns the raw attribute value, which may be blank
func (e *element) attr(name string) string {
	return e.attrs[name]
}

// decodeTree decodes the document into an element tree
func decodeTree(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{
				name:  t.Name.Local,
				attrs: make(map[string]string, len(t.Attr)),
				line:  lineAt(data, dec.InputOffset()),
			}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				el.attrs[a.Name.Local] = a.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("document has more than one root element")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, errors.New("document is empty")
	}
	return root, nil
}

// lineAt converts a decoder byte offset into a 1-based line number
func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return 1 + bytes.Count(data[:offset], []byte{'\n'})
}
