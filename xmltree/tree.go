package xmltree

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoRoot is returned when a document contains no element at all.
var ErrNoRoot = errors.New("xmltree: document has no root element")

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an XML element.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Parent   *Node

	// Text is the concatenation of the element's own character data,
	// excluding text inside child elements.
	Text string

	buf []byte
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the value of the named attribute, or "".
func (n *Node) AttrValue(name string) string {
	v, _ := n.Attr(name)
	return v
}

// Child returns the first child element with the given name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all child elements with the given name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// HasChildren reports whether the element has child elements.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Path returns the slash-separated element path from the root.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// Document is a parsed XML document.
type Document struct {
	// Version and DeclaredEncoding come from the XML declaration.
	Version          string
	DeclaredEncoding string

	// Encoding is the transfer encoding detected from the raw bytes.
	Encoding string

	Root *Node
}

// ParseBytes parses a complete document held in memory.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads and parses a complete document. Any syntax error, an
// unterminated element, or a missing root element is an error.
func Parse(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4)

	doc := &Document{Encoding: Sniff(head)}

	decoder := xml.NewDecoder(utf8Reader(br, doc.Encoding))
	decoder.CharsetReader = charsetReader

	var stack []*Node
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: %w", err)
		}

		switch t := token.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				doc.Version = procInstParam(t.Inst, "version")
				doc.DeclaredEncoding = procInstParam(t.Inst, "encoding")
			}

		case xml.StartElement:
			n := newNode(t)
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, fmt.Errorf("xmltree: multiple root elements (%s, %s)", doc.Root.Name, n.Name)
				}
				doc.Root = n
			} else {
				parent := stack[len(stack)-1]
				n.Parent = parent
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = string(n.buf)
			n.buf = nil
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				n := stack[len(stack)-1]
				n.buf = append(n.buf, t...)
			}
		}
	}

	if doc.Root == nil {
		return nil, ErrNoRoot
	}
	return doc, nil
}

// Prolog is what Probe learns from the start of a document.
type Prolog struct {
	Version          string
	DeclaredEncoding string
	Encoding         string

	RootName  string
	RootAttrs []Attr
}

// Probe tolerantly parses the leading window of a document up to and
// including the root start tag. The window may be truncated anywhere
// after that tag.
func Probe(head []byte) (*Prolog, error) {
	p := &Prolog{Encoding: Sniff(head)}

	decoder := xml.NewDecoder(utf8Reader(bytes.NewReader(head), p.Encoding))
	decoder.CharsetReader = charsetReader
	decoder.Strict = false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, ErrNoRoot
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: probe: %w", err)
		}

		switch t := token.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				p.Version = procInstParam(t.Inst, "version")
				p.DeclaredEncoding = procInstParam(t.Inst, "encoding")
			}
		case xml.StartElement:
			n := newNode(t)
			p.RootName = n.Name
			p.RootAttrs = n.Attrs
			return p, nil
		}
	}
}

func newNode(t xml.StartElement) *Node {
	n := &Node{Name: t.Name.Local}
	for _, a := range t.Attr {
		n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}
	return n
}

// procInstParam extracts a pseudo-attribute such as version="1.0" from
// the body of an XML declaration.
func procInstParam(inst []byte, param string) string {
	s := string(inst)
	for {
		idx := strings.Index(s, param)
		if idx < 0 {
			return ""
		}
		rest := strings.TrimLeft(s[idx+len(param):], " \t\r\n")
		if !strings.HasPrefix(rest, "=") {
			s = s[idx+len(param):]
			continue
		}
		rest = strings.TrimLeft(rest[1:], " \t\r\n")
		if rest == "" {
			return ""
		}
		q := rest[0]
		if q != '"' && q != '\'' {
			return ""
		}
		end := strings.IndexByte(rest[1:], q)
		if end < 0 {
			return ""
		}
		return rest[1 : 1+end]
	}
}
