package xmldoc

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Parse builds a document tree from raw XML. Reading is permissive:
// unknown entities are kept as literal text, missing end tags are invented,
// and non-UTF-8 encodings declared by the document are converted. When the
// input degrades mid-document, the tree built so far is kept. Comments are
// removed before the tree is returned.
//
// The return value is nil only when no root element could be constructed
// at all (empty input, binary garbage).
func Parse(data []byte) *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive:    true,
		CharsetReader: charset.NewReaderLabel,
	}
	// A read error past the first element leaves a usable partial tree.
	_ = doc.ReadFromBytes(data)

	stripComments(&doc.Element)
	if doc.Root() == nil {
		return nil
	}
	return doc
}

func stripComments(el *etree.Element) {
	for i := len(el.Child) - 1; i >= 0; i-- {
		switch c := el.Child[i].(type) {
		case *etree.Comment:
			el.RemoveChildAt(i)
		case *etree.Element:
			stripComments(c)
		}
	}
}

// Content returns the concatenated character data of el and all of its
// descendants, in document order.
func Content(el *etree.Element) string {
	var sb strings.Builder
	collectText(el, &sb)
	return sb.String()
}

func collectText(el *etree.Element, sb *strings.Builder) {
	for _, c := range el.Child {
		switch t := c.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			collectText(t, sb)
		}
	}
}

// Tail returns the character data between el's end tag and the next
// sibling element, or "" when nothing follows el.
func Tail(el *etree.Element) string {
	parent := el.Parent()
	if parent == nil {
		return ""
	}
	var sb strings.Builder
	for i := el.Index() + 1; i < len(parent.Child); i++ {
		cd, ok := parent.Child[i].(*etree.CharData)
		if !ok {
			break
		}
		sb.WriteString(cd.Data)
	}
	return sb.String()
}

// Walk visits el and every descendant element depth-first in document
// order, an element before its children.
func Walk(el *etree.Element, visit func(*etree.Element)) {
	visit(el)
	for _, child := range el.ChildElements() {
		Walk(child, visit)
	}
}
