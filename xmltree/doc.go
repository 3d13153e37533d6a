// Package xmltree parses XML documents into a simple element tree.
//
// Analysis Studio files are UTF-16 XML. encoding/xml only reads UTF-8, so
// input is first transcoded with golang.org/x/text: a byte-order mark wins
// when present, otherwise the leading bytes are sniffed for the UTF-16
// pattern of "<?". Declared encodings other than UTF-8/UTF-16 are handled
// by golang.org/x/net/html/charset.
//
//	doc, err := xmltree.Parse(r)
//	if err != nil {
//	    // malformed XML
//	}
//	root := doc.Root
//	for _, child := range root.Children {
//	    fmt.Println(child.Name, child.Text)
//	}
//
// [Probe] is a tolerant variant that stops at the root start tag. It is
// used for format detection on a truncated leading window of a file.
package xmltree
