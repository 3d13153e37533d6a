package xmltree

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

// encodeUTF16 encodes s as UTF-16 with a byte-order mark.
func encodeUTF16(t *testing.T, s string, e unicode.Endianness) []byte {
	t.Helper()

	data, err := unicode.UTF16(e, unicode.UseBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("failed to encode UTF-16: %v", err)
	}
	return data
}

const sampleXML = `<?xml version="1.0" encoding="utf-16"?>
<Document DocType="IR" Version="1.0">
  <HeightMaps>
    <HeightMap Label="Height" DataChannel="height">
      <Units>m</Units>
      <Position><X>1.5</X><Y>-2</Y></Position>
    </HeightMap>
  </HeightMaps>
</Document>`

func TestParseUTF16LE(t *testing.T) {
	doc, err := ParseBytes(encodeUTF16(t, sampleXML, unicode.LittleEndian))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	if doc.Encoding != EncodingUTF16LE {
		t.Errorf("Encoding = %q, want %q", doc.Encoding, EncodingUTF16LE)
	}
	if doc.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", doc.Version)
	}
	if doc.DeclaredEncoding != "utf-16" {
		t.Errorf("DeclaredEncoding = %q, want utf-16", doc.DeclaredEncoding)
	}
	if doc.Root.Name != "Document" {
		t.Fatalf("Root = %q, want Document", doc.Root.Name)
	}
	if got := doc.Root.AttrValue("DocType"); got != "IR" {
		t.Errorf("DocType = %q, want IR", got)
	}

	hm := doc.Root.Child("HeightMaps").Child("HeightMap")
	if hm == nil {
		t.Fatal("HeightMap element not found")
	}
	if got := hm.AttrValue("Label"); got != "Height" {
		t.Errorf("Label = %q, want Height", got)
	}
	if got := hm.Child("Units").Text; got != "m" {
		t.Errorf("Units text = %q, want m", got)
	}
	pos := hm.Child("Position")
	if got := pos.Child("Y").Text; got != "-2" {
		t.Errorf("Position/Y = %q, want -2", got)
	}
	if got := pos.Child("X").Path(); got != "/Document/HeightMaps/HeightMap/Position/X" {
		t.Errorf("Path() = %q", got)
	}
	if pos.Parent != hm {
		t.Error("Parent link not set")
	}
}

func TestParseUTF16BE(t *testing.T) {
	doc, err := ParseBytes(encodeUTF16(t, sampleXML, unicode.BigEndian))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if doc.Encoding != EncodingUTF16BE {
		t.Errorf("Encoding = %q, want %q", doc.Encoding, EncodingUTF16BE)
	}
	if doc.Root.Name != "Document" {
		t.Errorf("Root = %q, want Document", doc.Root.Name)
	}
}

func TestParseUTF16NoBOM(t *testing.T) {
	data, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(sampleXML))
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	doc, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if doc.Encoding != EncodingUTF16LE {
		t.Errorf("Encoding = %q, want %q", doc.Encoding, EncodingUTF16LE)
	}
}

func TestParseUTF8(t *testing.T) {
	doc, err := ParseBytes([]byte(`<?xml version="1.0" encoding="UTF-8"?><a x="1">hi<b>there</b> all</a>`))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if doc.Encoding != EncodingUTF8 {
		t.Errorf("Encoding = %q, want %q", doc.Encoding, EncodingUTF8)
	}
	if doc.Root.Text != "hi all" {
		t.Errorf("Root text = %q, want %q", doc.Root.Text, "hi all")
	}
	if !doc.Root.HasChildren() || doc.Root.Child("b").HasChildren() {
		t.Error("HasChildren returned wrong result")
	}
}

func TestParseLatin1(t *testing.T) {
	// 0xE9 is é in ISO-8859-1
	data := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><a>caf`), 0xE9, '<', '/', 'a', '>')

	doc, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if doc.Root.Text != "café" {
		t.Errorf("text = %q, want café", doc.Root.Text)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unclosed", `<a><b></b>`},
		{"mismatched", `<a><b></a></b>`},
		{"garbage", `this is not xml <<<`},
		{"two roots", `<a/><b/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBytes([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseNoRoot(t *testing.T) {
	_, err := ParseBytes([]byte(`<?xml version="1.0"?>`))
	if !errors.Is(err, ErrNoRoot) {
		t.Errorf("expected ErrNoRoot, got %v", err)
	}
}

func TestChildrenNamed(t *testing.T) {
	doc, err := ParseBytes([]byte(`<r><t/><u/><t/></r>`))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if got := len(doc.Root.ChildrenNamed("t")); got != 2 {
		t.Errorf("ChildrenNamed(t) = %d, want 2", got)
	}
	if doc.Root.Child("missing") != nil {
		t.Error("Child(missing) should be nil")
	}
	if _, ok := doc.Root.Attr("missing"); ok {
		t.Error("Attr(missing) should not be found")
	}
}

func TestProbeTruncated(t *testing.T) {
	full := encodeUTF16(t, sampleXML, unicode.LittleEndian)
	// cut inside the HeightMaps element
	head := full[:200]

	p, err := Probe(head)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if p.Encoding != EncodingUTF16LE || p.Version != "1.0" || p.RootName != "Document" {
		t.Errorf("Probe = %+v", p)
	}
	if len(p.RootAttrs) != 2 {
		t.Errorf("RootAttrs = %v", p.RootAttrs)
	}
}

func TestProbeNoRoot(t *testing.T) {
	if _, err := Probe([]byte(`<?xml version="1.0"?>`)); err == nil {
		t.Error("expected error for window without a root element")
	}
	if _, err := Probe(nil); err == nil {
		t.Error("expected error for empty window")
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		head []byte
		want string
	}{
		{[]byte{0xFF, 0xFE, '<', 0}, EncodingUTF16LE},
		{[]byte{0xFE, 0xFF, 0, '<'}, EncodingUTF16BE},
		{[]byte{0xEF, 0xBB, 0xBF, '<'}, EncodingUTF8},
		{[]byte{'<', 0, '?', 0}, EncodingUTF16LE},
		{[]byte{0, '<', 0, '?'}, EncodingUTF16BE},
		{[]byte("<?xm"), EncodingUTF8},
		{nil, EncodingUTF8},
	}

	for _, tt := range tests {
		if got := Sniff(tt.head); got != tt.want {
			t.Errorf("Sniff(%v) = %q, want %q", tt.head, got, tt.want)
		}
	}
	if !IsUTF16(EncodingUTF16BE) || IsUTF16(EncodingUTF8) {
		t.Error("IsUTF16 returned wrong result")
	}
}
