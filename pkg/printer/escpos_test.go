package printer

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentFraming(t *testing.T) {
	doc := NewDocument(32)
	doc.Text("FUEL RECEIPT").PartialCut()
	data := doc.Bytes()

	if !bytes.HasPrefix(data, []byte{ESC, '@'}) {
		t.Error("document must start with ESC @ init")
	}
	if !bytes.HasSuffix(data, []byte{GS, 'V', 0x01}) {
		t.Error("document must end with the partial cut command")
	}
}

func TestKeyValueAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("AMOUNT:", "Rs. 1170.00")

	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	if len(line) != 32 {
		t.Errorf("key/value line is %d chars, want padded to 32: %q", len(line), line)
	}
	if !strings.HasPrefix(line, "AMOUNT:") || !strings.HasSuffix(line, "Rs. 1170.00") {
		t.Errorf("line = %q", line)
	}
}

func TestKeyValueNeverCollapses(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("A VERY LONG LABEL:", "VALUE")
	if !strings.Contains(string(doc.Bytes()), "A VERY LONG LABEL: VALUE") {
		t.Error("overlong key/value must keep at least one space between key and value")
	}
}

func TestDashedSeparatorWidth(t *testing.T) {
	doc := NewDocument(32)
	doc.DashedSeparator()
	line := strings.TrimSuffix(string(doc.Bytes()[2:]), "\n")
	if len(line) != 31 { // 16 dashes joined by 15 spaces
		t.Errorf("dashed separator is %d chars: %q", len(line), line)
	}
	if strings.Trim(line, "- ") != "" {
		t.Errorf("dashed separator has stray characters: %q", line)
	}
}

func TestDefaultWidth(t *testing.T) {
	if got := NewDocument(0).Width(); got != 32 {
		t.Errorf("default width = %d, want 32", got)
	}
}
