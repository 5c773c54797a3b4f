package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// writePDF emits a minimal single page PDF with the given lines set in a
// monospaced font. The format is PDF 1.4 with an uncompressed content
// stream, enough for every common viewer.
func writePDF(w io.Writer, lines []string) error {
	var content bytes.Buffer
	content.WriteString("BT /F1 10 Tf 50 780 Td 14 TL\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", escapePDF(line))
	}
	content.WriteString("ET")

	const header = "%PDF-1.4\n"
	var body bytes.Buffer
	var offsets []int
	obj := func(format string, args ...any) {
		offsets = append(offsets, len(header)+body.Len())
		fmt.Fprintf(&body, format, args...)
	}
	obj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	obj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	obj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")
	obj("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", content.Len(), content.String())
	obj("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>\nendobj\n")

	var out bytes.Buffer
	out.WriteString(header)
	out.Write(body.Bytes())
	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	_, err := w.Write(out.Bytes())
	return err
}

// escapePDF escapes the characters that delimit a PDF string literal.
func escapePDF(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
