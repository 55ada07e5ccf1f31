// Command storagewidths writes the Storage type set: one ~[N]byte term for
// every width from 1 to -max bytes.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"text/template"
)

const tmplText = `// Code generated by internal/gen/storagewidths. DO NOT EDIT.

package fixnum

// MaxWidth is the widest Int available, in bytes.
const MaxWidth = {{ .Max }}

// Storage is the set of byte arrays an Int can be built on. The length of the
// array is the width of the integer in bytes, from 1 to MaxWidth. There is
// no zero-length member.
type Storage interface {
{{- range $idx, $w := .Widths }}
	~[{{ $w }}]byte{{ if lt $w $.Max }} |{{ end }}
{{- end }}
}
`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var out string
	var max int
	flag.StringVar(&out, "out", "storage_widths.go", "Output file")
	flag.IntVar(&max, "max", 256, "Widest storage array, in bytes")
	flag.Parse()

	widths := make([]int, max)
	for i := range widths {
		widths[i] = i + 1
	}

	tmpl := template.Must(template.New("storage").Parse(tmplText))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Max    int
		Widths []int
	}{max, widths}); err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0644)
}
