// Command mkfont rasterizes a font into a packed gfx.Font table and writes
// it out as Go source.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/tinyfont/proggy"

	"libgp/fonts"
	"libgp/gfx"
)

type options struct {
	pkg     string
	name    string
	source  string
	charset string
	cm      *charmap.Charmap
}

func main() {
	var (
		ttfPath = flag.String("ttf", "", "TrueType/OpenType file (default: Go Regular).")
		builtin = flag.String("builtin", "", "basic|proggy: use a built-in bitmap font instead of a TTF.")
		size    = flag.Float64("size", 12, "Pixel size for TTF rasterization.")
		charset = flag.String("charset", "latin1", "latin1|cp1251: code page for bytes 0xBF-0xFF.")
		pkg     = flag.String("pkg", "fontdata", "Package name of the generated file.")
		name    = flag.String("var", "Font", "Variable name of the generated font.")
		outPath = flag.String("o", "", "Output file (default: stdout).")
	)
	flag.Parse()

	opts := options{pkg: *pkg, name: *name, charset: strings.ToLower(*charset)}
	switch opts.charset {
	case "latin1", "iso8859-1":
		opts.cm = charmap.ISO8859_1
	case "cp1251", "windows-1251":
		opts.cm = charmap.Windows1251
	default:
		fatalf("unknown charset: %s", *charset)
	}

	var (
		f   *gfx.Font
		err error
	)
	switch {
	case *builtin == "basic":
		opts.source = "basicfont 7x13"
		f, err = fonts.FromFace(basicFace(), opts.cm)
	case *builtin == "proggy":
		opts.source = "proggy TinySZ8pt7b"
		f, err = fonts.FromTinyfont(&proggy.TinySZ8pt7b, opts.cm)
	case *builtin != "":
		fatalf("unknown builtin font: %s", *builtin)
	case *ttfPath == "":
		opts.source = fmt.Sprintf("Go Regular %gpx", *size)
		f, err = fonts.FromTTF(goRegularTTF(), *size, opts.cm)
	default:
		var ttf []byte
		ttf, err = os.ReadFile(*ttfPath)
		if err != nil {
			fatalf("read: %v", err)
		}
		opts.source = fmt.Sprintf("%s %gpx", *ttfPath, *size)
		f, err = fonts.FromTTF(ttf, *size, opts.cm)
	}
	if err != nil {
		fatalf("rasterize: %v", err)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		out, err := os.Create(*outPath)
		if err != nil {
			fatalf("create: %v", err)
		}
		defer out.Close()
		w = out
	}
	if err := generate(w, f, opts); err != nil {
		fatalf("generate: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// generate writes gofmt'ed Go source declaring f.
func generate(w io.Writer, f *gfx.Font, opts options) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkfont; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", opts.pkg)
	fmt.Fprintf(&b, "import \"libgp/gfx\"\n\n")
	fmt.Fprintf(&b, "// %s is %s with %s in the upper slots.\n", opts.name, opts.source, opts.charset)
	fmt.Fprintf(&b, "var %s = &gfx.Font{\n", opts.name)
	fmt.Fprintf(&b, "Height: %d,\n", f.Height)
	fmt.Fprintf(&b, "Glyphs: []gfx.Glyph{\n")
	for i, g := range f.Glyphs {
		fmt.Fprintf(&b, "{Width: %d, Offset: %d}, // %q\n", g.Width, g.Offset, fonts.SlotRune(i, opts.cm))
	}
	fmt.Fprintf(&b, "},\n")
	fmt.Fprintf(&b, "Bitmap: []byte{\n")
	for i, v := range f.Bitmap {
		fmt.Fprintf(&b, "0x%02x,", v)
		if i%16 == 15 || i == len(f.Bitmap)-1 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "},\n")
	fmt.Fprintf(&b, "}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	_, err = w.Write(src)
	return err
}
