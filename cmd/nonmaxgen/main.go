// Command nonmaxgen writes the widening conversions and per-type constants
// of package nonmax.
//
// Usage:
//
//	go run ./cmd/nonmaxgen -o conversions_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"os"
	"text/template"
)

// kind describes one integer width known to nonmax.
type kind struct {
	Name   string // suffix used in exported identifiers, e.g. U16
	Go     string // Go primitive type, e.g. uint16
	Signed bool
	// MinBits and MaxBits bound the width across platforms. They differ only
	// for uint and int.
	MinBits int
	MaxBits int
}

func (k kind) wide() bool { return k.MinBits == 128 }

var kinds = []kind{
	{Name: "U8", Go: "uint8", MinBits: 8, MaxBits: 8},
	{Name: "U16", Go: "uint16", MinBits: 16, MaxBits: 16},
	{Name: "U32", Go: "uint32", MinBits: 32, MaxBits: 32},
	{Name: "U64", Go: "uint64", MinBits: 64, MaxBits: 64},
	{Name: "Uint", Go: "uint", MinBits: 32, MaxBits: 64},
	{Name: "I8", Go: "int8", Signed: true, MinBits: 8, MaxBits: 8},
	{Name: "I16", Go: "int16", Signed: true, MinBits: 16, MaxBits: 16},
	{Name: "I32", Go: "int32", Signed: true, MinBits: 32, MaxBits: 32},
	{Name: "I64", Go: "int64", Signed: true, MinBits: 64, MaxBits: 64},
	{Name: "Int", Go: "int", Signed: true, MinBits: 32, MaxBits: 64},
	{Name: "U128", Go: "num.U128", MinBits: 128, MaxBits: 128},
	{Name: "I128", Go: "num.I128", Signed: true, MinBits: 128, MaxBits: 128},
}

// widens reports whether every value of src stays below the maximum of dst
// on every platform.
func widens(src, dst kind) bool {
	if src.MaxBits >= dst.MinBits {
		return false
	}
	return dst.Signed || !src.Signed
}

type conversion struct {
	Src kind
	// FromNonMax and FromPrimitive convert n.Get() and v into the
	// destination primitive.
	FromNonMax    string
	FromPrimitive string
}

func convertExpr(src, dst kind, x string) string {
	switch {
	case dst.Name == "U128":
		return fmt.Sprintf("num.U128From64(uint64(%s))", x)
	case dst.Name == "I128" && src.Signed:
		return fmt.Sprintf("num.I128From64(int64(%s))", x)
	case dst.Name == "I128":
		return fmt.Sprintf("num.I128FromRaw(0, uint64(%s))", x)
	default:
		return fmt.Sprintf("%s(%s)", dst.Go, x)
	}
}

func constructor(dst kind) string {
	if dst.wide() {
		return "New" + dst.Name + "Unchecked"
	}
	return "NewUnchecked"
}

type group struct {
	Dst         kind
	Constructor string
	From        []conversion
}

type data struct {
	Package string
	Kinds   []kind
	Groups  []group
}

func buildData(pkg string) data {
	d := data{Package: pkg}
	for _, k := range kinds {
		if !k.wide() {
			d.Kinds = append(d.Kinds, k)
		}
	}
	for _, dst := range kinds {
		g := group{Dst: dst, Constructor: constructor(dst)}
		for _, src := range kinds {
			if src.wide() || !widens(src, dst) {
				continue
			}
			g.From = append(g.From, conversion{
				Src:           src,
				FromNonMax:    convertExpr(src, dst, "n.Get()"),
				FromPrimitive: convertExpr(src, dst, "v"),
			})
		}
		if len(g.From) > 0 {
			d.Groups = append(d.Groups, g)
		}
	}
	return d
}

var tmpl = template.Must(template.New("nonmax").Parse(`// Code generated by nonmaxgen. DO NOT EDIT.

package {{.Package}}

import num "github.com/shabbyrobe/go-num"
{{range .Kinds}}
// Constants for NonMax{{.Name}}.
var Zero{{.Name}} = Zero[{{.Go}}]()
var One{{.Name}} = One[{{.Go}}]()
var Max{{.Name}} = Max[{{.Go}}]()
var Min{{.Name}} = Min[{{.Go}}]()
{{end}}{{range $g := .Groups}}{{range .From}}
// NonMax{{$g.Dst.Name}}FromNonMax{{.Src.Name}} widens n to NonMax{{$g.Dst.Name}}.
func NonMax{{$g.Dst.Name}}FromNonMax{{.Src.Name}}(n NonMax{{.Src.Name}}) NonMax{{$g.Dst.Name}} {
	return {{$g.Constructor}}({{.FromNonMax}})
}

// NonMax{{$g.Dst.Name}}From{{.Src.Name}} converts v, which is always below the maximum of {{$g.Dst.Go}}.
func NonMax{{$g.Dst.Name}}From{{.Src.Name}}(v {{.Src.Go}}) NonMax{{$g.Dst.Name}} {
	return {{$g.Constructor}}({{.FromPrimitive}})
}
{{end}}{{end}}`))

func generate(w io.Writer, pkg string) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildData(pkg)); err != nil {
		return fmt.Errorf("nonmaxgen: execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("nonmaxgen: format output: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func main() {
	out := flag.String("o", "conversions_gen.go", "output file")
	pkg := flag.String("pkg", "nonmax", "package name")
	flag.Parse()

	var buf bytes.Buffer
	if err := generate(&buf, *pkg); err != nil {
		slog.Error("generation failed", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		slog.Error("write failed", "path", *out, "err", err)
		os.Exit(1)
	}
	slog.Info("generated", "path", *out, "bytes", buf.Len())
}
