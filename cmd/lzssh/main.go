// Command lzssh compresses and decompresses files using LZSS dictionary
// matching. No Huffman entropy stage is applied.
//
// Usage:
//	lzssh -c [-i infile] [-o outfile]   compress
//	lzssh -d [-i infile] [-o outfile]   decompress
//
// With no -i, input is read from stdin; with no -o, output is written to
// stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dsnet/lzssh/lzss"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lzssh", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		encode  = fs.Bool("c", false, "compress input to output")
		decode  = fs.Bool("d", false, "decompress input to output")
		inPath  = fs.String("i", "", "input path (default: stdin)")
		outPath = fs.String("o", "", "output path (default: stdout)")
		help    = fs.Bool("h", false, "show this help message")
	)
	fs.BoolVar(help, "?", false, "show this help message")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: lzssh (-c | -d) [-i infile] [-o outfile]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		fs.Usage()
		return 0
	}

	if *encode == *decode {
		fmt.Fprintln(os.Stderr, "lzssh: exactly one of -c or -d is required")
		fs.Usage()
		return 2
	}

	in, closeIn, err := openInput(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzssh: %v\n", err)
		return 1
	}
	defer closeIn()

	out, closeOut, err := openOutput(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzssh: %v\n", err)
		return 1
	}
	defer closeOut()

	if *encode {
		err = lzss.EncodeLZSS(in, out)
	} else {
		err = lzss.DecodeLZSS(in, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzssh: %v\n", err)
		return 1
	}
	return 0
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
