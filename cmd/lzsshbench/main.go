// Command lzsshbench compares this module's LZSS codec against a
// couple of sibling compressors pulled from the wider Go ecosystem, as a
// sanity check that the from-scratch sliding-window coder is in the same
// neighborhood as production codecs rather than pathologically slow or
// pathologically poor at compression.
//
// Example usage:
//	$ lzsshbench -i twain.txt
//	codec    ratio  encMB/s    decMB/s
//	lzssh    1.85x  12.4MiB/s  98.1MiB/s
//	flate    2.68x  45.2MiB/s  210.4MiB/s
//	xz/lzma  3.10x  3.9MiB/s   42.7MiB/s
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dsnet/golib/strconv"
	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz/lzma"

	"github.com/dsnet/lzssh/lzss"
)

type codec struct {
	name string
	enc  func(io.Reader, io.Writer) error
	dec  func(io.Reader, io.Writer) error
}

var codecs = []codec{
	{"lzssh", lzss.EncodeLZSS, lzss.DecodeLZSS},
	{"flate", encodeFlate, decodeFlate},
	{"xz/lzma", encodeLZMA, decodeLZMA},
}

func encodeFlate(r io.Reader, w io.Writer) error {
	fw, err := flate.NewWriter(w, flate.DefaultCompression)
	if err != nil {
		return err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return err
	}
	return fw.Close()
}

func decodeFlate(r io.Reader, w io.Writer) error {
	fr := flate.NewReader(r)
	defer fr.Close()
	_, err := io.Copy(w, fr)
	return err
}

func encodeLZMA(r io.Reader, w io.Writer) error {
	lw, err := lzma.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := io.Copy(lw, r); err != nil {
		return err
	}
	return lw.Close()
}

func decodeLZMA(r io.Reader, w io.Writer) error {
	lr, err := lzma.NewReader(r)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, lr)
	return err
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lzsshbench", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	inPath := fs.String("i", "", "input file to benchmark against (required)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "lzsshbench: -i is required")
		return 2
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzsshbench: %v\n", err)
		return 1
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "codec\tratio\tencMB/s\tdecMB/s")
	for _, c := range codecs {
		ratio, encRate, decRate, err := benchOne(c, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lzsshbench: %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.2fx\t%s\t%s\n",
			c.name, ratio,
			strconv.FormatPrefix(encRate, strconv.Base1024, 1)+"B/s",
			strconv.FormatPrefix(decRate, strconv.Base1024, 1)+"B/s")
	}
	tw.Flush()
	return 0
}

// benchOne returns the compression ratio (original/compressed) and the
// encode/decode throughput in bytes per second.
func benchOne(c codec, data []byte) (ratio, encRate, decRate float64, err error) {
	var compressed bytes.Buffer
	t0 := time.Now()
	if err = c.enc(bytes.NewReader(data), &compressed); err != nil {
		return 0, 0, 0, err
	}
	encElapsed := time.Since(t0)

	var decompressed bytes.Buffer
	t0 = time.Now()
	if err = c.dec(bytes.NewReader(compressed.Bytes()), &decompressed); err != nil {
		return 0, 0, 0, err
	}
	decElapsed := time.Since(t0)

	if compressed.Len() == 0 {
		return 0, 0, 0, fmt.Errorf("empty compressed output")
	}
	ratio = float64(len(data)) / float64(compressed.Len())
	encRate = float64(len(data)) / encElapsed.Seconds()
	decRate = float64(decompressed.Len()) / decElapsed.Seconds()
	return ratio, encRate, decRate, nil
}
