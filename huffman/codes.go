package huffman

import "github.com/dsnet/lzssh/bitio"

// Code is a codeword as the depth-first left='0'/right='1' bit string
// recorded during the walk that produced it, root to leaf.
type Code string

// Codes maps each observed symbol to its codeword.
type Codes map[byte]Code

// Emit performs the codeword-emission step: a depth-first traversal of
// the tree appending '0' on a left descent and '1' on a right descent,
// recording the accumulated bit string at each leaf. A single-leaf tree
// (one distinct input symbol) is given the codeword "0" by convention,
// since a depth-first walk that never descends would otherwise produce
// an empty, unusable codeword.
func (t *Tree) Emit() Codes {
	codes := make(Codes)
	if t == nil || t.root == nil {
		return codes
	}
	if t.root.leaf {
		codes[t.root.ch] = "0"
		return codes
	}
	var walk func(n *node, prefix string)
	walk = func(n *node, prefix string) {
		if n.leaf {
			codes[n.ch] = Code(prefix)
			return
		}
		walk(n.left, prefix+"0")
		walk(n.right, prefix+"1")
	}
	walk(t.root, "")
	return codes
}

// WriteSymbol writes sym's codeword to bw one bit at a time.
func (c Codes) WriteSymbol(bw *bitio.BitFile, sym byte) error {
	code, ok := c[sym]
	if !ok {
		return Error("symbol not present in code table")
	}
	for _, bit := range []byte(code) {
		if err := bw.PutBit(bit - '0'); err != nil {
			return err
		}
	}
	return nil
}

// ReadSymbol decodes the next symbol from br by walking the tree from
// the root one bit at a time until a leaf is reached.
func (t *Tree) ReadSymbol(br *bitio.BitFile) (sym byte, err error) {
	defer errRecover(&err)
	if t == nil || t.root == nil {
		return 0, Error("cannot decode from an empty tree")
	}
	n := t.root
	if n.leaf {
		// Consume the single conventional '0' bit used to encode a
		// degenerate one-symbol alphabet.
		if _, err := br.GetBit(); err != nil {
			return 0, err
		}
		return n.ch, nil
	}
	for !n.leaf {
		bit, err := br.GetBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			n = n.left
		} else {
			n = n.right
		}
		if n == nil {
			// A well-formed tree built by Build/BuildFromData never has a
			// nil child on an internal node; this guards against a
			// corrupted tree reaching ReadSymbol some other way.
			panic(Error("corrupt tree: nil child during decode"))
		}
	}
	return n.ch, nil
}
