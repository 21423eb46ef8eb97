package calc

import "strings"

// node is a node in the abstract syntax tree of an expression. Child links
// are indices into the owning Expr's arena; calls keep their arguments as an
// ordered index list.
type node struct {
	kind nodeKind

	val  Value  // nodeNum
	name string // nodeName, nodeCall
	args []int  // nodeCall

	// pos is the byte offset of the node's leading token, kept for
	// evaluation faults.
	pos int

	left  int
	right int
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // literal, carries val
	nodeName // variable reference, resolved at evaluation
	nodeCall // function call, args in order

	nodeAdd
	nodeSub
	nodeMul
	nodeDiv
	nodeMod
	nodePow

	nodePos // unary +, child in left
	nodeNeg // unary -, child in left
)

var nodeNames = [...]string{
	nodeNone: "none",
	nodeNum:  "number",
	nodeName: "name",
	nodeCall: "call",
	nodeAdd:  "add",
	nodeSub:  "sub",
	nodeMul:  "mul",
	nodeDiv:  "div",
	nodeMod:  "mod",
	nodePow:  "pow",
	nodePos:  "pos",
	nodeNeg:  "neg",
}

func (k nodeKind) String() string {
	return nodeNames[k]
}

// Expr is a parsed expression. The node slice is the arena that owns the
// whole tree; indices never escape it and dropping the Expr discards the
// tree in bulk.
type Expr struct {
	nodes []node
	root  int
}

// add validates the node's kind tag against the closed set and appends it
// to the arena, returning its index. A node can never hold an invalid tag.
func (e *Expr) add(n node) int {
	if n.kind < nodeNum || n.kind > nodeNeg {
		panic("calc: invalid node kind")
	}
	e.nodes = append(e.nodes, n)
	return len(e.nodes) - 1
}

// String renders the tree one node per line, children connected with
// box-drawing characters:
//
//	add
//	├── number(1)
//	└── mul
//	    ├── number(2)
//	    └── number(3)
func (e *Expr) String() string {
	var b strings.Builder
	e.write(&b, e.root, "")
	return b.String()
}

func (e *Expr) write(b *strings.Builder, i int, prefix string) {
	b.WriteString(e.label(i))
	b.WriteByte('\n')
	kids := e.children(i)
	for k, c := range kids {
		b.WriteString(prefix)
		if k == len(kids)-1 {
			b.WriteString("└── ")
			e.write(b, c, prefix+"    ")
		} else {
			b.WriteString("├── ")
			e.write(b, c, prefix+"│   ")
		}
	}
}

// label names a node for the tree printer: the operator name, the function
// or variable name, or number(<value>).
func (e *Expr) label(i int) string {
	n := &e.nodes[i]
	switch n.kind {
	case nodeNum:
		return "number(" + n.val.String() + ")"
	case nodeName, nodeCall:
		return n.name
	default:
		return n.kind.String()
	}
}

func (e *Expr) children(i int) []int {
	n := &e.nodes[i]
	switch n.kind {
	case nodeNum, nodeName:
		return nil
	case nodeCall:
		return n.args
	case nodePos, nodeNeg:
		return []int{n.left}
	default:
		return []int{n.left, n.right}
	}
}
