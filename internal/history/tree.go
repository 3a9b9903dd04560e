package history

import "sync"

// Symbol is an interned symbol name used as a tree-node label. Interning
// guarantees that equal names share one *Symbol, so labels compare by
// pointer identity.
type Symbol struct {
	name string
}

// Name returns the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

var symtab = struct {
	sync.Mutex
	m map[string]*Symbol
}{m: make(map[string]*Symbol)}

// Intern returns the canonical *Symbol for name, creating it on first use.
func Intern(name string) *Symbol {
	symtab.Lock()
	defer symtab.Unlock()
	if s, ok := symtab.m[name]; ok {
		return s
	}
	s := &Symbol{name: name}
	symtab.m[name] = s
	return s
}

// rootSymbol labels the synthetic root of every tree. It lives outside the
// intern table, so a real symbol named "root" can never collide with it.
var rootSymbol = &Symbol{name: "root"}

// RootSymbol returns the reserved label of synthetic root nodes.
func RootSymbol() *Symbol {
	return rootSymbol
}

// Node is a single entry in the navigation tree. Children are owned
// top-down and kept in insertion order; there are no parent links.
type Node struct {
	Sym      *Symbol
	Children []*Node
}

// FindChild returns the first direct child labeled sym, or nil.
func (n *Node) FindChild(sym *Symbol) *Node {
	for _, c := range n.Children {
		if c.Sym == sym {
			return c
		}
	}
	return nil
}

// AddChild appends a new leaf labeled sym and returns it.
func (n *Node) AddChild(sym *Symbol) *Node {
	c := &Node{Sym: sym}
	n.Children = append(n.Children, c)
	return c
}

// Find returns the first node in a pre-order walk of n's subtree that
// matches sym, where a node matches when sym occurs anywhere in its
// subtree. The hit is therefore the outermost node containing sym: asked
// at the root, the search resurfaces the root-side ancestor rather than
// the labeled node itself. Backward navigation depends on this exact
// rule; a deepest-match search would land somewhere else.
func (n *Node) Find(sym *Symbol) *Node {
	if n.Sym == sym {
		return n
	}
	for _, c := range n.Children {
		if c.Find(sym) != nil {
			return n
		}
	}
	return nil
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	total := 1
	for _, c := range n.Children {
		total += c.Size()
	}
	return total
}

// Record is one workspace's navigation history: the root owns the whole
// tree, Current is a non-owning reference to some node reachable from it.
type Record struct {
	Root    *Node
	Current *Node

	rev uint64 // bumped on every mutation; used as a render-cache key
}

// NewRecord creates a fresh history: a lone root node that is also the
// current position.
func NewRecord() *Record {
	root := &Node{Sym: rootSymbol}
	return &Record{Root: root, Current: root}
}

// Forward records a jump to sym: if Current already has a child with that
// label the pointer moves there, otherwise a new child is appended and
// becomes current. The tree only grows on this path.
func (r *Record) Forward(sym *Symbol) {
	child := r.Current.FindChild(sym)
	if child == nil {
		child = r.Current.AddChild(sym)
	}
	r.Current = child
	r.rev++
}

// Backward records a jump back. The target is inferred purely from tree
// shape: Current relocates to the node found by searching the tree from
// the root for Current's own label. Per Find's outermost-match rule this
// ascends all the way to the branch point nearest the root. The host's
// back command never tells us where it landed, so this inference is all
// there is.
func (r *Record) Backward() {
	if hit := r.Root.Find(r.Current.Sym); hit != nil {
		r.Current = hit
	}
	r.rev++
}

// Rev returns the record's mutation counter.
func (r *Record) Rev() uint64 {
	return r.rev
}
