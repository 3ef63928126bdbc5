// Package cecs provides query mechanisms for component-based entity systems.
package cecs

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
	"github.com/zafericen/cecs/cluster"
	"github.com/zafericen/cecs/component"
	"github.com/zafericen/cecs/signature"
)

// Named is implemented by anything that names a single component type,
// most commonly an AccessibleComponent[T]. It lets a Query accept typed
// component handles alongside bare TypeName strings.
type Named interface {
	Name() component.TypeName
}

// QueryNode is a node in a query tree, evaluated against one cluster's
// signature at a time.
type QueryNode interface {
	Evaluate(c *cluster.Cluster, p *Pool) bool
}

// Query is a composable predicate over cluster signatures: And/Or/Not
// nodes can nest arbitrarily, built from TypeName strings, Named
// component handles, or other QueryNodes.
type Query struct {
	root QueryNode
}

// NewQuery returns an empty, unattached query.
func NewQuery() *Query {
	return &Query{}
}

type queryOp int

const (
	opAnd queryOp = iota
	opOr
	opNot
)

// compositeNode implements one boolean operation over a set of named
// components plus any nested child nodes.
type compositeNode struct {
	op       queryOp
	names    []component.TypeName
	children []QueryNode
}

func newCompositeNode(op queryOp, names []component.TypeName, children []QueryNode) *compositeNode {
	return &compositeNode{op: op, names: names, children: children}
}

// Evaluate implements QueryNode for compositeNode.
func (n *compositeNode) Evaluate(c *cluster.Cluster, p *Pool) bool {
	var nodeSig signature.Signature
	missing := false
	for _, name := range n.names {
		if cid, ok := p.register.ID(name); ok {
			nodeSig.Set(cid, true)
		} else {
			missing = true
		}
	}
	sig := c.Signature()

	switch n.op {
	case opAnd:
		if missing || !nodeSig.Subset(sig) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(c, p) {
				return false
			}
		}
		return true
	case opOr:
		if nodeSig.AnyMatch(sig) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(c, p) {
				return true
			}
		}
		return false
	case opNot:
		if len(n.children) == 0 {
			return !nodeSig.AnyMatch(sig)
		}
		if len(n.names) > 0 && nodeSig.AnyMatch(sig) {
			return false
		}
		for _, child := range n.children {
			if child.Evaluate(c, p) {
				return false
			}
		}
		return true
	}
	return false
}

// And returns a node matching clusters carrying every item; if this is
// the query's first call, the node also becomes the query's root.
func (q *Query) And(items ...any) QueryNode {
	return q.attach(opAnd, items...)
}

// Or returns a node matching clusters carrying any item.
func (q *Query) Or(items ...any) QueryNode {
	return q.attach(opOr, items...)
}

// Not returns a node matching clusters carrying none of the items.
func (q *Query) Not(items ...any) QueryNode {
	return q.attach(opNot, items...)
}

func (q *Query) attach(op queryOp, items ...any) QueryNode {
	names, children := processItems(items...)
	node := newCompositeNode(op, names, children)
	if q.root == nil {
		q.root = node
	}
	return node
}

// processItems splits query items into plain TypeNames and nested
// QueryNodes, accepting bare TypeName strings, []TypeName, anything
// Named (an AccessibleComponent[T]), or a QueryNode to nest.
func processItems(items ...any) ([]component.TypeName, []QueryNode) {
	var names []component.TypeName
	var children []QueryNode
	for _, item := range items {
		switch v := item.(type) {
		case component.TypeName:
			names = append(names, v)
		case []component.TypeName:
			names = append(names, v...)
		case Named:
			names = append(names, v.Name())
		case QueryNode:
			children = append(children, v)
		default:
			panic(bark.AddTrace(fmt.Errorf("cecs: invalid query item type %T", item)))
		}
	}
	return names, children
}

// Evaluate implements QueryNode for Query itself, so a Query can be
// nested inside another And/Or/Not.
func (q *Query) Evaluate(c *cluster.Cluster, p *Pool) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(c, p)
}
