package domain

import (
	"time"
)

// TimelineNode is one entry in the reconstructed call hierarchy. Children are
// held in placement order, which is start-time order with ties broken by
// (node name, run index). A node exclusively owns its children; the root set
// is owned by whoever holds the forest.
type TimelineNode struct {
	Run      *NodeRun        `json:"run"`
	Depth    int             `json:"depth"`
	Children []*TimelineNode `json:"children,omitempty"`
}

func (n *TimelineNode) Start() time.Time {
	return n.Run.StartedAt
}

func (n *TimelineNode) End() time.Time {
	return n.Run.EndsAt()
}

// Walk visits n and every descendant depth-first in child order.
func (n *TimelineNode) Walk(visit func(*TimelineNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// WalkForest visits every node of every tree in root order.
func WalkForest(roots []*TimelineNode, visit func(*TimelineNode)) {
	for _, root := range roots {
		root.Walk(visit)
	}
}
