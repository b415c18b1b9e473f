package node

// Chain owns an ordered list of nodes and runs blocks through them in
// series. Graph wiring is chain membership: appending a node connects it
// after the current tail, removing it disconnects it. The chain does not
// dispose removed nodes; ownership stays with the caller until Dispose.
type Chain struct {
	nodes []Node
}

// NewChain creates a chain over the given nodes in processing order.
func NewChain(nodes ...Node) *Chain {
	return &Chain{nodes: nodes}
}

// Append connects a node after the current tail. Nil nodes are ignored.
func (c *Chain) Append(n Node) {
	if n == nil {
		return
	}

	c.nodes = append(c.nodes, n)
}

// Remove disconnects the named node and returns it, or nil if absent.
func (c *Chain) Remove(name string) Node {
	for i, n := range c.nodes {
		if n.Name() == name {
			c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
			return n
		}
	}

	return nil
}

// Lookup returns the named node, or nil.
func (c *Chain) Lookup(name string) Node {
	for _, n := range c.nodes {
		if n.Name() == name {
			return n
		}
	}

	return nil
}

// Len returns the number of connected nodes.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// ProcessBlock runs one block through every node in order, in-place.
func (c *Chain) ProcessBlock(left, right []float64) {
	for _, n := range c.nodes {
		n.ProcessBlock(left, right)
	}
}

// Reset clears the processing state of every node.
func (c *Chain) Reset() {
	for _, n := range c.nodes {
		n.Reset()
	}
}

// Dispose disposes every node and empties the chain. Idempotent.
func (c *Chain) Dispose() {
	for _, n := range c.nodes {
		n.Dispose()
	}

	c.nodes = nil
}
