package netlist

import (
	"sort"

	"github.com/vcblab/compiler/blueprint"
	"github.com/vcblab/compiler/ink"
	"github.com/vcblab/compiler/pixel"
)

// bridgeConn is a directed (bridge-pixel, touching-pixel) pair captured
// during the first pass: one per adjacency between a bridging kind
// (bus/tunnel/mesh/read/write) and a non-empty, non-cross neighbor that is
// not itself the same bridging kind.
type bridgeConn struct {
	bridge, touching pixel.Index
}

// compiler holds the state of a single compilation: one lattice, one
// disjoint set, and the bridging connections discovered along the way. It
// is not reused across blueprints and carries no package-level state — the
// "global" wifi/mesh roots the reference implementation tracks as
// process-wide sentinels are just local fields here.
type compiler struct {
	lat *pixel.Lattice
	ds  *pixel.DisjointSet

	busConns    []bridgeConn
	tunnelConns []bridgeConn
	meshConns   []bridgeConn
	readConns   []bridgeConn
	writeConns  []bridgeConn

	wirelessRoot [4]pixel.Index
	wirelessSeen [4]bool
	meshRoot     pixel.Index
	meshSeen     bool

	diagnostics []Diagnostic
}

// Compile runs the full connected-components pass over bp's Logic layer
// and returns the resulting SimpleGraph together with any non-fatal
// diagnostics collected along the way (currently: unmatched tunnels).
// The only error it can return is pixel.ErrInvalidGeometry.
func Compile(bp blueprint.Blueprint) (*SimpleGraph, []Diagnostic, error) {
	lat, err := pixel.NewLattice(bp)
	if err != nil {
		return nil, nil, err
	}

	c := &compiler{
		lat: lat,
		ds:  pixel.NewDisjointSet(lat.Size()),
	}

	c.firstPass()
	c.ds.Flatten()

	c.resolveTunnels()
	c.resolveMesh()
	c.resolveBus()

	c.ds.Flatten()

	sg := c.buildSimpleGraph()

	return sg, c.diagnostics, nil
}

func (c *compiler) kindAt(i pixel.Index) ink.Kind {
	return c.lat.At(i)
}

// addBridgeConn implements the reference compiler's addConn: for an
// adjacent pair (p at qp, n at qn), if n is non-empty, non-cross, not
// itself of the bridging kind f, and p is of kind f, record (qp, qn). The
// symmetric case is checked too, so at most one direction fires per call —
// a bridging pixel only bridges *across* its own run, never into itself.
func addBridgeConn(p, n ink.Kind, qp, qn pixel.Index, conns *[]bridgeConn, f func(ink.Kind) bool) {
	if !ink.IsEmpty(n) && !f(n) && !ink.IsCross(n) && f(p) {
		*conns = append(*conns, bridgeConn{bridge: qp, touching: qn})
	}
	if !ink.IsEmpty(p) && !f(p) && !ink.IsCross(p) && f(n) {
		*conns = append(*conns, bridgeConn{bridge: qn, touching: qp})
	}
}

// checkAdjacent applies the local merge rule and records bridging
// connections for the unordered pair of pixels at (px,py) and (nx,ny).
func (c *compiler) checkAdjacent(px, py, nx, ny int) {
	qp := c.lat.Index(px, py)
	qn := c.lat.Index(nx, ny)
	p, n := c.kindAt(qp), c.kindAt(qn)

	if ink.SameFamily(p, n) {
		c.ds.Union(qp, qn)
	}

	addBridgeConn(p, n, qp, qn, &c.busConns, ink.IsBus)
	addBridgeConn(p, n, qp, qn, &c.tunnelConns, ink.IsTunnel)
	addBridgeConn(p, n, qp, qn, &c.meshConns, ink.IsMesh)
	addBridgeConn(p, n, qp, qn, &c.readConns, ink.IsRead)
	addBridgeConn(p, n, qp, qn, &c.writeConns, ink.IsWrite)
}

// uniteCross unites the pixels at (ax,ay) and (bx,by) if both are in
// bounds and same-family. A Cross pixel's axes are independent: this is
// only ever called across a Cross pixel's opposite neighbor pairs.
func (c *compiler) uniteCross(ax, ay, bx, by int) {
	if !c.lat.InBounds(ax, ay) || !c.lat.InBounds(bx, by) {
		return
	}
	a, b := c.kindAt(c.lat.Index(ax, ay)), c.kindAt(c.lat.Index(bx, by))
	if ink.SameFamily(a, b) {
		c.ds.Union(c.lat.Index(ax, ay), c.lat.Index(bx, by))
	}
}

// firstPass builds initial connected components: local same-family merges,
// cross through-merges, and the wifi/mesh global bridging classes, while
// recording every bridging adjacency for the later resolution passes.
func (c *compiler) firstPass() {
	width, height := c.lat.Width, c.lat.Height

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width-1 {
				c.checkAdjacent(x, y, x+1, y)
			}
			if y < height-1 {
				c.checkAdjacent(x, y, x, y+1)
			}

			if ink.IsCross(c.kindAt(c.lat.Index(x, y))) {
				c.uniteCross(x-1, y, x+1, y)
				c.uniteCross(x, y-1, x, y+1)
			}

			p := c.kindAt(c.lat.Index(x, y))
			idx := c.lat.Index(x, y)
			if ink.IsWifi(p) {
				channel := ink.WirelessChannel(p)
				if !c.wirelessSeen[channel] {
					c.wirelessRoot[channel] = idx
					c.wirelessSeen[channel] = true
				} else {
					c.ds.Union(idx, c.wirelessRoot[channel])
				}
			} else if ink.IsMesh(p) {
				if !c.meshSeen {
					c.meshRoot = idx
					c.meshSeen = true
				} else {
					c.ds.Union(idx, c.meshRoot)
				}
			}
		}
	}
}

// resolveTunnels walks from each tunnel endpoint towards its far side,
// uniting the touching pixel with its companion on the other end. Meshes
// never propagate through tunnels. An unmatched endpoint is recorded as a
// diagnostic and the compilation continues.
func (c *compiler) resolveTunnels() {
	width, height := c.lat.Width, c.lat.Height

	for _, cn := range c.tunnelConns {
		tx, ty := c.lat.Coordinate(cn.bridge)
		px, py := c.lat.Coordinate(cn.touching)

		startp := c.kindAt(cn.touching)
		if ink.IsMesh(startp) {
			continue
		}

		dx, dy := tx-px, ty-py

		x, y := tx, ty
		matched := false
		for !matched {
			x += dx
			y += dy
			if dx != 0 && (x <= 0 || x >= width-1) {
				break
			}
			if dy != 0 && (y <= 0 || y >= height-1) {
				break
			}
			endT := c.kindAt(c.lat.Index(x, y))
			endP := c.kindAt(c.lat.Index(x+dx, y+dy))
			if ink.IsTunnel(endT) && endP == startp {
				c.ds.Union(cn.touching, c.lat.Index(x+dx, y+dy))
				matched = true
			}
		}

		if !matched {
			c.diagnostics = append(c.diagnostics, Diagnostic{
				Kind:    UnmatchedTunnel,
				X:       tx,
				Y:       ty,
				Message: "unmatched tunnel",
			})
		}
	}
}

// groupByKind partitions a set of raw pixel indices by their InkKind and
// returns the groups sorted by kind, each group itself sorted ascending by
// index. Ascending order makes uniteGroup's "leftmost wins" base element
// deterministic from run to run — the reference implementation grouped
// through an unordered set here, which left root identity unspecified; see
// DESIGN.md for why a stable, sorted order was chosen instead.
func groupByKind(members []pixel.Index, kindOf func(pixel.Index) ink.Kind) [][]pixel.Index {
	byKind := make(map[ink.Kind][]pixel.Index)
	for _, m := range members {
		byKind[kindOf(m)] = append(byKind[kindOf(m)], m)
	}

	kinds := make([]ink.Kind, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	groups := make([][]pixel.Index, 0, len(kinds))
	for _, k := range kinds {
		g := byKind[k]
		sort.Slice(g, func(i, j int) bool { return g[i] < g[j] })
		groups = append(groups, g)
	}

	return groups
}

// uniteGroup unites every member of group with group[0], leaving group[0]'s
// root as the surviving one (barring further unions elsewhere).
func (c *compiler) uniteGroup(group []pixel.Index) {
	for k := 1; k < len(group); k++ {
		c.ds.Union(group[0], group[k])
	}
}

func (c *compiler) uniteGroupByKind(members []pixel.Index) {
	for _, group := range groupByKind(members, c.kindAt) {
		c.uniteGroup(group)
	}
}

// resolveMesh unites every touching pixel of the same kind that shares
// contact with any mesh tile into a single class per kind.
func (c *compiler) resolveMesh() {
	seen := make(map[pixel.Index]struct{})
	var members []pixel.Index
	for _, cn := range c.meshConns {
		if _, ok := seen[cn.touching]; ok {
			continue
		}
		seen[cn.touching] = struct{}{}
		members = append(members, cn.touching)
	}

	c.uniteGroupByKind(members)
}

// resolveBus unites, per distinct bus run, the touching pixels of the same
// kind that share contact with that run. Two runs of the same bus color
// but different physical runs are independent: they key on the bus
// pixel's canonical class root, which mesh resolution has already settled.
func (c *compiler) resolveBus() {
	byBus := make(map[pixel.Index][]pixel.Index)
	order := make([]pixel.Index, 0)
	seen := make(map[pixel.Index]map[pixel.Index]bool)

	for _, cn := range c.busConns {
		busRoot := c.ds.Find(cn.bridge)
		if seen[busRoot] == nil {
			seen[busRoot] = make(map[pixel.Index]bool)
			order = append(order, busRoot)
		}
		if seen[busRoot][cn.touching] {
			continue
		}
		seen[busRoot][cn.touching] = true
		byBus[busRoot] = append(byBus[busRoot], cn.touching)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, busRoot := range order {
		c.uniteGroupByKind(byBus[busRoot])
	}
}

// buildSimpleGraph extracts entities (canonical roots whose kind is active
// or trace) and the directed read/write connections between them.
func (c *compiler) buildSimpleGraph() *SimpleGraph {
	sg := newSimpleGraph()

	for i := 0; i < c.ds.Len(); i++ {
		idx := pixel.Index(i)
		if c.ds.Root(idx) != idx {
			continue
		}
		t := c.kindAt(idx)
		if ink.IsActive(t) || ink.IsTrace(t) {
			sg.Entities[idx] = t
		}
	}

	// Read: conductor (bridge) drives the active component (touching) it
	// feeds. Edge direction: conductor -> active component.
	for _, cn := range c.readConns {
		if ink.IsActive(c.kindAt(cn.touching)) {
			from := c.ds.Find(cn.bridge)
			to := c.ds.Find(cn.touching)
			sg.addConnection(from, to)
		}
	}

	// Write: the active component (touching) drives the conductor (bridge)
	// it writes to. Edge direction: active component -> conductor.
	for _, cn := range c.writeConns {
		if ink.IsActive(c.kindAt(cn.touching)) {
			from := c.ds.Find(cn.touching)
			to := c.ds.Find(cn.bridge)
			sg.addConnection(from, to)
		}
	}

	return sg
}
