package meshmodel

// KeepLargestComponent flood-fills the face-adjacency graph built from
// top, keeps only the connected component with the most faces, and
// discards the rest — spec.md §4.4 step 3: "removes small parasitic
// shells produced when the label function has thin or ambiguous
// regions." Grounded on
// original_source/common/src/model.rs::validate_and_delete_small_groups.
func (m *Model) KeepLargestComponent(top *Topology) {
	n := len(m.Triangles)
	group := make([]int32, n)
	var groupSizes []int
	stack := make([]uint32, 0, n)

	for i := 0; i < n; i++ {
		if group[i] != 0 {
			continue
		}
		groupSizes = append(groupSizes, 0)
		gid := int32(len(groupSizes))
		stack = append(stack, uint32(i))
		group[i] = gid
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			groupSizes[gid-1]++
			for _, adj := range top.FaceAdj[f] {
				if group[adj] == 0 {
					group[adj] = gid
					stack = append(stack, adj)
				}
			}
		}
	}

	best, bestSize := 0, -1
	for i, size := range groupSizes {
		if size > bestSize {
			bestSize = size
			best = i + 1
		}
	}

	kept := m.Triangles[:0]
	for i, t := range m.Triangles {
		if int(group[i]) == best {
			kept = append(kept, t)
		}
	}
	m.Triangles = kept
}

// DeleteUnusedVertices compacts the vertex list to exactly those
// referenced by a triangle, remapping triangle indices, and clears the
// free-vertex pool (which only makes sense against the old indexing).
// Grounded on original_source/common/src/model.rs::delete_unused_v.
func (m *Model) DeleteUnusedVertices() {
	mapping := make([]uint32, len(m.Vertices))
	for i := range mapping {
		mapping[i] = noVertex
	}
	compacted := m.Vertices[:0:0]
	use := func(v uint32) uint32 {
		if mapping[v] == noVertex {
			mapping[v] = uint32(len(compacted))
			compacted = append(compacted, m.Vertices[v])
		}
		return mapping[v]
	}

	for i, t := range m.Triangles {
		m.Triangles[i] = Triangle{use(t.A), use(t.B), use(t.C)}
	}

	m.Vertices = compacted
	m.FreeVertices = nil
}

// Validate runs BuildTopology and, on success, KeepLargestComponent
// followed by DeleteUnusedVertices — the full §4.4 cleanup pipeline for
// one label-mesh. A malformed-topology error aborts only this mesh, per
// spec.md §7.
func (m *Model) Validate() error {
	top, err := m.BuildTopology()
	if err != nil {
		return err
	}
	m.KeepLargestComponent(top)
	m.DeleteUnusedVertices()
	return nil
}
