package intersubject

// Map holds a per-voxel statistic, either per subject or collapsed
// across subjects. Storage is subject-major: each subject's voxel values
// form a contiguous slab.
type Map struct {
	voxels   int
	subjects int // 0 when collapsed
	data     []float64
}

func newMap(voxels, subjects int) *Map {
	return &Map{
		voxels:   voxels,
		subjects: subjects,
		data:     make([]float64, voxels*max(subjects, 1)),
	}
}

// Voxels returns the voxel count.
func (m *Map) Voxels() int { return m.voxels }

// Subjects returns the subject count, or 0 when the map has been
// collapsed across subjects.
func (m *Map) Subjects() int { return m.subjects }

// Collapsed reports whether the subject axis has been averaged away.
func (m *Map) Collapsed() bool { return m.subjects == 0 }

// At returns the collapsed value for a voxel. It panics if the map still
// carries a subject axis.
func (m *Map) At(v int) float64 {
	if !m.Collapsed() {
		panic("intersubject: Map.At on non-collapsed map, use AtSubject")
	}

	return m.data[v]
}

// AtSubject returns the value for a (voxel, subject) pair. It panics on
// a collapsed map.
func (m *Map) AtSubject(v, s int) float64 {
	if m.Collapsed() {
		panic("intersubject: Map.AtSubject on collapsed map, use At")
	}

	return m.data[s*m.voxels+v]
}

// Subject returns one subject's voxel values as a view into the map.
func (m *Map) Subject(s int) []float64 {
	if m.Collapsed() {
		panic("intersubject: Map.Subject on collapsed map, use Values")
	}

	start := s * m.voxels

	return m.data[start : start+m.voxels : start+m.voxels]
}

// Values returns the collapsed voxel values as a view into the map.
func (m *Map) Values() []float64 {
	if !m.Collapsed() {
		panic("intersubject: Map.Values on non-collapsed map")
	}

	return m.data
}

func (m *Map) set(v, s int, x float64) {
	m.data[s*m.voxels+v] = x
}

// Matrix holds a voxel-by-voxel statistic, either per subject or
// collapsed across subjects. Each subject's voxel-by-voxel slab is
// contiguous and row-major; slabs are symmetric by construction.
type Matrix struct {
	voxels   int
	subjects int // 0 when collapsed
	data     []float64
}

func newMatrix(voxels, subjects int) *Matrix {
	return &Matrix{
		voxels:   voxels,
		subjects: subjects,
		data:     make([]float64, voxels*voxels*max(subjects, 1)),
	}
}

// Voxels returns the voxel count.
func (m *Matrix) Voxels() int { return m.voxels }

// Subjects returns the subject count, or 0 when the matrix has been
// collapsed across subjects.
func (m *Matrix) Subjects() int { return m.subjects }

// Collapsed reports whether the subject axis has been averaged away.
func (m *Matrix) Collapsed() bool { return m.subjects == 0 }

// At returns the collapsed value for a voxel pair. It panics if the
// matrix still carries a subject axis.
func (m *Matrix) At(i, j int) float64 {
	if !m.Collapsed() {
		panic("intersubject: Matrix.At on non-collapsed matrix, use AtSubject")
	}

	return m.data[i*m.voxels+j]
}

// AtSubject returns the value for a voxel pair and subject. It panics on
// a collapsed matrix.
func (m *Matrix) AtSubject(i, j, s int) float64 {
	if m.Collapsed() {
		panic("intersubject: Matrix.AtSubject on collapsed matrix, use At")
	}

	return m.data[(s*m.voxels+i)*m.voxels+j]
}

// Subject returns one subject's voxel-by-voxel slab (row-major) as a
// view into the matrix.
func (m *Matrix) Subject(s int) []float64 {
	if m.Collapsed() {
		panic("intersubject: Matrix.Subject on collapsed matrix, use Values")
	}

	n := m.voxels * m.voxels
	start := s * n

	return m.data[start : start+n : start+n]
}

// Values returns the collapsed voxel-by-voxel slab (row-major) as a view
// into the matrix.
func (m *Matrix) Values() []float64 {
	if !m.Collapsed() {
		panic("intersubject: Matrix.Values on non-collapsed matrix")
	}

	return m.data
}
