package polycube

import "testing"

func det(m [3][3]int) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func TestTickFormulas(t *testing.T) {
	v := Voxel{1, 2, 3}
	tests := []struct {
		name string
		got  *Block
		want Voxel
	}{
		{"xy", New(v).RotateXY(1), Voxel{2, -1, 3}},
		{"xz", New(v).RotateXZ(1), Voxel{3, 2, -1}},
		{"yz", New(v).RotateYZ(1), Voxel{1, -3, 2}},
		{"xy twice", New(v).RotateXY(2), Voxel{-1, -2, 3}},
		{"xy full turn", New(v).RotateXY(4), v},
		{"xy negative", New(v).RotateXY(-1), Voxel{-2, 1, 3}},
		{"yz negative wraps", New(v).RotateYZ(-5), New(v).RotateYZ(3).Voxels()[0]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Voxels()[0]; got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTickTriples(t *testing.T) {
	triples := TickTriples()
	if len(triples) != 64 {
		t.Fatalf("len = %d, want 64", len(triples))
	}
	if triples[0] != (Ticks{}) {
		t.Errorf("first triple = %v", triples[0])
	}
	if triples[1] != (Ticks{YZ: 1}) || triples[4] != (Ticks{XZ: 1}) || triples[16] != (Ticks{XY: 1}) {
		t.Error("YZ should vary fastest and XY slowest")
	}
}

func TestRotations(t *testing.T) {
	rs := Rotations()
	if len(rs) != 24 {
		t.Fatalf("len = %d, want 24", len(rs))
	}
	if !rs[0].IsIdentity() {
		t.Errorf("first rotation %v is not the identity", rs[0])
	}
	for i, r := range rs {
		if d := det(r.Matrix()); d != 1 {
			t.Errorf("rotation %v has determinant %d", r, d)
		}
		for j := range i {
			if r.Same(rs[j]) {
				t.Errorf("rotations %d and %d are the same", i, j)
			}
		}
	}
}

func TestRotationsCoverAllTriples(t *testing.T) {
	rs := Rotations()
	for _, tr := range TickTriples() {
		r := RotationOf(tr)
		found := false
		for _, known := range rs {
			if known.Same(r) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("triple %v realises a rotation outside the table", tr)
		}
	}
}

func TestRotationsReturnsCopy(t *testing.T) {
	rs := Rotations()
	rs[0] = RotationOf(Ticks{XY: 1})
	if !Rotations()[0].IsIdentity() {
		t.Error("mutating the returned slice changed the table")
	}
}

func TestRotationMatchesTicks(t *testing.T) {
	for _, tr := range TickTriples() {
		want := New(shapeTripod...).RotateXY(tr.XY).RotateXZ(tr.XZ).RotateYZ(tr.YZ)
		got := New(shapeTripod...).Rotate(RotationOf(tr))
		if !got.EqualsExact(want) {
			t.Errorf("%v: matrix rotation differs from tick sequence", tr)
		}
	}
}

func TestOrientationCounts(t *testing.T) {
	tests := []struct {
		name  string
		shape []Voxel
		want  int
	}{
		{"I", shapeI, 3},
		{"O", shapeO, 3},
		{"L", shapeL, 24},
		{"T", shapeT, 12},
		{"N", shapeN, 12},
		{"TowerL", shapeTowerL, 12},
		{"TowerR", shapeTowerR, 12},
		{"Tripod", shapeTripod, 8},
		{"unit", []Voxel{{}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(New(tt.shape...).Orientations()); got != tt.want {
				t.Errorf("orientations = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOrientationsNormalized(t *testing.T) {
	for _, o := range New(shapeL...).Orientations() {
		bb, err := o.BoundingBox()
		if err != nil {
			t.Fatal(err)
		}
		if bb.XMin != 0 || bb.YMin != 0 || bb.ZMin != 0 {
			t.Errorf("orientation not at origin: %+v", bb)
		}
	}
}

func TestNormalize(t *testing.T) {
	b := New(shapeTowerL...).Translate(3, -4, 5).Normalize()
	want := New(Voxel{1, 0, 0}, Voxel{0, 0, 0}, Voxel{1, 1, 0}, Voxel{0, 0, 1})
	if !b.EqualsExact(want) {
		t.Errorf("normalized = %v", b.Voxels())
	}
	if !New().Normalize().IsEmpty() {
		t.Error("normalizing an empty block should leave it empty")
	}
}
