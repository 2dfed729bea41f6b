package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatePreservesNorm(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		p := V3(rng.Float64()*400-200, rng.Float64()*400-200, rng.Float64()*400-200)
		pitch := rng.Float64()*40 - 20
		yaw := rng.Float64()*40 - 20
		got := Rotate(p, pitch, yaw)
		require.InDelta(t, Len(p), Len(got), 1e-9, "point %v pitch %v yaw %v", p, pitch, yaw)
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	p := V3(3, -4, 5)
	if got := Rotate(p, 0, 0); got != p {
		t.Fatalf("Rotate(p, 0, 0) = %v, want %v", got, p)
	}
}

func TestRotateQuarterTurns(t *testing.T) {
	// Pitch a quarter turn: +Y goes to +Z.
	got := Rotate(V3(0, 1, 0), math.Pi/2, 0)
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 0, got.Y, 1e-12)
	assert.InDelta(t, 1, got.Z, 1e-12)

	// Yaw a quarter turn: +Z goes to +X.
	got = Rotate(V3(0, 0, 1), 0, math.Pi/2)
	assert.InDelta(t, 1, got.X, 1e-12)
	assert.InDelta(t, 0, got.Y, 1e-12)
	assert.InDelta(t, 0, got.Z, 1e-12)
}

func TestRotateAllMatchesRotate(t *testing.T) {
	src := []Vec3{V3(1, 2, 3), V3(-4, 0, 9), V3(0, 0, 0)}
	dst := RotateAll(nil, src, 0.7, -1.3)
	require.Len(t, dst, len(src))
	for i, p := range src {
		want := Rotate(p, 0.7, -1.3)
		assert.InDelta(t, want.X, dst[i].X, 1e-12)
		assert.InDelta(t, want.Y, dst[i].Y, 1e-12)
		assert.InDelta(t, want.Z, dst[i].Z, 1e-12)
	}

	reused := RotateAll(dst, src[:2], 0, 0)
	if &reused[0] != &dst[0] {
		t.Fatalf("RotateAll() reallocated a large enough dst")
	}
}

func TestProjectOriginIsCenter(t *testing.T) {
	pr := Projector{Focal: 300, CX: 320, CY: 240}
	for _, a := range []float64{0, 0.4, 2, -7, 123.4} {
		p := pr.Project(Rotate(Vec3{}, a, a*1.7))
		if p.X != 320 || p.Y != 240 {
			t.Fatalf("Project(origin) at angle %v = (%v, %v), want (320, 240)", a, p.X, p.Y)
		}
	}
}

func TestProjectUnitDepth(t *testing.T) {
	pr := Projector{Focal: 300, CX: 320, CY: 240}
	p := pr.Project(Rotate(V3(100, 0, 0), 0, 0))
	if p.X != 420 || p.Y != 240 {
		t.Fatalf("Project(100,0,0) = (%v, %v), want (420, 240)", p.X, p.Y)
	}
	if p.Scale != 1 {
		t.Fatalf("Project(100,0,0).Scale = %v, want 1", p.Scale)
	}
}

func TestProjectZoom(t *testing.T) {
	pr := Projector{Focal: 300, CX: 0, CY: 0, Zoom: 1.5}
	p := pr.Project(V3(100, -20, 0))
	assert.InDelta(t, 150, p.X, 1e-12)
	assert.InDelta(t, -30, p.Y, 1e-12)
}

func TestScaleMonotonicInDepth(t *testing.T) {
	const focal = 250
	prev := ScaleAt(focal, -200)
	for z := -199.0; z <= 2000; z += 0.5 {
		s := ScaleAt(focal, z)
		if !(s < prev) {
			t.Fatalf("ScaleAt(%v) = %v, not below ScaleAt(%v) = %v", z, s, z-0.5, prev)
		}
		prev = s
	}
}

func TestEaseConverges(t *testing.T) {
	for _, tc := range []struct {
		current, target, k float64
	}{
		{0, 1, 0.08},
		{10, -3, 0.5},
		{-2, 7.25, 0.01},
	} {
		cur := tc.current
		below := cur < tc.target
		n := 0
		for !Converged(cur, tc.target, 1e-6) {
			cur = Ease(cur, tc.target, tc.k)
			if below && cur > tc.target || !below && cur < tc.target {
				t.Fatalf("Ease(%v -> %v, k=%v) overshot to %v", tc.current, tc.target, tc.k, cur)
			}
			n++
			if n > 100000 {
				t.Fatalf("Ease(%v -> %v, k=%v) did not converge", tc.current, tc.target, tc.k)
			}
		}
	}
}
