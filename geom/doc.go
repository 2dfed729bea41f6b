// Package geom holds the small amount of 3D math shared by the scenes:
// a two-axis rotation, a perspective projection onto a 2D surface and the
// exponential easing used to smooth user-driven targets.
//
// Pipeline (fixed):
//
//	static vertex → Rotate(pitch, yaw) → Projector.Project → caller culls by depth.
//
// Everything here is a pure function of its inputs. Angles are unbounded
// accumulators; only their sine and cosine are ever taken.
package geom
