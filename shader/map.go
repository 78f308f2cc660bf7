package shader

// PositionKey is the attribute key the vertex stage must populate with
// a Vec4 clip-space position; its presence is a post-condition of
// every vertex function.
const PositionKey = "rangle_Position"

// Map is a keyed collection of shader Values: an attribute map when it
// flows vertex-to-fragment, or a uniform map when it is process-wide
// for one draw call. Keys are unique; insertion order is irrelevant.
type Map map[string]Value

// Clone returns a shallow copy of m. Rasterizing a line or point
// primitive hands the same vertex's attribute map to more than one
// emission; Clone gives each emission its own map so that any stage
// reading it sees an independent value, mirroring the "maps are
// consumed by value" rule primitive assembly relies on.
func (m Map) Clone() Map {
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Position returns the Vec4 stored under PositionKey. It panics if the
// key is absent or not a Vec4 — the vertex stage failed its
// post-condition, which is a fatal programmer error.
func (m Map) Position() Value {
	v, ok := m[PositionKey]
	if !ok {
		panic("shader: attribute map is missing " + PositionKey + " after the vertex stage")
	}
	if v.Kind() != Vec4 {
		panic("shader: " + PositionKey + " must be a Vec4, got " + v.Kind().String())
	}
	return v
}

// sameKeyset reports whether a and b contain exactly the same keys.
func sameKeyset(a, b Map) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Lerp linearly interpolates every key in a and b: a*(1-k) + b*k. Both
// maps must share the same keyset and, per key, the same Value kind;
// only Vec3 and Vec4 are supported, matching the rasterizer's line
// interpolation. Violating either requirement is a fatal programmer
// error; a kind mismatch or unsupported kind is reported with the
// offending key, a keyset mismatch is reported without one.
func Lerp(a, b Map, k float32) Map {
	if !sameKeyset(a, b) {
		panic("shader: Lerp requires matching attribute keysets")
	}
	r := make(Map, len(a))
	for key, va := range a {
		vb := b[key]
		if va.Kind() != vb.Kind() {
			panic("shader: Lerp kind mismatch at key " + key)
		}
		switch va.Kind() {
		case Vec3, Vec4:
			r[key] = va.Scale(1 - k).Add(vb.Scale(k))
		default:
			panic("shader: Lerp unsupported kind at key " + key + ": " + va.Kind().String())
		}
	}
	return r
}

// Barycentric interpolates every key present in all three maps as
// a*va + b*vb + c*vc. Same keyset/kind requirements as Lerp.
func Barycentric(a, bc, c float32, va, vb, vc Map) Map {
	if !sameKeyset(va, vb) || !sameKeyset(va, vc) {
		panic("shader: Barycentric requires matching attribute keysets")
	}
	r := make(Map, len(va))
	for key, x := range va {
		y, z := vb[key], vc[key]
		if x.Kind() != y.Kind() || x.Kind() != z.Kind() {
			panic("shader: Barycentric kind mismatch at key " + key)
		}
		switch x.Kind() {
		case Vec3, Vec4:
			r[key] = x.Scale(a).Add(y.Scale(bc)).Add(z.Scale(c))
		default:
			panic("shader: Barycentric unsupported kind at key " + key + ": " + x.Kind().String())
		}
	}
	return r
}
