package taghelpers

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
)

// hasher accumulates an ordered structural hash
type hasher struct {
	digest *xxhash.Digest
	buf    [8]byte
}

func newHasher() *hasher {
	return &hasher{digest: xxhash.New()}
}

func (h *hasher) addString(s string) {
	h.addInt(len(s))
	_, _ = h.digest.WriteString(s)
}

func (h *hasher) addInt(i int) {
	h.addUint64(uint64(i))
}

func (h *hasher) addBool(b bool) {
	if b {
		h.addUint64(1)
	} else {
		h.addUint64(0)
	}
}

func (h *hasher) addUint64(u uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], u)
	_, _ = h.digest.Write(h.buf[:])
}

func (h *hasher) sum() uint64 {
	return h.digest.Sum64()
}

// unorderedHash combines element hashes commutatively so that insertion order does
// not affect the result
func unorderedHash[T any](items []T, hash func(T) uint64) uint64 {
	var sum, xor uint64
	for _, item := range items {
		v := hash(item)
		sum += v
		xor ^= v * 0x9e3779b97f4a7c15
	}
	h := newHasher()
	h.addInt(len(items))
	h.addUint64(sum)
	h.addUint64(xor)
	return h.sum()
}

// multisetEqual reports whether a and b hold the same elements with the same
// multiplicities under eq, ignoring order. eq must be an equivalence relation.
func multisetEqual[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && eq(x, y) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

func diagnosticsEqual(a, b diagnostics.List) bool {
	return multisetEqual(a, b, func(x, y diagnostics.Diagnostic) bool {
		return x.Equal(y)
	})
}

func diagnosticsHash(list diagnostics.List) uint64 {
	return unorderedHash(list, hashDiagnostic)
}

func hashDiagnostic(d diagnostics.Diagnostic) uint64 {
	h := newHasher()
	h.addString(d.ID())
	h.addInt(int(d.Severity()))
	for _, arg := range d.Args() {
		h.addString(arg)
	}
	span := d.Span()
	h.addString(span.FilePath())
	if span != nil && span.Start != nil {
		h.addInt(span.Start.Offset)
	}
	return h.sum()
}

func metadataEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		other, ok := b[k]
		if !ok || other != v {
			return false
		}
	}
	return true
}

func metadataHash(m map[string]string) uint64 {
	pairs := make([][2]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, [2]string{k, v})
	}
	return unorderedHash(pairs, func(p [2]string) uint64 {
		h := newHasher()
		h.addString(p[0])
		h.addString(p[1])
		return h.sum()
	})
}
