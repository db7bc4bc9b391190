package polycube

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest identifying a voxel set (or, for
// [Solution.Signature], a set of voxel sets).
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing, so block hashes and
// solution signatures never collide with each other.
type domainKey [32]byte

var (
	blockDomainKey = domainKey{
		'p', 'o', 'l', 'y', 'c', 'u', 'b', 'e', '.', 'b', 'l', 'o', 'c', 'k',
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	solutionDomainKey = domainKey{
		'p', 'o', 'l', 'y', 'c', 'u', 'b', 'e', '.', 's', 'o', 'l', 'u', 't', 'i', 'o', 'n',
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

func newHasher(key domainKey) *blake3.Hasher {
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		// Only fails for keys that are not 32 bytes.
		panic("polycube: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	return h
}

func sum(h *blake3.Hasher) Hash {
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// CanonicalHash returns a digest of the block's distinct voxels that does
// not depend on insertion order or repeats. Voxels are fed in [Block.Sorted]
// order, each as three big-endian int64 values.
func (b *Block) CanonicalHash() Hash {
	h := newHasher(blockDomainKey)
	var buf [24]byte
	for _, v := range b.Sorted() {
		binary.BigEndian.PutUint64(buf[0:8], uint64(int64(v.X)))
		binary.BigEndian.PutUint64(buf[8:16], uint64(int64(v.Y)))
		binary.BigEndian.PutUint64(buf[16:24], uint64(int64(v.Z)))
		h.Write(buf[:])
	}
	return sum(h)
}

// String returns the hash as lowercase hex.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 12 hex characters, for logs and labels.
func (h Hash) Short() string {
	return h.String()[:12]
}

// IsZero reports whether h is the zero value.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

func compareHashes(a, b Hash) int {
	return bytes.Compare(a[:], b[:])
}
