package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GaelEmiliano/edd/hashing"
)

func TestXOR(t *testing.T) {
	require.Equal(t, uint32(0), hashing.XOR(nil))
	require.Equal(t, uint32(0x12345678), hashing.XOR([]byte{0x12, 0x34, 0x56, 0x78}))
	// The tail pads with zeros at the low end.
	require.Equal(t, uint32(0x61000000), hashing.XOR([]byte("a")))
	require.Equal(t, uint32(0x61626364), hashing.XOR([]byte("abcd")))
	require.Equal(t, uint32(0x61626364^0x65000000), hashing.XOR([]byte("abcde")))
	// Two identical chunks cancel out.
	require.Equal(t, uint32(0), hashing.XOR([]byte("abcdabcd")))
}

func TestDJB(t *testing.T) {
	require.Equal(t, uint32(5381), hashing.DJB(nil))
	require.Equal(t, uint32(5381*33+'a'), hashing.DJB([]byte("a")))
	require.Equal(t, uint32((5381*33+'a')*33+'b'), hashing.DJB([]byte("ab")))
}

func TestJenkinsDeterministic(t *testing.T) {
	key := []byte("the quick brown fox jumps over the lazy dog")
	require.Equal(t, hashing.Jenkins(key), hashing.Jenkins(key))
}

func TestJenkinsSensitivity(t *testing.T) {
	// Every tail length down from a full block must hash differently:
	// the switch folds each remaining byte into a distinct lane slot.
	seen := map[uint32][]byte{}
	key := []byte("abcdefghijklmnopqrstuvwx")
	for l := 0; l <= len(key); l++ {
		h := hashing.Jenkins(key[:l])
		if prev, dup := seen[h]; dup {
			t.Fatalf("collision between %q and %q", prev, key[:l])
		}
		seen[h] = key[:l]
	}
}

func TestHashesSpread(t *testing.T) {
	// Sequential keys should not collapse onto a handful of values for
	// any of the three functions.
	fns := map[string]func([]byte) uint32{
		"xor":     hashing.XOR,
		"jenkins": hashing.Jenkins,
		"djb":     hashing.DJB,
	}
	for name, fn := range fns {
		seen := map[uint32]bool{}
		for i := 0; i < 256; i++ {
			seen[fn([]byte{byte(i), byte(i >> 4), 'k'})] = true
		}
		if len(seen) < 200 {
			t.Fatalf("%s: only %d distinct hashes over 256 keys", name, len(seen))
		}
	}
}
