// Package hashing provides the byte-slice hash functions used to
// disperse keys over buckets: XOR folding, Bob Jenkins' lookup2 and
// Daniel Bernstein's multiplicative hash.
package hashing

// XOR folds the key four big-endian bytes at a time, combining the
// chunks by exclusive or. Missing tail bytes count as zero.
func XOR(key []byte) uint32 {
	var h uint32
	for i := 0; i < len(key); i += 4 {
		h ^= chunk(key, i)
	}
	return h
}

func chunk(key []byte, i int) uint32 {
	var c uint32
	for j := 0; j < 4; j++ {
		c <<= 8
		if i+j < len(key) {
			c |= uint32(key[i+j])
		}
	}
	return c
}

// Jenkins is Bob Jenkins' lookup2 hash: 12-byte little-endian blocks
// folded into three lanes that are mixed between blocks, with the key
// length stirred into the tail.
func Jenkins(key []byte) uint32 {
	a := uint32(0x9e3779b9)
	b := uint32(0x9e3779b9)
	c := uint32(0xffffffff)

	i, l := 0, len(key)
	for l >= 12 {
		a += lane(key, i)
		b += lane(key, i+4)
		c += lane(key, i+8)
		a, b, c = mix(a, b, c)
		i += 12
		l -= 12
	}

	c += uint32(len(key))
	switch l {
	case 11:
		c += uint32(key[i+10]) << 24
		fallthrough
	case 10:
		c += uint32(key[i+9]) << 16
		fallthrough
	case 9:
		c += uint32(key[i+8]) << 8
		fallthrough
	case 8:
		b += uint32(key[i+7]) << 24
		fallthrough
	case 7:
		b += uint32(key[i+6]) << 16
		fallthrough
	case 6:
		b += uint32(key[i+5]) << 8
		fallthrough
	case 5:
		b += uint32(key[i+4])
		fallthrough
	case 4:
		a += uint32(key[i+3]) << 24
		fallthrough
	case 3:
		a += uint32(key[i+2]) << 16
		fallthrough
	case 2:
		a += uint32(key[i+1]) << 8
		fallthrough
	case 1:
		a += uint32(key[i])
	}
	_, _, c = mix(a, b, c)
	return c
}

func lane(key []byte, i int) uint32 {
	return uint32(key[i]) |
		uint32(key[i+1])<<8 |
		uint32(key[i+2])<<16 |
		uint32(key[i+3])<<24
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a = (a - b - c) ^ (c >> 13)
	b = (b - c - a) ^ (a << 8)
	c = (c - a - b) ^ (b >> 13)
	a = (a - b - c) ^ (c >> 12)
	b = (b - c - a) ^ (a << 16)
	c = (c - a - b) ^ (b >> 5)
	a = (a - b - c) ^ (c >> 3)
	b = (b - c - a) ^ (a << 10)
	c = (c - a - b) ^ (b >> 15)
	return a, b, c
}

// DJB is Daniel Bernstein's hash: h = h*33 + byte over an initial 5381.
func DJB(key []byte) uint32 {
	h := uint32(5381)
	for _, k := range key {
		h = h*33 + uint32(k)
	}
	return h
}
