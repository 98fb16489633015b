// Package djb implements the family of simple string hash functions posted by
// Daniel J. Bernstein.
//
// These hashes are fast and trivially collidable. Do not use them to key maps
// that hold attacker-controlled input: they are an easy vector for
// hash-flooding denial of service. They are provided for interoperability with
// software that uses them internally (PHP's hashtable, many C libraries,
// assorted on-disk formats).
//
// # Names
//
// A name such as X33a breaks down as follows. "X33" is the multiplier stage:
// before each byte is mixed in, the running hash is multiplied by 33, which is
// computed as a shift by 5 plus the original value. The trailing "a" means the
// next byte is added; "x" means it is XORed instead. A "U32" suffix means the
// running state is 32 bits wide rather than 64. A "Php" suffix means the high
// bit of the output is always set, because PHP reserves a zero hash to mean
// "not yet computed".
//
// All variants start from the salt 5381 unless built with a custom salt. A
// salt should be prime and carry bits above the lowest eight; see CheckSalt.
//
// Every hasher implements hash.Hash and Hasher. The 64-bit variants implement
// hash.Hash64, the 32-bit variants implement hash.Hash32 and zero-extend their
// result in Sum64.
package djb
