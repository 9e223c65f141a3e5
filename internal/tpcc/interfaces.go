package tpcc

// Clock is the timestamp collaborator described in spec.md §6. Now
// must return a string of exactly DateTimeSize bytes; the core never
// interprets the contents, only compares for equality/presence.
type Clock interface {
	Now() string
}

// RNG is the parameter/data-generation collaborator described in
// spec.md §6. It lives entirely outside the core: the core never calls
// it directly, but the load generator and workload driver (both
// outside the core, per §1) use it to produce the values that flow
// into the transaction procedures below.
type RNG interface {
	// Intn returns a uniform random int in [lo, hi].
	Intn(lo, hi int) int
	// NURand returns a non-uniform random int in [lo, hi] per TPC-C
	// §2.1.6, with the given "A" constant; the "C" constant is chosen
	// by the implementation.
	NURand(a, lo, hi int) int
	// AString returns a random string of random length in
	// [minLen, maxLen] over the TPC-C alphanumeric alphabet.
	AString(minLen, maxLen int) string
	// NString returns a random numeric string of exactly length len.
	NString(length int) string
	// Original reports true with the biased probability TPC-C
	// prescribes for "this s_data/i_data should contain ORIGINAL".
	Original() bool
}
