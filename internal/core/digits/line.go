package digits

// Alphabet is the set of characters a digit line is drawn from.
const Alphabet = "0123456789"

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Line returns length characters, each drawn independently from Alphabet.
func Line(src Source, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[src.IntN(len(Alphabet))]
	}
	return string(b)
}
