package backoff

// Source draws integers uniformly from [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}
