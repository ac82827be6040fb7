package scanner

// Interner implements string interning to reduce memory usage.
//
// Lox programs repeat the same small set of strings constantly:
// identifier names, and string literals used as keys or messages.
// By maintaining a pool of canonical strings, all occurrences share
// one instance instead of allocating per token.
type Interner struct {
	pool map[string]string
}

// NewInterner creates a new string interner with the given initial capacity.
func NewInterner(capacity int) *Interner {
	return &Interner{
		pool: make(map[string]string, capacity),
	}
}

// Intern returns the canonical version of the string.
// If the string is already in the pool, returns the existing instance.
// Otherwise, adds it to the pool and returns it.
func (i *Interner) Intern(s string) string {
	if interned, ok := i.pool[s]; ok {
		return interned
	}
	i.pool[s] = s
	return s
}

// InternBytes converts a byte slice to a string and interns it.
// This is the common case when decoding literal values during scanning.
func (i *Interner) InternBytes(b []byte) string {
	// The temporary string for the map lookup is optimized away by the
	// compiler in the hit path.
	if interned, ok := i.pool[string(b)]; ok {
		return interned
	}
	s := string(b)
	i.pool[s] = s
	return s
}

// Size returns the number of unique strings in the intern pool.
// Useful for diagnostics and testing.
func (i *Interner) Size() int {
	return len(i.pool)
}

// Reset clears the intern pool. Typically the pool is kept across scans
// of related files to maximize sharing.
func (i *Interner) Reset() {
	i.pool = make(map[string]string)
}
