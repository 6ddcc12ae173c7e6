package journal

// Mutate loads k, applies fn and saves the result in one step. When fn
// returns an error nothing is written. The returned value reflects fn's
// change even if the write was dropped.
func Mutate[T any](j *Journal, k Key[T], fn func(T) (T, error)) (T, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	cur := load(j, k)
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	_ = save(j, k, next)
	return next, nil
}

// MutateErr is Mutate for callers that need to know the result reached
// storage. A dropped write is returned after the new value.
func MutateErr[T any](j *Journal, k Key[T], fn func(T) (T, error)) (T, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	cur := load(j, k)
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	return next, save(j, k, next)
}

// Append adds e to the end of the log stored under k. Entries are never
// rewritten once appended.
func Append[E any](j *Journal, k Key[[]E], e E) []E {
	out, _ := Mutate(j, k, func(log []E) ([]E, error) {
		return append(log, e), nil
	})
	return out
}

// Recent returns the last n entries of log, or all of it when n <= 0 or the
// log is shorter than n.
func Recent[E any](log []E, n int) []E {
	if n <= 0 || len(log) <= n {
		return log
	}
	return log[len(log)-n:]
}

// Retention bounds an append-only log. The zero value keeps everything.
type Retention struct {
	MaxEntries int
}

// Compact drops the oldest entries of the log under k beyond r.MaxEntries and
// reports how many were removed. Logs are only compacted on request.
func Compact[E any](j *Journal, k Key[[]E], r Retention) (int, error) {
	if r.MaxEntries <= 0 {
		return 0, nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	log := load(j, k)
	if len(log) <= r.MaxEntries {
		return 0, nil
	}
	kept := make([]E, r.MaxEntries)
	copy(kept, Recent(log, r.MaxEntries))
	if err := save(j, k, kept); err != nil {
		return 0, err
	}
	return len(log) - len(kept), nil
}
