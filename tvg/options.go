package tvg

// Options configures a single Decode call. The zero value is usable: a
// zero MaxAllocation disables the resource ceiling. Modeled on the
// teacher's by-value options struct (glyph.ParseOptions) rather than a
// package-level global or env var, since decode calls need no persistent
// process state (§5).
type Options struct {
	// MaxAllocation bounds the total bytes a single Decode call will
	// allocate for wire-declared counts (palette entries, points,
	// thickness profile points, and similar length-prefixed repeats)
	// before giving up with ErrResourceLimit. Zero means unbounded.
	MaxAllocation int64
}

// budget tracks cumulative allocation against an Options.MaxAllocation
// ceiling across a single Decode call.
type budget struct {
	limit int64
	used  int64
}

func newBudget(opts Options) *budget {
	return &budget{limit: opts.MaxAllocation}
}

// reserve accounts for n more bytes of allocation, returning
// ErrResourceLimit if that would exceed the configured ceiling.
func (b *budget) reserve(n int64, offset int64) error {
	if b.limit <= 0 {
		return nil
	}
	b.used += n
	if b.used > b.limit {
		return newErr(ErrResourceLimit, offset, "allocation budget of %d bytes exceeded (used %d)", b.limit, b.used)
	}
	return nil
}
