package darkstar

// Blocklist is a set of ids hidden from non-admin viewers.
type Blocklist map[int64]struct{}

func NewBlocklist(ids []int) Blocklist {
	b := make(Blocklist, len(ids))
	for _, id := range ids {
		b[int64(id)] = struct{}{}
	}
	return b
}

func (b Blocklist) Contains(id int64) bool {
	_, ok := b[id]
	return ok
}

// Policy carries the per-domain blocklists.
type Policy struct {
	Characters Blocklist
	Monsters   Blocklist
	Bcnms      Blocklist
}

// Name flag bits of char_stats.nameflags.
const (
	flagAnonymous = 0x00001000
)

// gmFlags are the GM-visible name flag values, tested in order.
var gmFlags = [...]int64{0x00010000, 0x04000000, 0x05000000, 0x06000000, 0x07000000}

// HasGMFlag reports whether the name flags show the GM icon. Each value
// is tested as an exact bit mask, so the multi-bit values also match
// when a lower flag shares their bits.
func HasGMFlag(nameflags int64) bool {
	for _, f := range gmFlags {
		if nameflags&f == f {
			return true
		}
	}
	return false
}

func isAnonymous(nameflags int64) bool {
	return nameflags&flagAnonymous == flagAnonymous
}
