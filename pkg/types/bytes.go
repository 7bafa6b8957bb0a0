package types

import "fmt"

// Bytes is a uint64 wrapper representing a size in bytes.
type Bytes uint64

// ToBytes converts a raw counter to Bytes.
func ToBytes(v uint64) Bytes { return Bytes(v) }

// ToUint64 returns the raw byte count.
func (b Bytes) ToUint64() uint64 { return uint64(b) }

// String returns a human-readable size with a binary unit (B, KiB .. TiB).
func (b Bytes) String() string {
	v := float64(b)
	switch {
	case b >= 1<<40:
		return fmt.Sprintf("%.2f TiB", v/(1<<40))
	case b >= 1<<30:
		return fmt.Sprintf("%.2f GiB", v/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.2f MiB", v/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.2f KiB", v/(1<<10))
	default:
		return fmt.Sprintf("%d B", uint64(b))
	}
}
