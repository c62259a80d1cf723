package demo

import (
	"crypto/sha256"
	"fmt"

	"tb3/internal/config"
	"tb3/pkg/domain"
)

const (
	addressPrefix = "cosmos"
	// bech32 payload alphabet
	bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

// Actors holds the well-known ledger identities of the demo network.
type Actors struct {
	Admin   string
	Cloud   string
	Vehicle string
	Edge1   string
	Edge2   string
	Edge3   string
}

// NewActors takes the configured addresses and derives the missing ones from
// the demo address seed.
func NewActors(cfg *config.Config) Actors {
	pick := func(addr, label string) string {
		if addr != "" {
			return addr
		}

		return FakeAddress(label, cfg.Demo.AddressSeed)
	}

	return Actors{
		Admin:   pick(cfg.Chain.Admin, "admin"),
		Cloud:   pick(cfg.Chain.Cloud, "cloud"),
		Vehicle: pick(cfg.Chain.Vehicle, "vehicle"),
		Edge1:   pick(cfg.Chain.Edge1, "edge1"),
		Edge2:   pick(cfg.Chain.Edge2, "edge2"),
		Edge3:   pick(cfg.Chain.Edge3, "edge3"),
	}
}

// Accounts lists the actors the way GET /accounts reports them.
func (a Actors) Accounts() []domain.Account {
	return []domain.Account{
		{Name: "admin", Role: "admin", Address: a.Admin},
		{Name: "cloud", Role: "cloud", Address: a.Cloud},
		{Name: "vehicle", Role: "vehicle", Address: a.Vehicle},
		{Name: "edge1", Role: "edge", Address: a.Edge1},
		{Name: "edge2", Role: "edge", Address: a.Edge2},
		{Name: "edge3", Role: "edge", Address: a.Edge3},
	}
}

// FakeAddress returns a stable address-looking string for label. The payload
// uses the bech32 alphabet but carries no checksum.
func FakeAddress(label string, seed int64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%d:addr:%s", seed, label))

	payload := make([]byte, len(sum))
	for i, b := range sum {
		payload[i] = bech32Charset[int(b)%len(bech32Charset)]
	}

	return addressPrefix + "1" + string(payload)
}
