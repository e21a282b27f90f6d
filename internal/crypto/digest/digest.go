package digest

import (
	"crypto/sha256"
	"hash"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

// Size is the digest length in bytes shared by every registered function.
const Size = 32

// Default is the digest used when none is configured.
const Default = "sha256"

var registry = map[string]xsig.HashFunc{
	"sha256":   sha256.New,
	"sha3-256": sha3.New256,
	"blake2b-256": func() hash.Hash {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Lookup returns the digest registered under name. Names are case
// insensitive; the empty name selects Default.
func Lookup(name string) (xsig.HashFunc, error) {
	if name == "" {
		name = Default
	}
	h, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown digest %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return h, nil
}

// Names lists the registered digests in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sum hashes msg with h.
func Sum(h xsig.HashFunc, msg []byte) []byte {
	d := h()
	d.Write(msg)
	return d.Sum(nil)
}
