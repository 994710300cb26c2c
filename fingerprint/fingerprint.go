package fingerprint

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/katalvlaran/taktgrid/schedule"
)

// ErrHashFormat indicates a fingerprint string is not 64 hex characters.
var ErrHashFormat = errors.New("fingerprint: hash must be 64 hexadecimal characters")

// Hash is a 32-byte keyed BLAKE3 digest of a canonically encoded result.
type Hash [32]byte

// resultDomainKey is the BLAKE3 key for schedule-result fingerprints.
// The bytes are the ASCII domain name zero-padded to 32 — readable in
// hex dumps, opaque to the hash. Changing it invalidates every stored
// fingerprint.
var resultDomainKey = [32]byte{
	't', 'a', 'k', 't', 'g', 'r', 'i', 'd', '.', 's', 'c', 'h', 'e', 'd', 'u', 'l',
	'e', '.', 'r', 'e', 's', 'u', 'l', 't', 0, 0, 0, 0, 0, 0, 0, 0,
}

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2), so the same logical result always produces
// identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("fingerprint: CBOR encoder initialization failed: " + err.Error())
	}
}

// Result fingerprints a computed schedule: canonical CBOR bytes hashed
// with keyed BLAKE3 under the schedule-result domain key. Equal results
// always produce equal hashes; any field change produces a different one.
// Complexity: O(encoded size).
func Result(res *schedule.Result) (Hash, error) {
	if res == nil {
		return Hash{}, errors.New("fingerprint: result is nil")
	}
	raw, err := encMode.Marshal(res)
	if err != nil {
		return Hash{}, fmt.Errorf("fingerprint: encode result: %w", err)
	}

	hasher, err := blake3.NewKeyed(resultDomainKey[:])
	if err != nil {
		return Hash{}, fmt.Errorf("fingerprint: BLAKE3 init: %w", err)
	}
	_, _ = hasher.Write(raw) // Hasher.Write never fails

	var h Hash
	copy(h[:], hasher.Sum(nil))

	return h, nil
}

// String renders the hash as 64 lowercase hex characters.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Parse decodes a 64-character hex fingerprint back into a Hash.
// Returns ErrHashFormat (wrapped) on malformed input.
func Parse(s string) (Hash, error) {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(Hash{}) {
		return Hash{}, fmt.Errorf("%w: got %q", ErrHashFormat, s)
	}

	var h Hash
	copy(h[:], raw)

	return h, nil
}
