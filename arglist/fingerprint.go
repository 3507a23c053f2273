package arglist

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of the items.
//
// Each item contributes its dynamic type and its JSON encoding, so 1,
// int64(1) and 1.0 fingerprint differently even though they encode to the
// same JSON. Two lists with the same fingerprint therefore pass the same
// arguments to a forwarded call, which makes it usable as a cache key.
func (l *List) Fingerprint() (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", errors.Wrap(err, "arglist: init digest")
	}
	for i, item := range l.items {
		b, err := json.Marshal(item)
		if err != nil {
			return "", errors.Wrapf(err, "arglist: encode item %d", i)
		}
		// length-prefixed fields keep item boundaries unambiguous
		typ := fmt.Sprintf("%T", item)
		fmt.Fprintf(h, "%d:%s%d:", len(typ), typ, len(b))
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
