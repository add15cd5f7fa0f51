package query

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainQuery prefixes query identity hashes. The version suffix allows
// the text form to change without colliding with old IDs.
const DomainQuery = "ctsq/query/v1"

// ID computes the content-addressed identity of q.
// Format: hex(SHA256(domain + 0x00 + q.String()))
//
// Two queries have the same ID exactly when they have the same text, so
// private params do not contribute.
func ID(q Query) string {
	return hashWithDomain(DomainQuery, []byte(q.String()))
}

func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
