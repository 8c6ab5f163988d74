package rbx

import (
	"crypto/md5"
	"encoding/base64"
)

// checksumBase64 returns the base64-encoded MD5 digest of data. The
// DataStore service consumes it as a content-integrity check via the
// content-md5 header; it is not a cryptographic guarantee.
func checksumBase64(data []byte) string {
	sum := md5.Sum(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}
