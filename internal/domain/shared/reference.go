package shared

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// maxReferenceSuffix bounds the random suffix to 5 base36 digits.
var maxReferenceSuffix = big.NewInt(36 * 36 * 36 * 36 * 36)

// GenerateReferenceCode builds a reference code of the form
// PREFIX-<timestamp>-<random>, where both parts are base36 and uppercased,
// e.g. ORD-MF2K81XQ-A4T9. Codes are unique in practice; persistence-level
// uniqueness constraints are the backstop for the rare collision.
func GenerateReferenceCode(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	n, err := rand.Int(rand.Reader, maxReferenceSuffix)
	var suffix string
	if err != nil {
		suffix = strconv.FormatInt(time.Now().UnixNano()%maxReferenceSuffix.Int64(), 36)
	} else {
		suffix = n.Text(36)
	}

	return strings.ToUpper(prefix + "-" + ts + "-" + suffix)
}
