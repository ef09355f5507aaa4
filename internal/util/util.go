// Package util provides small helpers shared across layers.
package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const orderNumberPrefix = "ZEE"

// NewOrderNumber builds a human-readable order identifier of the form
// ZEE-<base36 ms timestamp>-<base36 random>. The timestamp part keeps
// numbers roughly sortable by creation time; the random suffix breaks
// ties within the same millisecond.
func NewOrderNumber(now time.Time) (string, error) {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	n, err := rand.Int(rand.Reader, big.NewInt(36*36*36*36))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate order number suffix")
	}
	suffix := strings.ToUpper(strconv.FormatInt(n.Int64(), 36))
	for len(suffix) < 4 {
		suffix = "0" + suffix
	}

	return fmt.Sprintf("%s-%s-%s", orderNumberPrefix, ts, suffix), nil
}

// NewOTP returns a 6-digit numeric one-time password with leading zeros
// preserved.
func NewOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
