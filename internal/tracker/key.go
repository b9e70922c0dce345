package tracker

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

type Bucket string

const (
	// BucketMinute formats as YYYYMMDDHHMM00.
	BucketMinute Bucket = "minute"
	// BucketHour formats as YYYYMMDDHH.
	BucketHour Bucket = "hour"
)

func ParseBucket(s string) (Bucket, error) {
	switch b := Bucket(s); b {
	case BucketMinute, BucketHour:
		return b, nil
	default:
		return "", fmt.Errorf("tracker: unknown key bucket %q", s)
	}
}

func TimeBucket(t time.Time, b Bucket) string {
	t = t.UTC()
	if b == BucketHour {
		return t.Format("2006010215")
	}
	return t.Truncate(time.Minute).Format("20060102150405")
}

// Key is md5(secret + timeBucket) in hex.
func Key(secret, timeBucket string) string {
	sum := md5.Sum([]byte(secret + timeBucket))
	return hex.EncodeToString(sum[:])
}

func SecretFromEnv(name string) func() (string, error) {
	return func() (string, error) {
		v := os.Getenv(name)
		if v == "" {
			return "", fmt.Errorf("%w: %s is empty", ErrMissingSecret, name)
		}
		return v, nil
	}
}
