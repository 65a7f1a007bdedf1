package common

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// DefaultSecretSalt is used when STOREFRONT_SECRET_SALT is not set.
const DefaultSecretSalt = "storefront-default-salt"

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

// UUIDint64 generates a unique int64 identifier.
// Snowflake IDs are time ordered, so newer records always sort after older ones.
func UUIDint64() int64 {
	snowflakeOnce.Do(func() {
		var err error
		snowflakeNode, err = snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
	})
	return snowflakeNode.Generate().Int64()
}

// Sha256HashWithSalt returns the hex encoded SHA-256 digest of src+salt.
func Sha256HashWithSalt(src string, salt string) string {
	h := sha256.New()
	h.Write([]byte(src))
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil))
}

// GetSecretSalt reads the hash salt from the environment.
func GetSecretSalt() string {
	if v := os.Getenv("STOREFRONT_SECRET_SALT"); v != "" {
		return v
	}
	return DefaultSecretSalt
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}
