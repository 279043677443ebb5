// Package workspace allocates temporary staging paths for repository clones.
package workspace

import (
	"math/rand/v2"
	"os"
	"path/filepath"
)

const (
	prefix   = "contemplate-"
	tokenLen = 7
	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Allocate returns a staging path under the system temporary directory with
// a random 7-character alphanumeric token. The directory is not created;
// the fetch engine creates it as part of cloning. Collision avoidance is
// probabilistic only — there is no retry on collision.
func Allocate() string {
	token := make([]byte, tokenLen)
	for i := range token {
		token[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return filepath.Join(os.TempDir(), prefix+string(token))
}
