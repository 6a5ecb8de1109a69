package format

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/url"
	"sync"
	"time"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultIDLength is the length GenerateID uses for non-positive input.
const DefaultIDLength = 8

// GenerateID returns a random alphanumeric string of the given length.
func GenerateID(length int) string {
	if length <= 0 {
		length = DefaultIDLength
	}

	max := big.NewInt(int64(len(idAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b)
}

// IsValidURL reports whether raw parses as an absolute URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

// DeepClone returns a copy of v made by a JSON round trip. Only exported,
// JSON-representable fields survive.
func DeepClone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(data, &out)
	return out, err
}

// Debounce returns call, which runs fn once wait has elapsed without
// another call, and cancel, which drops any pending run.
func Debounce(fn func(), wait time.Duration) (call func(), cancel func()) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)

	call = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return call, cancel
}
