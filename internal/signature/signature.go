package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSHA256 signs the input string with the given secret and returns a hex
// string. The Graph API calls this value an appsecret_proof when the input is
// an access token and the secret is the app secret.
func HMACSHA256(data, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
