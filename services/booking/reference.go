package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newReference builds a payment reference from a timestamp plus a random
// token. It is generated locally, never supplied by the caller, and the
// unique index on the payment store guarantees global uniqueness.
func newReference() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("SWIM-%d-%s", time.Now().Unix(), token)
}
