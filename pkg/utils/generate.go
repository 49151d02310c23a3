package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// ==================== SESSION TOKEN ====================

func GenerateSessionToken() string {
	return uuid.NewString()
}

// ==================== BOOKING REFERENCE ====================

// ReferenceAlphabet has 32 symbols; 0, O, 1 and I are left out so references
// can be read over the phone.
const ReferenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const referenceRandomLength = 5

// GenerateBookingReference returns TE-<year>-<5 random symbols>.
func GenerateBookingReference(now time.Time) (string, error) {
	buf := make([]byte, referenceRandomLength)
	max := big.NewInt(int64(len(ReferenceAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate booking reference: %w", err)
		}
		buf[i] = ReferenceAlphabet[n.Int64()]
	}

	return fmt.Sprintf("TE-%d-%s", now.Year(), buf), nil
}
