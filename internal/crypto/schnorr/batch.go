package schnorr

import (
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
)

// ErrEmptyBatch is returned when a batch contains no messages.
var ErrEmptyBatch = errors.New("schnorr: empty batch")

// SignBatch signs every message with privateKey. Each signature gets its own
// ephemeral scalar; the first failure aborts the batch.
func (s *Signer) SignBatch(privateKey *big.Int, messages [][]byte) ([]*Signature, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyBatch
	}

	sigs := make([]*Signature, 0, len(messages))
	for i, msg := range messages {
		sig, err := s.Sign(privateKey, msg)
		if err != nil {
			return nil, errors.WithMessagef(err, "signing message %d", i)
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

// VerifyBatch checks sigs[i] against messages[i] and returns the indexes of
// the signatures that failed. Mismatched lengths fail every index.
func (s *Signer) VerifyBatch(publicKey curves.Point, sigs []*Signature, messages [][]byte) []int {
	n := len(messages)
	if len(sigs) > n {
		n = len(sigs)
	}

	var failed []int
	for i := 0; i < n; i++ {
		if len(sigs) != len(messages) || !s.Verify(publicKey, sigs[i], messages[i]) {
			failed = append(failed, i)
		}
	}
	if len(failed) > 0 {
		s.logger.Debug("batch verification failed", zap.Int("total", n), zap.Ints("failed", failed))
	}
	return failed
}
