package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
)

// Source is the randomness provider for dice rolls.
//
// Implementations used from several goroutines must be safe for concurrent use;
// all sources in this package are.
type Source interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// SeededSource is a deterministic Source: the same seed yields the same faces.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a SeededSource for seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// CryptoSource draws uniform values from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("dice: read crypto random: %v", err))
	}
	return int(v.Int64())
}

// SequenceSource replays scripted die faces, one per draw, in order.
// Faces are 1-based like the dice they stand for and are clamped to [1, n].
// Once drained it always rolls 1.
type SequenceSource struct {
	mu    sync.Mutex
	faces []int
}

// NewSequenceSource returns a SequenceSource yielding faces in order.
func NewSequenceSource(faces ...int) *SequenceSource {
	return &SequenceSource{faces: append([]int(nil), faces...)}
}

func (s *SequenceSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.faces) == 0 {
		return 0
	}
	face := s.faces[0]
	s.faces = s.faces[1:]
	switch {
	case face < 1:
		face = 1
	case face > n:
		face = n
	}
	return face - 1
}

// Remaining reports how many scripted faces have not been drawn yet.
func (s *SequenceSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.faces)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
