package descriptor

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// GenerateFileName produces a file name for a new descriptor: an 8-digit
// pseudo-random identifier plus the .keyclsound extension, e.g.
// "04829173.keyclsound".
//
// The name is generated without consulting existing files, so collisions
// are possible (roughly 1 in 10^8 per pair). Callers that write descriptors
// should create the file exclusively and retry with a fresh name on
// collision, or use GenerateUUIDFileName instead.
func GenerateFileName() string {
	return fmt.Sprintf("%08d%s", rand.N(100000000), Extension)
}

// GenerateUUIDFileName produces a descriptor file name backed by a random
// UUID, e.g. "7d444840-9dc0-11d1-b245-5ffdce74fad2.keyclsound".
//
// This is the hardened alternative to GenerateFileName for callers that
// want collision-free names at the cost of the original short format.
func GenerateUUIDFileName() string {
	return uuid.NewString() + Extension
}
