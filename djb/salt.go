package djb

import (
	"fmt"
	"math/big"
	"math/bits"
)

// CheckSalt returns advice about salt for use with a. The hashes work with any
// salt, so these are never errors.
//
// A good salt is prime and has bits above the low eight. Bits past half the
// state width add little: they are shifted out after a few bytes of input and
// stay static for very short inputs. Primes of 16 to 32 bits suit the 64-bit
// variants, 16 to 24 bits the 32-bit ones.
func CheckSalt(a Algorithm, salt uint64) []string {
	var warnings []string

	if !new(big.Int).SetUint64(salt).ProbablyPrime(20) {
		warnings = append(warnings, fmt.Sprintf("salt %d is not prime", salt))
	}

	if salt < 1<<8 {
		warnings = append(warnings, fmt.Sprintf("salt %d only uses the low 8 bits", salt))
	}

	limit := 32
	if a.Bits() == 32 {
		limit = 24
	}
	if n := bits.Len64(salt); n > limit {
		warnings = append(warnings, fmt.Sprintf("salt %d uses %d bits; more than %d adds little for %s", salt, n, limit, a))
	}

	return warnings
}
