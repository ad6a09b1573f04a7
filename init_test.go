package numlit

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"testing"
	"time"
)

var (
	fuzzIterations = 10000
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	flag.IntVar(&fuzzIterations, "numlit.fuzziter", fuzzIterations, "Number of iterations for each round-trip fuzz test")
	flag.Int64Var(&fuzzSeed, "numlit.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("iterations:", fuzzIterations)

	code := m.Run()
	os.Exit(code)
}

// num parses s or dies; for tests that only make sense on valid input.
func num(s string) Number {
	n, ok, err := NumberFromString(s, "")
	if err != nil {
		panic(err)
	} else if !ok {
		panic(fmt.Errorf("numlit: not a number: %q", s))
	}
	return n
}
