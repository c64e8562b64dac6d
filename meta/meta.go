// meta/meta.go
package meta

import "time"

// DECKS defines the number of decks in a fresh shoe.
const DECKS = 6

// TARGET defines the total the count-driven policy stands on.
const TARGET = 16

// SESSIONS defines the number of shoe sessions simulated per strategy.
const SESSIONS = 1000

// WINDOW defines the trailing rounds of each session that are scored.
const WINDOW = 10

// MIN_DEPTH defines the fewest cards left in a shoe for another round to start.
const MIN_DEPTH = 12

// OUT_DIR defines where result files are written.
const OUT_DIR = "results"

// STORE_TIMEOUT bounds how long a database write may take.
const STORE_TIMEOUT = 30 * time.Second
