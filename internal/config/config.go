package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// minHashIterations is the lowest PBKDF2 iteration count the service
// will run with. Anything below it makes stored hashes too cheap to
// brute force.
const minHashIterations = 100_000

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBPath         string // path to the SQLite database file
	JWTSecret      string // secret used to sign session JWTs
	SessionTTLMin  int    // session token time-to-live in minutes
	HashIterations int    // PBKDF2 iteration count for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:            must("APP_ENV"),              // environment (dev/test/prod)
		Port:           must("APP_PORT"),             // port to bind the HTTP server
		DBPath:         must("DB_PATH"),              // SQLite database file
		JWTSecret:      must("JWT_SECRET"),           // secret used for signing JWTs
		SessionTTLMin:  mustInt("SESSION_TTL_MIN"),   // TTL for session tokens in minutes
		HashIterations: mustInt("PBKDF2_ITERATIONS"), // password hashing work factor
	}
	if cfg.HashIterations < minHashIterations {
		log.Fatalf("PBKDF2_ITERATIONS must be at least %d, got %d", minHashIterations, cfg.HashIterations)
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
