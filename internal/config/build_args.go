package config

import "fmt"

// Build arguments, overridden via -ldflags at build time.
var (
	ModuleName = "github/chapool/solana-service"
	Commit     = "< 40 chars git commit hash via ldflags >"
	BuildDate  = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns "ModuleName @ Commit (BuildDate)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
