package state

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// newLocalEnv creates environment usable before configuration is loaded:
// logging is discarded and output goes to the process stdout.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		Log:    zap.NewNop(),
		Stdout: os.Stdout,
		start:  time.Now(),
	}
}
