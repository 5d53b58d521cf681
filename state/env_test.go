package state

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func TestContextWithEnv(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Log == nil {
		t.Error("Logger must be usable before configuration is loaded")
	}
	if env.Stdout != os.Stdout {
		t.Error("Stdout must default to os.Stdout")
	}
	if env.Cfg != nil || env.Rpt != nil {
		t.Error("Configuration and report must not be set")
	}
}

func TestEnvFromContext_Shared(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	log := zaptest.NewLogger(t)
	EnvFromContext(ctx).Log = log

	// values stored by one stage are visible to the next one
	if EnvFromContext(ctx).Log != log {
		t.Error("environment is not shared")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if uptime := env.Uptime(); uptime < time.Second {
		t.Errorf("Uptime() = %v, expected at least 1s", uptime)
	}
}

func TestLocalEnv_StdLog(t *testing.T) {
	var messages []string
	env := &LocalEnv{
		Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.Hooks(func(e zapcore.Entry) error {
			messages = append(messages, e.Message)
			return nil
		}))),
	}

	for i := range 2 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Fatalf("iteration %d: restoreStdLog not set", i)
		}
		log.Print("from standard logger")
		env.RestoreStdLog()
		if env.restoreStdLog != nil {
			t.Errorf("iteration %d: restoreStdLog not cleared", i)
		}
	}
	if len(messages) != 2 || messages[0] != "from standard logger" {
		t.Errorf("messages = %q", messages)
	}

	// nothing to redirect to, nothing to restore
	env = &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil")
	}
	env.RestoreStdLog()
}
