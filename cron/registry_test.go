package cron

import (
	"testing"
)

func TestRegister_Jobs(t *testing.T) {
	ran := false
	Register("reconciletest", "@every 1h", func(args ...string) {
		ran = true
	})
	defer Unregister("reconciletest")

	jobs := Jobs()
	j, ok := jobs["reconciletest"]
	if !ok {
		t.Fatal("reconciletest not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	j.Run()
	if !ran {
		t.Error("Run did not execute")
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", func(...string) {})
}
