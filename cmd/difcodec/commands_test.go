package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	"sutext.github.io/difio/dif"
	"sutext.github.io/difio/xerr"
)

func writeFollower(t *testing.T, extra ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "follower.bin")
	pf := &dif.PathFollower{
		Name:       "lift",
		Datablock:  "PathedDefault",
		Properties: dif.Dictionary{{Name: "speed", Value: "2"}},
		TriggerIDs: []uint32{1},
		WayPoints:  []dif.WayPoint{{MSToNext: 100}, {MSToNext: 200}},
		TotalMS:    300,
	}
	if err := dif.Save(path, pf); err != nil {
		t.Fatal(err)
	}
	if len(extra) > 0 {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if _, err := f.Write(extra); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

func TestVerify(t *testing.T) {
	if err := verify(writeFollower(t)); err != nil {
		t.Errorf("verify failed: %v", err)
	}
	if err := verify(writeFollower(t, 0xff)); err != nil {
		t.Errorf("lenient verify failed on trailing data: %v", err)
	}
	path := writeFollower(t)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)-2], 0o644); err != nil {
		t.Fatal(err)
	}
	if err := verify(path); !errors.Is(err, xerr.RecordLoadFailed) {
		t.Errorf("expected RecordLoadFailed, got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.bin")
	if err := verify(path); !errors.Is(err, xerr.FileNotFound) {
		t.Errorf("verify: expected FileNotFound, got %v", err)
	}
	if _, err := dif.LoadPathFollower(path); !errors.Is(err, xerr.FileNotFound) {
		t.Errorf("inspect: expected FileNotFound, got %v", err)
	}
}

func TestCommands(t *testing.T) {
	strict := writeFile(t, "config.yaml", "strict: true\n")
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"Inspect", []string{"inspect", writeFollower(t)}, 0},
		{"InspectDebugJSON", []string{"--log-level", "debug", "--json", "inspect", writeFollower(t)}, 0},
		{"Verify", []string{"verify", writeFollower(t)}, 0},
		{"VerifyStrictTrailing", []string{"--config", strict, "verify", writeFollower(t, 1)}, 1},
		{"InspectMissing", []string{"inspect", filepath.Join(t.TempDir(), "none.bin")}, 1},
		{"VerifyMissing", []string{"verify", filepath.Join(t.TempDir(), "none.bin")}, 1},
		{"BadLogLevel", []string{"--log-level", "loud", "verify", writeFollower(t)}, 1},
		{"NoArgs", []string{"verify"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Writer = &bytes.Buffer{}
			err := app.Run(append([]string{"difcodec"}, tt.args...))
			if tt.code == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := exitCode(err); got != tt.code {
				t.Errorf("exit code %d, want %d (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	if err := app.Run([]string{"difcodec", "version"}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != version {
		t.Errorf("got %q", out.String())
	}
}
