package bonds

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
	"github.com/louisbranch/playerbonds/internal/services/bonds/app"
	"github.com/louisbranch/playerbonds/internal/services/bonds/domain/bond"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("bonds", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.EditMode || cfg.Strict || cfg.Show {
		t.Fatalf("expected read-only lenient defaults, got %+v", cfg)
	}
	if cfg.PlayerID != "player" {
		t.Fatalf("player id = %q, want %q", cfg.PlayerID, "player")
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("PLAYERBONDS_EDIT_MODE", "true")
	t.Setenv("PLAYERBONDS_PLAYER_ID", "env-player")

	fs := flag.NewFlagSet("bonds", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-strict", "-changes", "changes.json"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.EditMode || !cfg.Strict {
		t.Fatalf("expected edit and strict, got %+v", cfg)
	}
	if cfg.PlayerID != "env-player" || cfg.ChangesPath != "changes.json" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestParseConfigRejectsBlankPlayer(t *testing.T) {
	fs := flag.NewFlagSet("bonds", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-player", " "}); err == nil {
		t.Fatal("expected blank player error")
	}
}

func writeChanges(t *testing.T, changes []bond.Change) string {
	t.Helper()
	data, err := json.Marshal(changes)
	if err != nil {
		t.Fatalf("marshal changes: %v", err)
	}
	path := filepath.Join(t.TempDir(), "changes.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write changes: %v", err)
	}
	return path
}

func decodeBonds(t *testing.T, data []byte) bond.List {
	t.Helper()
	var out struct {
		Info struct {
			Bonds bond.List `json:"bonds"`
		} `json:"info"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	return out.Info.Bonds
}

func TestEditAppliesChanges(t *testing.T) {
	path := writeChanges(t, []bond.Change{
		bond.AddChange(),
		bond.RenameChange(1, strings.Repeat("n", 60)),
		bond.ToggleChange(0, bond.AttributeInferiority, true),
	})
	in := strings.NewReader(`{"id":"p-1","info":{"bonds":[{"name":"Ser Aldric","admiration":true}]}}`)
	var out bytes.Buffer

	cfg := Config{EditMode: true, PlayerID: "p-1", ChangesPath: path, Show: true}
	if err := Edit(context.Background(), cfg, in, &out); err != nil {
		t.Fatalf("edit: %v", err)
	}
	bonds := decodeBonds(t, out.Bytes())
	if len(bonds) != 2 {
		t.Fatalf("bonds = %+v", bonds)
	}
	if want := (bond.Bond{Name: "Ser Aldric", Inferiority: true}); bonds[0] != want {
		t.Fatalf("bond 0 = %+v, want %+v", bonds[0], want)
	}
	if bonds[1].Name != strings.Repeat("n", bond.MaxNameLength) {
		t.Fatalf("bond 1 name = %q, want truncated", bonds[1].Name)
	}
	if !strings.Contains(out.String(), `"id": "p-1"`) {
		t.Fatalf("record = %s, want id preserved", out.String())
	}
}

func TestEditReadOnlyRejectsChanges(t *testing.T) {
	path := writeChanges(t, []bond.Change{bond.AddChange()})
	cfg := Config{PlayerID: "p-1", ChangesPath: path}
	err := Edit(context.Background(), cfg, strings.NewReader(`{}`), &bytes.Buffer{})
	if !errors.Is(err, app.ErrEditModeDisabled) {
		t.Fatalf("err = %v, want %v", err, app.ErrEditModeDisabled)
	}
}

func TestEditReadOnlyWithoutChangesEchoesRecord(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{PlayerID: "p-1"}
	if err := Edit(context.Background(), cfg, strings.NewReader(`{"info":{"bonds":[{"name":"a","loyality":true}]}}`), &out); err != nil {
		t.Fatalf("edit: %v", err)
	}
	bonds := decodeBonds(t, out.Bytes())
	if len(bonds) != 1 || !bonds[0].Loyalty {
		t.Fatalf("bonds = %+v", bonds)
	}
}

func TestEditStrictRejectsInvalidRecord(t *testing.T) {
	cfg := Config{PlayerID: "p-1", Strict: true}
	in := strings.NewReader(`{"info":{"bonds":[{"affection":true,"hatred":true}]}}`)
	err := Edit(context.Background(), cfg, in, &bytes.Buffer{})
	if apperrors.CodeOf(err) != apperrors.CodeBondPairConflict {
		t.Fatalf("err = %v, want pair conflict", err)
	}
}

func TestEditRejectsUnreadableChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changes.json")
	if err := os.WriteFile(path, []byte(`{"type":"bond.add"}`), 0o600); err != nil {
		t.Fatalf("write changes: %v", err)
	}
	cfg := Config{EditMode: true, PlayerID: "p-1", ChangesPath: path}
	if err := Edit(context.Background(), cfg, strings.NewReader(`{}`), &bytes.Buffer{}); err == nil {
		t.Fatal("expected decode changes error")
	}

	cfg.ChangesPath = filepath.Join(t.TempDir(), "missing.json")
	if err := Edit(context.Background(), cfg, strings.NewReader(`{}`), &bytes.Buffer{}); err == nil {
		t.Fatal("expected read changes error")
	}
}
