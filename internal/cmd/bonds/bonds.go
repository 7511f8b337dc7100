// Package bonds parses bonds editor flags and runs one edit of a player
// record.
package bonds

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	entrypoint "github.com/louisbranch/playerbonds/internal/platform/cmd"
	"github.com/louisbranch/playerbonds/internal/platform/id"
	"github.com/louisbranch/playerbonds/internal/services/bonds/app"
	"github.com/louisbranch/playerbonds/internal/services/bonds/domain/bond"
	"github.com/louisbranch/playerbonds/internal/services/bonds/player"
)

// Config holds bonds command configuration.
type Config struct {
	EditMode    bool   `env:"EDIT_MODE" envDefault:"false"`
	Strict      bool   `env:"STRICT" envDefault:"false"`
	PlayerID    string `env:"PLAYER_ID" envDefault:"player"`
	ChangesPath string `env:"CHANGES"`
	Show        bool   `env:"SHOW" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.BoolVar(&cfg.EditMode, "edit", cfg.EditMode, "Allow changes to the player's bonds")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Reject invalid changes instead of ignoring them")
	fs.StringVar(&cfg.PlayerID, "player", cfg.PlayerID, "Player ID used in logs and traces")
	fs.StringVar(&cfg.ChangesPath, "changes", cfg.ChangesPath, "Path to a JSON array of bond changes")
	fs.BoolVar(&cfg.Show, "show", cfg.Show, "Log the resulting bonds with stable keys")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.PlayerID) == "" {
		return Config{}, errors.New("player id is required")
	}
	return cfg, nil
}

// Run reads a player record from stdin, applies the configured changes, and
// writes the record to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBonds, func(ctx context.Context) error {
		return Edit(ctx, cfg, os.Stdin, os.Stdout)
	})
}

// Edit applies the configured changes to the record read from in and writes
// the result to out.
func Edit(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	rec, err := player.Decode(in)
	if err != nil {
		return err
	}
	if err := bond.Validate(rec.Bonds()); err != nil {
		if cfg.Strict {
			return fmt.Errorf("player %s: %w", cfg.PlayerID, err)
		}
		log.Printf("player %s: %v", cfg.PlayerID, err)
	}

	changes, err := loadChanges(cfg.ChangesPath)
	if err != nil {
		return err
	}

	store := player.NewMemoryStore()
	store.Put(cfg.PlayerID, rec)
	editor, err := app.NewEditor(store, app.Options{
		EditMode: cfg.EditMode,
		Strict:   cfg.Strict,
		KeyFunc:  id.NewID,
	})
	if err != nil {
		return err
	}

	if len(changes) > 0 {
		list, err := editor.Apply(ctx, cfg.PlayerID, changes)
		if err != nil {
			return err
		}
		log.Printf("player %s: applied %d changes, %d bonds", cfg.PlayerID, len(changes), len(list))
	}

	if cfg.Show {
		if err := logBonds(ctx, editor, cfg.PlayerID); err != nil {
			return err
		}
	}
	return rec.Encode(out)
}

func loadChanges(path string) ([]bond.Change, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read changes: %w", err)
	}
	var changes []bond.Change
	if err := json.Unmarshal(data, &changes); err != nil {
		return nil, fmt.Errorf("decode changes %s: %w", path, err)
	}
	for i := range changes {
		if changes[i].Type == bond.ChangeTypeRename {
			changes[i].Name = bond.NormalizeName(changes[i].Name)
		}
	}
	return changes, nil
}

func logBonds(ctx context.Context, editor *app.Editor, playerID string) error {
	keyed, err := editor.Keyed(ctx, playerID)
	if err != nil {
		return err
	}
	list := keyed.List()
	for i, key := range keyed.Keys() {
		b := list[i]
		var set []string
		for _, a := range bond.Attributes() {
			if b.Get(a) {
				set = append(set, string(a))
			}
		}
		log.Printf("bond %d [%s] %q: %s", i, key, b.Name, strings.Join(set, ", "))
	}
	return nil
}
