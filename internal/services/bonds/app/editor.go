package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/playerbonds/internal/platform/errors"
	"github.com/louisbranch/playerbonds/internal/platform/otel"
	"github.com/louisbranch/playerbonds/internal/services/bonds/domain/bond"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/playerbonds/internal/services/bonds/app"

// ErrEditModeDisabled rejects changes while the editor is read-only.
var ErrEditModeDisabled = apperrors.New(apperrors.CodeBondEditModeDisabled, "bonds are read-only outside edit mode")

// Store owns player records and exposes their bonds.
type Store interface {
	Bonds(ctx context.Context, playerID string) (bond.List, error)
	SaveBonds(ctx context.Context, playerID string, bonds bond.List) error
}

// Options controls how an Editor applies changes.
type Options struct {
	// EditMode enables mutation. A read-only editor rejects every change.
	EditMode bool
	// Strict reports invalid changes instead of absorbing them.
	Strict bool
	// KeyFunc issues bond keys for Keyed; nil disables keying.
	KeyFunc bond.KeyFunc
}

// Editor applies change streams to player bonds.
type Editor struct {
	store  Store
	opts   Options
	tracer trace.Tracer
}

// NewEditor returns an editor backed by store.
func NewEditor(store Store, opts Options) (*Editor, error) {
	if store == nil {
		return nil, errors.New("bond store is required")
	}
	return &Editor{store: store, opts: opts, tracer: otel.Tracer(tracerName)}, nil
}

// EditMode reports whether the editor accepts changes.
func (e *Editor) EditMode() bool {
	return e.opts.EditMode
}

// Apply applies changes in order to the bonds of playerID and saves the
// result. In strict mode the first rejected change aborts the call and
// nothing is saved. An empty change stream saves nothing.
func (e *Editor) Apply(ctx context.Context, playerID string, changes []bond.Change) (bond.List, error) {
	ctx, span := e.tracer.Start(ctx, "bonds.apply", trace.WithAttributes(
		attribute.String("player.id", playerID),
		attribute.Int("bonds.changes", len(changes)),
		attribute.Bool("bonds.strict", e.opts.Strict),
	))
	defer span.End()

	list, err := e.apply(ctx, playerID, changes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("bonds.count", len(list)))
	return list, nil
}

func (e *Editor) apply(ctx context.Context, playerID string, changes []bond.Change) (bond.List, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, errors.New("player id is required")
	}
	if !e.opts.EditMode {
		return nil, ErrEditModeDisabled
	}
	list, err := e.store.Bonds(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load bonds for %s: %w", playerID, err)
	}
	if len(changes) == 0 {
		return list, nil
	}

	applyChange := bond.Apply
	if e.opts.Strict {
		applyChange = bond.ApplyStrict
	}
	for i, change := range changes {
		list, err = applyChange(list, change)
		if err != nil {
			return nil, fmt.Errorf("change %d (%s): %w", i, change.Type, err)
		}
	}

	if err := e.store.SaveBonds(ctx, playerID, list); err != nil {
		return nil, fmt.Errorf("save bonds for %s: %w", playerID, err)
	}
	return list, nil
}

// Bonds returns the bonds of playerID. Reading is allowed outside edit mode.
func (e *Editor) Bonds(ctx context.Context, playerID string) (bond.List, error) {
	list, err := e.store.Bonds(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return nil, fmt.Errorf("load bonds for %s: %w", playerID, err)
	}
	return list, nil
}

// Keyed returns the bonds of playerID with a stable key per bond, for
// surfaces that hold references across removals.
func (e *Editor) Keyed(ctx context.Context, playerID string) (bond.Keyed, error) {
	if e.opts.KeyFunc == nil {
		return bond.Keyed{}, errors.New("bond key func is not configured")
	}
	list, err := e.Bonds(ctx, playerID)
	if err != nil {
		return bond.Keyed{}, err
	}
	return bond.NewKeyed(list, e.opts.KeyFunc)
}
