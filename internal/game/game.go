package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skirmish/internal/input"
	"github.com/samdwyer/skirmish/internal/telemetry"
	"github.com/samdwyer/skirmish/internal/ui"
)

// Game runs the read-command, update, render loop over a controller.
type Game struct {
	controller *Controller
	source     input.Source
	renderer   ui.Renderer
	logger     logrus.FieldLogger

	message string // Shown under the grid on the next render
}

// New creates a game loop.
func New(controller *Controller, source input.Source, renderer ui.Renderer, logger logrus.FieldLogger) *Game {
	if logger == nil {
		logger = telemetry.DiscardLogger()
	}
	return &Game{
		controller: controller,
		source:     source,
		renderer:   renderer,
		logger:     logger,
	}
}

// Run renders the board and applies commands until the input runs out or the
// game ends. Rejected commands are reported and the player is asked again;
// only errors that leave the game unplayable are returned.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.start")
	defer span.End()

	state := g.controller.State()
	span.SetAttributes(
		attribute.String("session.id", state.ID),
		attribute.Int("grid.width", state.Grid.Width),
		attribute.Int("grid.height", state.Grid.Height),
		attribute.StringSlice("entities", state.Roster.Names()),
	)
	g.logger.WithFields(logrus.Fields{
		"session":  state.ID,
		"entities": state.Roster.Names(),
	}).Info("game started")

	for {
		if err := g.render(); err != nil {
			return err
		}
		if g.controller.Phase() == PhaseGameOver {
			span.SetAttributes(attribute.Int("turns", state.TurnCount))
			return nil
		}

		cmd, err := g.source.Next(ctx)
		if errors.Is(err, input.ErrNoMoreInput) {
			span.SetAttributes(attribute.Int("turns", state.TurnCount))
			g.logger.WithField("turns", state.TurnCount).Info("input exhausted")
			return nil
		}
		var unknown *input.UnknownCommandError
		if errors.As(err, &unknown) {
			g.message = err.Error()
			continue
		}
		if err != nil {
			return err
		}

		if err := g.apply(ctx, cmd); err != nil {
			return err
		}
	}
}

// apply runs one command and sets the message for the next render.
func (g *Game) apply(ctx context.Context, cmd input.Command) error {
	var (
		result *TurnResult
		err    error
	)
	switch cmd.Kind {
	case input.KindMove:
		result, err = g.controller.Move(ctx, cmd.Direction)
	case input.KindEndTurn:
		result, err = g.controller.EndTurn(ctx)
	default:
		err = fmt.Errorf("unsupported command %s", cmd.Kind)
	}

	if err != nil {
		if IsFatal(err) {
			return err
		}
		g.message = err.Error()
		return nil
	}

	g.message = describe(result)
	return nil
}

// describe summarizes a finished turn; nil means the turn is still going.
func describe(result *TurnResult) string {
	if result == nil {
		return ""
	}

	msg := result.Actor + " ends their turn."
	if result.Outcome != nil {
		msg = result.Outcome.Message
	}
	if result.GameOver {
		return fmt.Sprintf("%s %s wins!", msg, result.Winner)
	}
	return fmt.Sprintf("%s %s's turn.", msg, result.Next)
}

func (g *Game) render() error {
	state := g.controller.State()
	return g.renderer.Render(ui.Frame{
		Grid:            state.Grid,
		Roster:          state.Roster,
		Active:          g.controller.Active().Name,
		Phase:           g.controller.Phase().String(),
		Turn:            state.TurnCount,
		PointsRemaining: state.Turn.PointsRemaining,
		History:         state.Turn.History,
		Available:       g.controller.Available(),
		Message:         g.message,
	})
}
