package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/skirmish/internal/combat"
	"github.com/samdwyer/skirmish/internal/entity"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/telemetry"
	"github.com/samdwyer/skirmish/internal/world"
)

var (
	// ErrNoMovementPoints is returned when the active entity has no points left to move.
	ErrNoMovementPoints = errors.New("no movement points remaining")
	// ErrTurnOver is returned when a command arrives outside PhaseSelectingMove.
	ErrTurnOver = errors.New("not accepting moves")
)

// IllegalMoveError reports a direction that is not legal from the active
// entity's square. Err holds the grid's reason (out of bounds or occupied).
type IllegalMoveError struct {
	Entity    string
	From      world.Square
	Direction world.Direction
	Legal     []world.Direction
	Err       error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s cannot move %s from %s: %v (legal: %v)", e.Entity, e.Direction, e.From, e.Err, e.Legal)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err means the session can no longer continue:
// an entity vanished from the grid, or the game was set up wrong.
func IsFatal(err error) bool {
	var notFound *world.EntityNotFoundError
	var cfgErr *world.ConfigurationError
	return errors.As(err, &notFound) || errors.As(err, &cfgErr)
}

// WinCondition decides whether a team has won. It is consulted after every
// turn; returning false keeps the game going.
type WinCondition func(s *State) (winner entity.Team, won bool)

// TurnResult describes a completed turn.
type TurnResult struct {
	Actor   string
	History []world.Direction
	Outcome *combat.Outcome // nil when no gesture matched
	Next    string          // Entity whose turn starts now ("" when the game is over)

	GameOver bool
	Winner   entity.Team
}

// Controller drives one game: it validates directional input against the
// grid, records movement history, fires gesture actions and rotates turns.
// It is not safe for concurrent use; one loop owns it.
type Controller struct {
	state     *State
	phase     Phase
	maxPoints int
	win       WinCondition
	logger    logrus.FieldLogger
}

// NewController creates a controller over an initialized state.
func NewController(state *State, cfg Config, logger logrus.FieldLogger) *Controller {
	if logger == nil {
		logger = telemetry.DiscardLogger()
	}
	return &Controller{
		state:     state,
		phase:     PhaseSelectingMove,
		maxPoints: cfg.MaxMovementPoints,
		logger:    logger.WithField("session", state.ID),
	}
}

// SetWinCondition installs the predicate checked after every turn.
func (c *Controller) SetWinCondition(win WinCondition) {
	c.win = win
}

// State returns the game state.
func (c *Controller) State() *State { return c.state }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Active returns the entity whose turn it is.
func (c *Controller) Active() *entity.Entity { return c.state.ActiveEntity() }

// Available returns the active entity's still-completable actions.
func (c *Controller) Available() []*gamedata.ActionDef {
	return c.state.Available[c.Active().Name]
}

// LegalMoves returns the directions the active entity may take right now.
func (c *Controller) LegalMoves() ([]world.Direction, error) {
	if c.phase != PhaseSelectingMove || c.state.Turn.PointsRemaining <= 0 {
		return nil, nil
	}
	from, err := c.state.ActivePosition()
	if err != nil {
		return nil, err
	}
	return world.LegalMovementsFrom(from, c.state.Grid), nil
}

// Move moves the active entity one square. A rejected move changes nothing
// and spends no point. When the move spends the last point the turn resolves
// immediately and its result is returned; otherwise the result is nil.
func (c *Controller) Move(ctx context.Context, d world.Direction) (*TurnResult, error) {
	tracer := telemetry.Tracer("turn")
	ctx, span := tracer.Start(ctx, "turn.move")
	defer span.End()

	actor := c.Active()
	span.SetAttributes(
		attribute.String("session.id", c.state.ID),
		attribute.String("actor", actor.Name),
		attribute.String("direction", d.String()),
		attribute.Int("points_remaining", c.state.Turn.PointsRemaining),
	)
	log := c.logger.WithFields(logrus.Fields{"entity": actor.Name, "direction": d.String()})

	if err := c.checkMove(actor, d); err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		if IsFatal(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.WithError(err).Error("move failed")
		} else {
			log.WithError(err).Debug("move rejected")
		}
		return nil, err
	}

	c.state.Turn.record(d)
	c.state.refreshAvailable()

	log.WithFields(logrus.Fields{
		"history":   fmt.Sprint(c.state.Turn.History),
		"points":    c.state.Turn.PointsRemaining,
		"available": len(c.Available()),
	}).Debug("move accepted")

	if c.state.Turn.PointsRemaining == 0 {
		return c.EndTurn(ctx)
	}
	return nil, nil
}

// checkMove validates and performs the grid mutation for a move.
func (c *Controller) checkMove(actor *entity.Entity, d world.Direction) error {
	if c.phase != PhaseSelectingMove {
		return ErrTurnOver
	}
	if c.state.Turn.PointsRemaining <= 0 {
		return ErrNoMovementPoints
	}

	from, err := c.state.ActivePosition()
	if err != nil {
		return err
	}

	legal := world.LegalMovementsFrom(from, c.state.Grid)
	if !containsDirection(legal, d) {
		target := from.Step(d)
		reason, err := c.state.Grid.Get(target)
		if err == nil {
			err = &world.OccupiedSquareError{Square: target, Occupant: reason}
		}
		return &IllegalMoveError{Entity: actor.Name, From: from, Direction: d, Legal: legal, Err: err}
	}

	return c.state.Grid.MoveTo(actor.Name, from.Step(d))
}

// EndTurn closes the active entity's turn: it checks the movement history
// against the entity's actions, applies a matching action's effect, then
// hands over to the next entity.
func (c *Controller) EndTurn(ctx context.Context) (*TurnResult, error) {
	if c.phase != PhaseSelectingMove {
		return nil, ErrTurnOver
	}

	tracer := telemetry.Tracer("turn")
	ctx, span := tracer.Start(ctx, "turn.end")
	defer span.End()

	actor := c.Active()
	turn := c.state.Turn
	span.SetAttributes(
		attribute.String("session.id", c.state.ID),
		attribute.String("actor", actor.Name),
		attribute.Int("moves", len(turn.History)),
		attribute.Int("turn", c.state.TurnCount),
	)

	c.phase = PhaseActionCheck
	outcome, err := c.actionCheck(ctx, actor)
	if err != nil {
		c.phase = PhaseSelectingMove
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WithError(err).WithField("entity", actor.Name).Error("action check failed")
		return nil, err
	}

	c.phase = PhaseTurnEnded
	turn.Ended = true
	result := &TurnResult{
		Actor:   actor.Name,
		History: append([]world.Direction(nil), turn.History...),
		Outcome: outcome,
	}

	if c.win != nil {
		if winner, won := c.win(c.state); won {
			c.phase = PhaseGameOver
			result.GameOver = true
			result.Winner = winner
			span.SetAttributes(attribute.String("winner", winner.String()))
			c.logger.WithField("winner", winner.String()).Info("game over")
			return result, nil
		}
	}

	c.state.advance(c.maxPoints)
	c.phase = PhaseSelectingMove
	result.Next = c.Active().Name

	span.SetAttributes(attribute.String("next", result.Next))
	c.logger.WithFields(logrus.Fields{
		"entity":       actor.Name,
		"next":         result.Next,
		"team_a_alive": c.state.Roster.AliveCount(entity.TeamA),
		"team_b_alive": c.state.Roster.AliveCount(entity.TeamB),
	}).Info("turn ended")
	return result, nil
}

// actionCheck fires the action whose gesture matches this turn's history.
func (c *Controller) actionCheck(ctx context.Context, actor *entity.Entity) (*combat.Outcome, error) {
	tracer := telemetry.Tracer("turn")
	_, span := tracer.Start(ctx, "turn.action_check")
	defer span.End()

	outcome, err := combat.TryExecute(actor.Name, actor.Actions, c.state.Turn.History, c.state.Grid, c.state.Roster)
	if err != nil {
		return nil, err
	}
	if outcome == nil {
		span.SetAttributes(attribute.Bool("matched", false))
		return nil, nil
	}

	span.SetAttributes(
		attribute.Bool("matched", true),
		attribute.String("action", outcome.Action.ID),
		attribute.Int("hits", len(outcome.Hits)),
		attribute.Int("damage", outcome.TotalDamage()),
	)
	c.logger.WithFields(logrus.Fields{
		"entity": actor.Name,
		"action": outcome.Action.ID,
		"hits":   len(outcome.Hits),
	}).Info(outcome.Message)
	return outcome, nil
}

func containsDirection(ds []world.Direction, d world.Direction) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}
