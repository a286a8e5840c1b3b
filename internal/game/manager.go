package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/asa-holland/gess-strategy-game/internal/game/rules"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrGameNotFound is returned for an unknown game id.
	ErrGameNotFound = errors.New("game not found")
	// ErrTooManyGames is returned by StartGame when the session limit is reached.
	ErrTooManyGames = errors.New("too many active games")
)

// Notification types delivered to the NotificationHandler.
const (
	NotificationGameStateChange = "GAME_STATE_CHANGE"
	NotificationGameOver        = "GAME_OVER"
)

// GameNotification describes a change to a managed game.
type GameNotification struct {
	Type      string
	GameID    string
	Player    string // player the notification is about, empty for broadcast
	Timestamp time.Time
	Data      map[string]interface{}
}

// NotificationHandler receives notifications on its own goroutine.
type NotificationHandler func(notification GameNotification)

type managedGame struct {
	mu        sync.Mutex
	session   *Session
	startedAt time.Time
}

// Manager owns a set of concurrent sessions keyed by id.
type Manager struct {
	logger              *zap.Logger
	bus                 *rules.EventBus
	maxSessions         int
	mu                  sync.RWMutex
	games               map[string]*managedGame
	notificationHandler NotificationHandler
}

// NewManager creates a manager allowing at most maxSessions games at once.
// A non-positive maxSessions means no limit.
func NewManager(logger *zap.Logger, maxSessions int) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		logger:      logger,
		bus:         rules.NewEventBus(),
		maxSessions: maxSessions,
		games:       make(map[string]*managedGame),
	}
}

// Events returns the bus every managed session publishes to.
func (m *Manager) Events() *rules.EventBus {
	return m.bus
}

// SetNotificationHandler sets the handler for game notifications.
func (m *Manager) SetNotificationHandler(handler NotificationHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationHandler = handler
}

// emitNotification never blocks the caller; the handler runs on its own
// goroutine and may call back into the manager.
func (m *Manager) emitNotification(n GameNotification) {
	m.mu.RLock()
	handler := m.notificationHandler
	m.mu.RUnlock()

	if handler != nil {
		go handler(n)
	}
}

// StartGame creates a new game and returns its id.
func (m *Manager) StartGame() (string, error) {
	id := uuid.New().String()

	m.mu.Lock()
	if m.maxSessions > 0 && len(m.games) >= m.maxSessions {
		m.mu.Unlock()
		return "", fmt.Errorf("start game (limit %d): %w", m.maxSessions, ErrTooManyGames)
	}
	m.games[id] = &managedGame{
		session:   NewSession(WithGameID(id), WithLogger(m.logger), WithEventBus(m.bus)),
		startedAt: time.Now(),
	}
	active := len(m.games)
	m.mu.Unlock()

	m.logger.Info("game started",
		zap.String("game_id", id),
		zap.Int("active_games", active),
	)
	return id, nil
}

func (m *Manager) lookup(gameID string) (*managedGame, error) {
	m.mu.RLock()
	g, ok := m.games[gameID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	return g, nil
}

// Session returns the session for gameID. Callers must not use it
// concurrently with the manager's own methods.
func (m *Manager) Session(gameID string) (*Session, error) {
	g, err := m.lookup(gameID)
	if err != nil {
		return nil, err
	}
	return g.session, nil
}

// MakeMove plays a move in gameID. The error is non-nil only when the game
// does not exist; an illegal move yields false.
func (m *Manager) MakeMove(gameID, origin, destination string) (bool, error) {
	g, err := m.lookup(gameID)
	if err != nil {
		return false, err
	}

	g.mu.Lock()
	mover := g.session.CurrentPlayer()
	ok := g.session.MakeMove(origin, destination)
	status := g.session.Status()
	next := g.session.CurrentPlayer()
	g.mu.Unlock()

	if !ok {
		return false, nil
	}

	m.emitNotification(GameNotification{
		Type:      NotificationGameStateChange,
		GameID:    gameID,
		Player:    mover.String(),
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"origin":         origin,
			"destination":    destination,
			"current_player": next.String(),
			"status":         status.String(),
		},
	})
	if status.Finished() {
		m.notifyGameOver(gameID, status, "ring destroyed")
	}
	return true, nil
}

// Resign resigns the player to move in gameID.
func (m *Manager) Resign(gameID string) (bool, error) {
	g, err := m.lookup(gameID)
	if err != nil {
		return false, err
	}

	g.mu.Lock()
	ok := g.session.Resign()
	status := g.session.Status()
	g.mu.Unlock()

	if ok {
		m.notifyGameOver(gameID, status, "resignation")
	}
	return ok, nil
}

func (m *Manager) notifyGameOver(gameID string, status Status, cause string) {
	m.emitNotification(GameNotification{
		Type:      NotificationGameOver,
		GameID:    gameID,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"status": status.String(),
			"cause":  cause,
		},
	})
}

// GameView returns a snapshot of gameID.
func (m *Manager) GameView(gameID string) (*GameView, error) {
	g, err := m.lookup(gameID)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return newGameView(gameID, g.session, g.startedAt), nil
}

// EndGame removes gameID from the manager, whatever its status.
func (m *Manager) EndGame(gameID string) error {
	m.mu.Lock()
	g, ok := m.games[gameID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	delete(m.games, gameID)
	m.mu.Unlock()

	g.mu.Lock()
	status := g.session.Status()
	g.mu.Unlock()

	m.logger.Info("game ended",
		zap.String("game_id", gameID),
		zap.String("status", status.String()),
	)
	return nil
}

// ActiveGames returns the ids of all managed games in sorted order.
func (m *Manager) ActiveGames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
