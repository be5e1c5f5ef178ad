package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/blockdeck/handview/internal/poker"
)

// BoardState is a decoded board_state message with validated cards
type BoardState struct {
	TableID   string
	Hole      []poker.Card
	Community []poker.Card
}

// BoardHandler receives each decoded board state
type BoardHandler func(BoardState)

// ErrorHandler receives non-fatal feed problems (bad payloads, staleness)
type ErrorHandler func(error)

// ErrFeedStale is reported when no message arrives within the stale window
var ErrFeedStale = errors.New("no feed activity within stale window")

// Client consumes the bridge's websocket feed of revealed cards. The feed
// is push-based: the bridge sends board_state whenever a card is revealed
// on-chain, and the client never polls. The clock is injectable so tests
// can drive the staleness watchdog.
type Client struct {
	serverURL  string
	logger     *log.Logger
	clock      quartz.Clock
	staleAfter time.Duration

	mu            sync.RWMutex
	conn          *websocket.Conn
	connected     bool
	boardHandlers []BoardHandler
	errHandlers   []ErrorHandler

	activity chan struct{}
}

// NewClient creates a feed client. staleAfter <= 0 disables the watchdog.
func NewClient(serverURL string, logger *log.Logger, clock quartz.Clock, staleAfter time.Duration) *Client {
	return &Client{
		serverURL:  serverURL,
		logger:     logger,
		clock:      clock,
		staleAfter: staleAfter,
		activity:   make(chan struct{}, 1),
	}
}

// OnBoard registers a handler for decoded board states
func (c *Client) OnBoard(handler BoardHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boardHandlers = append(c.boardHandlers, handler)
}

// OnError registers a handler for non-fatal feed problems
func (c *Client) OnError(handler ErrorHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errHandlers = append(c.errHandlers, handler)
}

// Connect establishes the websocket connection
func (c *Client) Connect() error {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("invalid feed URL: %w", err)
	}

	// Ensure WebSocket scheme
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
		// Already correct
	default:
		u.Scheme = "ws"
	}

	c.logger.Info("Connecting to feed", "url", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	return nil
}

// Run reads the feed until the context is cancelled or the connection
// fails. Connect must have succeeded first.
func (c *Client) Run(ctx context.Context) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return fmt.Errorf("not connected")
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.readLoop(ctx, conn)
	})
	if c.staleAfter > 0 {
		g.Go(func() error {
			return c.watchStale(ctx)
		})
	}
	g.Go(func() error {
		// Unblock the reader when the context ends
		<-ctx.Done()
		c.closeConn()
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close tears down the connection
func (c *Client) Close() error {
	c.closeConn()
	return nil
}

func (c *Client) closeConn() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return
	}
	c.connected = false

	if c.conn != nil {
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = c.conn.Close()
	}
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("feed read failed: %w", err)
		}

		select {
		case c.activity <- struct{}{}:
		default:
		}

		c.dispatch(&msg)
	}
}

func (c *Client) dispatch(msg *Message) {
	switch msg.Type {
	case MessageTypeBoardState:
		var data BoardStateData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.reportError(fmt.Errorf("bad board_state payload: %w", err))
			return
		}

		hole, err := poker.Codes(data.Hole)
		if err != nil {
			c.reportError(fmt.Errorf("bad hole cards: %w", err))
			return
		}
		community, err := poker.Codes(data.Community)
		if err != nil {
			c.reportError(fmt.Errorf("bad community cards: %w", err))
			return
		}

		state := BoardState{TableID: data.TableID, Hole: hole, Community: community}

		c.mu.RLock()
		handlers := append([]BoardHandler(nil), c.boardHandlers...)
		c.mu.RUnlock()
		for _, handler := range handlers {
			handler(state)
		}

	case MessageTypePing:
		// Keepalive, nothing to do

	default:
		c.logger.Debug("Ignoring unknown feed message", "type", msg.Type)
	}
}

// watchStale reports ErrFeedStale whenever no message has arrived for the
// stale window. The board shown to the user may be out of date; the UI
// decides how to surface that.
func (c *Client) watchStale(ctx context.Context) error {
	timer := c.clock.NewTimer(c.staleAfter, "stale")
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.activity:
			timer.Reset(c.staleAfter)
		case <-timer.C:
			c.logger.Warn("Feed stale", "window", c.staleAfter)
			c.reportError(ErrFeedStale)
			timer.Reset(c.staleAfter)
		}
	}
}

func (c *Client) reportError(err error) {
	c.mu.RLock()
	handlers := append([]ErrorHandler(nil), c.errHandlers...)
	c.mu.RUnlock()
	for _, handler := range handlers {
		handler(err)
	}
}
