package preview

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/primitives/internal/demo"
	"github.com/vango-dev/primitives/pkg/dom"
	"github.com/vango-dev/primitives/pkg/render"
)

// LiveMessageType represents the type of a live message.
type LiveMessageType string

const (
	// LiveTypeEvent is sent by the browser to replay an event.
	LiveTypeEvent LiveMessageType = "event"

	// LiveTypeHTML carries the re-rendered body.
	LiveTypeHTML LiveMessageType = "html"

	LiveTypeError LiveMessageType = "error"
)

// LiveMessage is exchanged over a live socket.
type LiveMessage struct {
	Type LiveMessageType `json:"type"`

	// Event is the event type to dispatch. Empty means click.
	Event string `json:"event,omitempty"`
	Key   string `json:"key,omitempty"`

	// Path locates the target as element child indexes from the body.
	// An empty path targets the document.
	Path []int `json:"path,omitempty"`

	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// LiveOptions configures a LiveServer.
type LiveOptions struct {
	Logger *slog.Logger

	// CheckOrigin overrides the websocket origin check. Nil allows every
	// origin.
	CheckOrigin func(r *http.Request) bool
}

// LiveServer manages live demo sessions, one mounted demo per connection.
type LiveServer struct {
	sessions map[*websocket.Conn]string
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewLiveServer creates a live server.
func NewLiveServer(opts LiveOptions) *LiveServer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	checkOrigin := opts.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &LiveServer{
		sessions: make(map[*websocket.Conn]string),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
		renderer: render.NewRenderer(render.RendererConfig{EventMarkers: true}),
		logger:   logger,
	}
}

// Serve mounts the demo called name, upgrades the request and replays
// incoming events until the connection closes. It returns an error only if
// the demo could not be mounted, in which case nothing has been written.
func (l *LiveServer) Serve(ctx context.Context, w http.ResponseWriter, r *http.Request, name string, opts demo.Options) error {
	res, err := demo.Run(ctx, name, opts)
	if err != nil {
		return err
	}
	defer res.Close()

	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied.
		return nil
	}

	l.mu.Lock()
	l.sessions[conn] = name
	l.mu.Unlock()
	l.logger.Debug("preview: live session opened", "demo", name)

	defer func() {
		l.mu.Lock()
		delete(l.sessions, conn)
		l.mu.Unlock()
		conn.Close()
		l.logger.Debug("preview: live session closed", "demo", name)
	}()

	if err := conn.WriteJSON(l.htmlMessage(res)); err != nil {
		return nil
	}
	for {
		var msg LiveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return nil
		}
		if err := conn.WriteJSON(l.handle(ctx, res, msg)); err != nil {
			return nil
		}
	}
}

// handle replays msg into the session's document and returns the reply.
func (l *LiveServer) handle(ctx context.Context, res *demo.Result, msg LiveMessage) LiveMessage {
	if msg.Type != LiveTypeEvent {
		return errorMessage("unsupported message type %q", msg.Type)
	}

	doc := res.Document
	var target *dom.Node
	if len(msg.Path) > 0 {
		target = elementAt(doc.Body(), msg.Path)
		if target == nil {
			return errorMessage("no element at %v", msg.Path)
		}
	}

	switch msg.Event {
	case "", "click":
		if target == nil {
			return errorMessage("click needs a target path")
		}
		doc.Click(target)
	case "keydown":
		doc.KeyDown(target, msg.Key)
	default:
		doc.Dispatch(target, dom.NewEvent(msg.Event))
	}

	if err := res.Settle(ctx); err != nil {
		l.logger.Error("preview: live settle", "demo", res.Demo.Name, "error", err)
		return errorMessage("%v", err)
	}
	return l.htmlMessage(res)
}

func (l *LiveServer) htmlMessage(res *demo.Result) LiveMessage {
	var b strings.Builder
	if err := l.renderer.RenderChildren(&b, res.Document.Body()); err != nil {
		return errorMessage("%v", err)
	}
	return LiveMessage{Type: LiveTypeHTML, HTML: b.String()}
}

func errorMessage(format string, args ...any) LiveMessage {
	return LiveMessage{Type: LiveTypeError, Error: fmt.Sprintf(format, args...)}
}

// elementAt follows path through element children, skipping text nodes.
func elementAt(n *dom.Node, path []int) *dom.Node {
	for _, idx := range path {
		var next *dom.Node
		i := 0
		for _, c := range n.Children() {
			if c.Type != dom.ElementNode {
				continue
			}
			if i == idx {
				next = c
				break
			}
			i++
		}
		if next == nil {
			return nil
		}
		n = next
	}
	return n
}

// SessionCount returns the number of open live sessions.
func (l *LiveServer) SessionCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sessions)
}

// Close closes every live connection. Each session unmounts its demo as
// its read loop ends.
func (l *LiveServer) Close() {
	l.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(l.sessions))
	for conn := range l.sessions {
		conns = append(conns, conn)
	}
	l.mu.RUnlock()

	for _, conn := range conns {
		conn.Close()
	}
}

// liveClientScript connects a demo page to its live endpoint.
const liveClientScript = `
(function() {
    'use strict';

    var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(protocol + '//' + location.host + location.pathname + '/live' + location.search);

    function path(el) {
        var p = [];
        while (el && el !== document.body) {
            var parent = el.parentElement;
            if (!parent) {
                return null;
            }
            p.unshift(Array.prototype.indexOf.call(parent.children, el));
            el = parent;
        }
        return el === document.body ? p : null;
    }

    function send(msg) {
        if (ws.readyState === WebSocket.OPEN) {
            ws.send(JSON.stringify(msg));
        }
    }

    document.addEventListener('click', function(e) {
        var p = path(e.target);
        if (p === null) {
            return;
        }
        e.preventDefault();
        send({type: 'event', event: 'click', path: p});
    }, true);

    document.addEventListener('keydown', function(e) {
        send({type: 'event', event: 'keydown', key: e.key, path: path(e.target) || []});
    }, true);

    ws.onmessage = function(e) {
        var msg;
        try {
            msg = JSON.parse(e.data);
        } catch (err) {
            return;
        }
        if (msg.type === 'html') {
            document.body.innerHTML = msg.html;
        } else if (msg.type === 'error') {
            console.error('[primitives]', msg.error);
        }
    };
})();
`
