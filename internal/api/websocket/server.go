package websocket

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/fortuna/depthsheets/internal/batch"
	"github.com/fortuna/depthsheets/internal/service"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Generator runs one batch and reports each rendered sheet
type Generator interface {
	Generate(ctx context.Context, req service.Request, reporter batch.Reporter) (*service.Result, error)
}

// Message is one frame sent to the client. Index is 1-based.
type Message struct {
	Type     string          `json:"type"`
	Index    int             `json:"index,omitempty"`
	Total    int             `json:"total,omitempty"`
	Document *batch.Document `json:"document,omitempty"`
	Run      *store.Run      `json:"run,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Message types
const (
	MessageDocument = "document"
	MessageSummary  = "summary"
	MessageError    = "error"
)

// Server represents the WebSocket server
type Server struct {
	port       string
	server     *http.Server
	sheets     Generator
	seasonYear int
}

// NewServer creates a new WebSocket server listening on port once started
func NewServer(port string, sheets Generator, seasonYear int) *Server {
	s := &Server{
		port:       port,
		sheets:     sheets,
		seasonYear: seasonYear,
	}
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the WebSocket routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/sheets", s.handleSheets)
	mux.HandleFunc("/ws/health", s.handleHealth)
	return mux
}

// Start starts the WebSocket server. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	log.Printf("WebSocket server listening on :%s", s.port)
	return s.server.ListenAndServe()
}

// handleSheets generates a week of sheets and streams each one as it is rendered
func (s *Server) handleSheets(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	stream := &streamReporter{conn: conn}
	result, err := s.sheets.Generate(r.Context(), req, stream)
	if err != nil {
		stream.send(Message{Type: MessageError, Error: err.Error()})
		return
	}
	if stream.err != nil {
		log.Printf("[ws] client dropped during run %s: %v", result.Run.RunID, stream.err)
		return
	}

	stream.send(Message{Type: MessageSummary, Total: len(result.Documents), Run: result.Run})
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(writeWait))
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status": "healthy"}`)
}

func (s *Server) parseRequest(r *http.Request) (service.Request, error) {
	q := r.URL.Query()

	seasonType, err := store.ParseSeasonType(q.Get("season_type"))
	if err != nil {
		return service.Request{}, err
	}
	week, err := strconv.Atoi(q.Get("week"))
	if err != nil {
		return service.Request{}, fmt.Errorf("week must be a number: %w", err)
	}

	year := s.seasonYear
	if yearStr := q.Get("year"); yearStr != "" {
		if year, err = strconv.Atoi(yearStr); err != nil {
			return service.Request{}, fmt.Errorf("year must be a number: %w", err)
		}
	}

	req := service.Request{SeasonType: seasonType, Week: week, SeasonYear: year}
	return req, req.Validate()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// streamReporter writes a frame per rendered document. After the first write
// failure it stops writing and keeps the error.
type streamReporter struct {
	conn *websocket.Conn
	err  error
}

func (s *streamReporter) OnDocument(doc batch.Document, index int, total int) {
	s.send(Message{Type: MessageDocument, Index: index + 1, Total: total, Document: &doc})
}

func (s *streamReporter) send(msg Message) {
	if s.err != nil {
		return
	}
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	s.err = s.conn.WriteJSON(msg)
}
