package stream

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/waxcat/textel"
)

// Subscription is subscription.
type Subscription uint32

// Possible subscription flags.
const (
	SubscriptionArt = Subscription(1 << iota)
	SubscriptionMetadata
	SubscriptionAll = Subscription(0)
)

// Possible packet types.
const (
	PacketArt = iota + 1
	PacketMetadata
)

// Control is the message a client sends to identify itself and choose what
// it receives.
type Control struct {
	ID           string `json:"id"`
	Subscription uint32 `json:"subscription"`
}

// IsSubscribedTo returns whether or not the client subscription is
// subscribed to the given subscription.
func (s Subscription) IsSubscribedTo(sub Subscription) bool {
	return (s & sub) == sub
}

// Client is a websocket connected client.
type Client struct {
	mutex         *sync.Mutex
	id            string
	conn          *websocket.Conn
	subscriptions Subscription
}

// Entry is one piece of art in the gallery.
type Entry struct {
	Title string       `json:"title"`
	Art   *textel.Grid `json:"art"`
}

// Gallery holds published art entries for the lifetime of the process and
// broadcasts each new entry to subscribed websocket clients. Entries are not
// persisted anywhere.
type Gallery struct {
	clientsMutex *sync.Mutex
	clients      []*Client

	entriesMutex *sync.Mutex
	entries      map[string]*Entry
	order        []string
}

// NewGallery returns an empty gallery.
func NewGallery() *Gallery {
	return &Gallery{
		clientsMutex: new(sync.Mutex),
		entriesMutex: new(sync.Mutex),
		entries:      make(map[string]*Entry),
	}
}

// Some catalogs disambiguate same-named artists and albums by appending a
// "(N)" suffix to the display name.
var disambigPattern = regexp.MustCompile(`\s*\(\d+\)$`)

// NormalizeTitle strips a trailing parenthesized disambiguation suffix from
// a display title, if one is present.
func NormalizeTitle(title string) string {
	return disambigPattern.ReplaceAllString(title, "")
}

// Publish stores art in the gallery under the normalized title, replacing
// any previous entry with the same title, and broadcasts it to art
// subscribers.
func (g *Gallery) Publish(title string, art *textel.Grid) (*Entry, error) {
	entry := &Entry{
		Title: NormalizeTitle(title),
		Art:   art,
	}

	g.entriesMutex.Lock()
	if _, ok := g.entries[entry.Title]; !ok {
		g.order = append(g.order, entry.Title)
	}
	g.entries[entry.Title] = entry
	g.entriesMutex.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("textel stream: Publish: %v", err)
	}

	g.Broadcast(SubscriptionArt, append([]byte{PacketArt}, data...))

	return entry, nil
}

// Entry returns the gallery entry stored under the given normalized title.
func (g *Gallery) Entry(title string) (*Entry, bool) {
	g.entriesMutex.Lock()
	defer g.entriesMutex.Unlock()

	entry, ok := g.entries[title]
	return entry, ok
}

// Titles returns the titles of all entries in publication order.
func (g *Gallery) Titles() []string {
	g.entriesMutex.Lock()
	defer g.entriesMutex.Unlock()

	titles := make([]string, len(g.order))
	copy(titles, g.order)
	return titles
}

// Broadcast sends the data to every client subscribed to the given
// subscription.
func (g *Gallery) Broadcast(sub Subscription, data ...[]byte) {
	g.clientsMutex.Lock()
	clientCopy := make([]*Client, len(g.clients))
	copy(clientCopy, g.clients)
	g.clientsMutex.Unlock()

	for _, client := range clientCopy {
		client.mutex.Lock()
		if client.subscriptions.IsSubscribedTo(sub) {
			for _, d := range data {
				client.conn.WriteMessage(websocket.BinaryMessage, d)
			}
		}
		client.mutex.Unlock()
	}
}

// HandleConn registers the connection as a client and services its control
// messages until it disconnects. New metadata subscribers are sent the
// current title list immediately.
func (g *Gallery) HandleConn(conn *websocket.Conn) {
	g.clientsMutex.Lock()
	client := &Client{
		mutex:         new(sync.Mutex),
		conn:          conn,
		subscriptions: 0,
	}
	g.clients = append(g.clients, client)
	g.clientsMutex.Unlock()

	defer func() {
		g.clientsMutex.Lock()
		defer g.clientsMutex.Unlock()

		for i, c := range g.clients {
			if c == client {
				g.clients = append(g.clients[:i], g.clients[i+1:]...)
				return
			}
		}
	}()

	for {
		msgType, data, err := client.conn.ReadMessage()
		if err != nil {
			log.Println("textel stream: client disconnected:", err)
			return
		}

		if msgType != websocket.BinaryMessage && msgType != websocket.TextMessage {
			continue
		}

		var controlMsg Control
		err = json.Unmarshal(data, &controlMsg)
		if err != nil {
			log.Println("textel stream: failed to unmarshal control message:", err)
			continue
		}

		if Subscription(controlMsg.Subscription).IsSubscribedTo(SubscriptionMetadata) {
			d, err := json.Marshal(g.Titles())
			if err == nil {
				client.mutex.Lock()
				client.conn.WriteMessage(websocket.BinaryMessage, append([]byte{PacketMetadata}, d...))
				client.mutex.Unlock()
			} else {
				log.Println("textel stream: HandleConn: error encoding title list:", err)
			}
		}

		client.mutex.Lock()
		client.id = controlMsg.ID
		client.subscriptions = Subscription(controlMsg.Subscription)
		client.mutex.Unlock()
	}
}
