package web

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
)

// liveHub fans build snapshots out to websocket subscribers. Subscribers are
// grouped by build id; a connection only ever receives the build it asked for.
type liveHub struct {
	mutex       sync.Mutex
	subscribers map[string]map[*websocket.Conn]bool
	upgrader    websocket.Upgrader
}

func newLiveHub() *liveHub {
	return &liveHub{
		subscribers: map[string]map[*websocket.Conn]bool{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (hub *liveHub) subscribe(buildID bson.ObjectId, conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	key := buildID.Hex()
	if hub.subscribers[key] == nil {
		hub.subscribers[key] = map[*websocket.Conn]bool{}
	}
	hub.subscribers[key][conn] = true
}

func (hub *liveHub) unsubscribe(buildID bson.ObjectId, conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	key := buildID.Hex()
	delete(hub.subscribers[key], conn)
	if len(hub.subscribers[key]) == 0 {
		delete(hub.subscribers, key)
	}
}

func (hub *liveHub) hasSubscribers(buildID bson.ObjectId) bool {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	return len(hub.subscribers[buildID.Hex()]) > 0
}

// broadcastBuild pushes the current snapshot to every subscriber of the
// build. Dead connections are dropped on write failure.
func (hub *liveHub) broadcastBuild(build *model.BuildState) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for conn := range hub.subscribers[build.ID.Hex()] {
		if err := conn.WriteJSON(newBuildResponse(build)); err != nil {
			log.Warnf("live write failed: %s", err.Error())
			conn.Close()
			delete(hub.subscribers[build.ID.Hex()], conn)
		}
	}
}

// notifyBuild reloads the build and broadcasts it, skipping the read when
// nobody listens.
func (h *handler) notifyBuild(db mongo.DB, buildID bson.ObjectId) {
	if !h.live.hasSubscribers(buildID) {
		return
	}

	build, err := h.BuildGet(db, buildID)
	if err != nil {
		log.Warnf("live reload of build %s failed: %s", buildID.Hex(), err.Error())
		return
	}
	h.live.broadcastBuild(build)
}

func (h *handler) liveHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	build, getErr := h.BuildGet(extractDBSession(r.Context()), buildID)
	if getErr != nil {
		handleRequestErr(w, getErr)
		return
	}

	conn, upgradeErr := h.live.upgrader.Upgrade(w, r, nil)
	if upgradeErr != nil {
		log.Errorf("websocket upgrade failed: %s", upgradeErr.Error())
		return
	}
	defer conn.Close()

	h.live.subscribe(buildID, conn)
	defer h.live.unsubscribe(buildID, conn)

	if err := conn.WriteJSON(newBuildResponse(build)); err != nil {
		log.Warnf("live write failed: %s", err.Error())
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
