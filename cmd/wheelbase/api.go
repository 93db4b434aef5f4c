package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/mastercactapus/wheelbase/drive"
)

const maxCommandBody = 64 << 10

type api struct {
	http.Handler
	d   Drive
	sse *sse.Server

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	upgrader websocket.Upgrader
}

func newAPI(d Drive) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		d:       d,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(io.Discard, "", 0),
		}),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	r.HandleFunc("/api/command", a.command).Methods("POST")
	r.HandleFunc("/api/state", a.state).Methods("GET")
	r.HandleFunc("/ws", a.ws)
	r.PathPrefix("/events/").Handler(a.sse)

	go a.broadcast()

	return a
}

func (a *api) broadcast() {
	defer close(a.stopped)
	for {
		var state drive.Status
		select {
		case <-a.done:
			return
		case state = <-a.d.State():
		}
		data, err := json.Marshal(state)
		if err != nil {
			log.Printf("ERROR: marshal json: %+v", err)
			continue
		}
		a.sse.SendMessage("/events/state", sse.SimpleMessage(string(data)))
	}
}

// Close stops the state broadcaster and the SSE server.
func (a *api) Close() {
	a.closeOnce.Do(func() {
		close(a.done)
		<-a.stopped
		a.sse.Shutdown()
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) command(w http.ResponseWriter, req *http.Request) {
	data, err := io.ReadAll(io.LimitReader(req.Body, maxCommandBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := runText(req.Context(), a.d, string(data))
	var pErr parseError
	if errors.As(err, &pErr) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("ERROR: run: %+v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, st)
}

func (a *api) state(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, a.d.Status())
}

type wsError struct {
	Error string `json:"error"`
}

func (a *api) ws(w http.ResponseWriter, req *http.Request) {
	ws, err := a.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}
	defer ws.Close()

	for {
		typ, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("ERROR: read:", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		var reply interface{}
		st, err := runText(req.Context(), a.d, string(data))
		if err != nil {
			reply = wsError{Error: err.Error()}
		} else {
			reply = st
		}
		err = ws.WriteJSON(reply)
		if err != nil {
			log.Println("ERROR: send:", err)
			return
		}
	}
}
