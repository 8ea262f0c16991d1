package ws

import (
	"encoding/json"
	"log"
	"time"
)

type ProfileEvent struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// Publisher turns profile events into hub broadcasts.
type Publisher struct {
	hub    *Hub
	logger *log.Logger
	now    func() time.Time
}

func NewPublisher(hub *Hub, logger *log.Logger) *Publisher {
	return &Publisher{hub: hub, logger: logger, now: time.Now}
}

func (p *Publisher) Publish(eventType string, payload any) {
	if p == nil || p.hub == nil {
		return
	}

	evt := ProfileEvent{
		Type:      eventType,
		Data:      payload,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("[WS] encode event failed type=%s err=%v", eventType, err)
		}
		return
	}

	p.hub.Broadcast(eventType, b)
}
