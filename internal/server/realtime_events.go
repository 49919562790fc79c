package server

import (
	"context"
	"encoding/json"
	"log"
)

// Event type constants prevent typos in event names.
const (
	EventCommentCreated  = "comment_created"
	EventReplayLiked     = "replay_liked"
	EventChannelLiked    = "channel_liked"
	EventSettingsUpdated = "settings_updated"
)

// publishScopeEvent fans an event out to subscribers of one comment scope,
// locally and through Redis for other instances.
func (s *Server) publishScopeEvent(scope, eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"scope":   scope,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.Broadcast(scope, message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishScope(context.Background(), scope, message); err != nil {
			log.Printf("failed to publish %s event to scope %s: %v", eventType, scope, err)
		}
	}
}

// publishBroadcastEvent fans a site-wide event out to every connected client.
func (s *Server) publishBroadcastEvent(eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	if s.hub != nil {
		s.hub.BroadcastAll(message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishBroadcast(context.Background(), message); err != nil {
			log.Printf("failed to publish %s broadcast event: %v", eventType, err)
		}
	}
}
