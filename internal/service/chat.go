package service

import "github.com/iv4shk3v1ch/trust-travel-sub001/internal/chat"

type ChatService interface {
	HandleMessage(userID string, session chat.Session, message string) (*chat.Response, error)
}
