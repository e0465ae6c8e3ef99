package handlers

import (
	"github.com/thereayou/chattr/internal/handlers/dto"
	"github.com/thereayou/chattr/internal/models"
	ws "github.com/thereayou/chattr/internal/websocket"
)

// HubFanout рассылает вставленные строки подписчикам комнат
type HubFanout struct {
	hub *ws.Hub
}

func NewHubFanout(hub *ws.Hub) *HubFanout {
	return &HubFanout{hub: hub}
}

func (f *HubFanout) MessageInserted(message *models.Message) {
	f.hub.BroadcastEvent(message.RoomID, ws.TypeMessage, formatMessage(message))
}

func (f *HubFanout) DMMessageInserted(message *models.DMMessage) {
	f.hub.BroadcastEvent(message.RoomID, ws.TypeDMMessage, formatDMMessage(message))
}

func formatMessage(msg *models.Message) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		UserID:    msg.UserID,
		Content:   msg.Content,
		IsBot:     msg.IsBot,
		CreatedAt: msg.CreatedAt,
	}
	if msg.Profile != nil {
		resp.Profile = &dto.UserInfo{
			ID:        msg.Profile.ID,
			Username:  msg.Profile.Username,
			AvatarURL: msg.Profile.AvatarURL,
		}
	}
	return resp
}

func formatDMMessage(msg *models.DMMessage) dto.DMMessageResponse {
	resp := dto.DMMessageResponse{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	if msg.Sender != nil {
		resp.Sender = &dto.UserInfo{
			ID:        msg.Sender.ID,
			Username:  msg.Sender.Username,
			AvatarURL: msg.Sender.AvatarURL,
		}
	}
	return resp
}
