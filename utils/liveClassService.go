package utils

import (
	"edusphere/config"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// LiveRoom is the provider-side room backing a live class
type LiveRoom struct {
	RoomID  string
	JoinURL string
}

// CreateLiveRoom provisions a meeting room at the live-streaming provider
func CreateLiveRoom(topic string, scheduledAt time.Time, durationMinutes int) (*LiveRoom, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.LiveAPIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"topic":            topic,
			"start_time":       scheduledAt.UTC().Format(time.RFC3339),
			"duration_minutes": durationMinutes,
		}).
		Post(config.AppConfig.LiveAPIURL + "/rooms")
	if err != nil {
		log.Printf("Failed to create live room: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("Live provider rejected room creation: %s", resp.String())
		return nil, fmt.Errorf("live provider returned status %d", resp.StatusCode())
	}

	var roomResp struct {
		ID      string `json:"id"`
		JoinURL string `json:"join_url"`
	}
	if err := json.Unmarshal(resp.Body(), &roomResp); err != nil {
		log.Printf("Failed to parse live room response: %v", err)
		return nil, err
	}

	return &LiveRoom{RoomID: roomResp.ID, JoinURL: roomResp.JoinURL}, nil
}

// CancelLiveRoom tears down a provider room. Best effort; the class row
// is cancelled regardless.
func CancelLiveRoom(roomID string) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.LiveAPIKey).
		Delete(config.AppConfig.LiveAPIURL + "/rooms/" + roomID)
	if err != nil {
		log.Printf("Failed to cancel live room %s: %v", roomID, err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Live provider rejected room cancellation %s: %d", roomID, resp.StatusCode())
	}
}
