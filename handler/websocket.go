package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"planetarium_api/database"
	"planetarium_api/helper"
	"planetarium_api/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// SessionAvailability snapshot ghế của một session, gửi cho client đang xem sơ đồ
type SessionAvailability struct {
	ShowSessionId    uint      `json:"showSessionId"`
	TicketsAvailable int64     `json:"ticketsAvailable"`
	TakenSeats       []SeatRef `json:"takenSeats"`
}

func fetchSessionAvailability(sessionId uint) (*SessionAvailability, error) {
	db := database.DB

	var session model.ShowSession
	if err := db.Preload("PlanetariumDome").First(&session, sessionId).Error; err != nil {
		return nil, err
	}

	available, err := helper.TicketsAvailable(db, session)
	if err != nil {
		return nil, err
	}

	var tickets []model.Ticket
	if err := db.Where("show_session_id = ?", sessionId).
		Order(`"row" ASC, seat ASC`).
		Find(&tickets).Error; err != nil {
		return nil, err
	}

	taken := make([]SeatRef, 0, len(tickets))
	for _, ticket := range tickets {
		taken = append(taken, SeatRef{Row: ticket.Row, Seat: ticket.Seat})
	}

	return &SessionAvailability{
		ShowSessionId:    sessionId,
		TicketsAvailable: available,
		TakenSeats:       taken,
	}, nil
}

// BroadcastSessionAvailability đẩy snapshot mới lên Redis sau khi ghế thay đổi
func BroadcastSessionAvailability(sessionId uint) {
	availability, err := fetchSessionAvailability(sessionId)
	if err != nil {
		log.Printf("broadcast availability for session %d failed: %v", sessionId, err)
		return
	}

	payload, err := json.Marshal(availability)
	if err != nil {
		return
	}

	if err := redisClient.Publish(
		context.Background(),
		fmt.Sprintf("session:%d", sessionId),
		payload,
	).Err(); err != nil {
		log.Printf("redis publish for session %d failed: %v", sessionId, err)
	}
}

// WebSocketConnection xử lý WS connection
func WebSocketConnection(c *websocket.Conn) {
	// Lấy sessionId từ route
	sessionIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(sessionIdStr, 10, 64)
	sessionId := uint(id64)

	// Khi WS disconnect → xoá client
	defer func() {
		mu.Lock()
		if clients[sessionId] != nil {
			delete(clients[sessionId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	// Thêm client mới vào room
	mu.Lock()
	if clients[sessionId] == nil {
		clients[sessionId] = make(map[*websocket.Conn]bool)
	}
	clients[sessionId][c] = true
	mu.Unlock()

	// Gửi snapshot lần đầu
	if availability, err := fetchSessionAvailability(sessionId); err == nil {
		c.WriteJSON(availability)
	}

	// Sub kênh Redis
	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("session:%d", sessionId),
	)
	defer pubsub.Close()

	// Lắng nghe message từ Redis
	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[sessionId] {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[sessionId], conn)
			}
		}
		mu.Unlock()
	}
}
