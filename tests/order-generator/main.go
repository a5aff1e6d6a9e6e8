package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	broker        = "localhost:9092"
	topic         = "payment-notifications"
	webhookSecret = "whsec_test"
	// пустой id: случайные заказы, сервис должен подтвердить их как unknown_order
	orderID  = ""
	interval = 2 * time.Second
)

// Генератор подписанных уведомлений checkout.session.completed для топика уведомлений.
func main() {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			id := orderID
			if id == "" {
				id = uuid.NewString()
			}
			msg, err := signedNotification(webhookSecret, id)
			if err != nil {
				log.Println("failed to build notification:", err)
				continue
			}
			if err := writer.WriteMessages(ctx, msg); err != nil {
				log.Println("failed to write notification:", err)
				continue
			}
			log.Println("notification sent", string(msg.Key), id)
		case <-ctx.Done():
			return
		}
	}
}

func signedNotification(secret, orderID string) (kafka.Message, error) {
	eventID := fmt.Sprintf("evt_%d", rand.Int63())

	// повторы того же события проверяют дедупликацию
	if rand.Intn(4) == 0 {
		eventID = "evt_replayed"
	}

	payload, err := json.Marshal(map[string]any{
		"id":          eventID,
		"object":      "event",
		"type":        "checkout.session.completed",
		"api_version": "2023-10-16",
		"created":     time.Now().Unix(),
		"data": map[string]any{
			"object": map[string]any{
				"id":       "cs_test_" + uuid.NewString(),
				"object":   "checkout.session",
				"metadata": map[string]string{"orderId": orderID},
			},
		},
	})
	if err != nil {
		return kafka.Message{}, err
	}

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})

	return kafka.Message{
		Key:     []byte(eventID),
		Value:   signed.Payload,
		Headers: []kafka.Header{{Key: "Stripe-Signature", Value: []byte(signed.Header)}},
	}, nil
}
