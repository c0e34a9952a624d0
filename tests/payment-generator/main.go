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

	"github.com/segmentio/kafka-go"
)

type PaymentConfirmation struct {
	OrderID       string `json:"order_id"`
	OrderCode     string `json:"order_code"`
	PaymentStatus string `json:"payment_status"`
	PaidAt        int64  `json:"paid_at"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateConfirmation() PaymentConfirmation {
	status := "PAID"
	// An occasional unpaid event exercises the consumer's skip path.
	if rand.Intn(10) == 0 {
		status = "UNPAID"
	}
	return PaymentConfirmation{
		OrderID:       "order_" + randomString(16),
		OrderCode:     fmt.Sprintf("GH-%04d", rand.Intn(10000)),
		PaymentStatus: status,
		PaidAt:        time.Now().Unix(),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "payment-confirmations",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			confirmation := generateConfirmation()
			data, _ := json.Marshal(confirmation)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("confirmation generated", confirmation.OrderID, confirmation.PaymentStatus)
		case <-ctx.Done():
			return
		}
	}
}
