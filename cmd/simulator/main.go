package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// simulates family members wandering around a home point, crossing a
// 100m zone boundary often enough to exercise entry/exit detection

type locationMessage struct {
	MemberID  string  `json:"member_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

const (
	homeLat = -6.2088
	homeLng = 106.8456
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds> <member_id> [member_id ...]\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}
	members := os.Args[2:]

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("famloc-simulator")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("connected to %s, publishing every %ds for %d members", broker, intervalSec, len(members))

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		memberID := members[rand.Intn(len(members))]

		// ~50% of reports stay within 100m of home, the rest drift out
		// to a few hundred meters
		drift := 0.0005
		if rand.Float64() < 0.5 {
			drift = 0.004
		}
		lat := homeLat + (rand.Float64()-0.5)*drift
		lng := homeLng + (rand.Float64()-0.5)*drift

		msg := locationMessage{
			MemberID:  memberID,
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Now().Unix(),
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/famloc/member/%s/location", memberID)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published to %s: %s", topic, payload)
	}
}
