package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/price-consumer/v1"
)

// generateEvents creates count price events per symbol following a random walk.
// Timestamps advance by step from start; roughly one event in twenty is halted.
func generateEvents(symbols []string, count int, basePrice, volatility float64, start time.Time, step time.Duration) []v1.PriceEvent {
	events := make([]v1.PriceEvent, 0, count*len(symbols))
	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		prices[symbol] = basePrice
	}

	for i := range count {
		ts := uint64(start.Add(time.Duration(i) * step).UnixMilli())
		for _, symbol := range symbols {
			price := prices[symbol] * (1 + (rand.Float64()-0.5)*volatility)
			price = math.Max(math.Round(price*1000)/1000, 0.001)
			prices[symbol] = price

			status := uint8(1)
			if rand.Float64() < 0.05 {
				status = 2
			}

			events = append(events, v1.PriceEvent{
				Symbol:     symbol,
				Price:      price,
				Confidence: math.Round(price*volatility*1000) / 1000,
				Timestamp:  ts,
				Status:     status,
			})
		}
	}

	return events
}

func main() {
	var (
		brokers    = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic      = flag.String("topic", "prices", "Kafka topic name")
		file       = flag.String("file", "", "JSON file with price events (optional, generates events if not provided)")
		symbols    = flag.String("symbols", "SOL/USD", "Symbols to generate prices for (comma-separated)")
		delay      = flag.Duration("delay", 100*time.Millisecond, "Delay between sending events")
		count      = flag.Int("count", 1000, "Number of events to generate per symbol")
		basePrice  = flag.Float64("base-price", 34.5, "Starting price")
		volatility = flag.Float64("volatility", 0.002, "Relative price move per step")
		step       = flag.Duration("step", time.Second, "Timestamp distance between generated events")
	)
	flag.Parse()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:        *topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	defer writer.Close()

	ctx := context.Background()

	var events []v1.PriceEvent
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read file %s: %v", *file, err)
		}
		if err := json.Unmarshal(data, &events); err != nil {
			log.Fatalf("Failed to parse JSON from file: %v", err)
		}
		log.Printf("Loaded %d events from file: %s", len(events), *file)
	} else {
		symbolList := strings.Split(*symbols, ",")
		start := time.Now().Add(-time.Duration(*count) * *step)
		events = generateEvents(symbolList, *count, *basePrice, *volatility, start, *step)
		log.Printf("Generated %d events for %d symbols", len(events), len(symbolList))
	}

	log.Printf("Sending events to Kafka broker: %s, topic: %s", *brokers, *topic)

	sent := 0
	for i, event := range events {
		if err := event.Validate(); err != nil {
			log.Printf("Skipping invalid event %d: %v", i+1, err)
			continue
		}

		value, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal event %d: %v", i+1, err)
			continue
		}

		// Keyed by symbol so each symbol stays on one partition, in order.
		msg := kafka.Message{
			Key:   []byte(event.Symbol),
			Value: value,
			Time:  time.UnixMilli(int64(event.Timestamp)),
			Headers: []kafka.Header{
				{Key: "x-request-id", Value: []byte(uuid.NewString())},
			},
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("Failed to send event %d (%s): %v", i+1, event.Symbol, err)
			continue
		}
		sent++

		if (i+1)%100 == 0 || i == len(events)-1 {
			log.Printf("Sent event %d/%d: %s @ %.3f ± %.3f (status %d)",
				i+1, len(events), event.Symbol, event.Price, event.Confidence, event.Status)
		}

		if i < len(events)-1 {
			time.Sleep(*delay)
		}
	}

	log.Printf("Sent %d of %d events", sent, len(events))
}
