//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shuttle-hr/internal/domain"
)

// Публикует событие пересчёта назначений и ждёт, пока воркер его подтвердит.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	reason := flag.String("reason", domain.ReasonStopsChanged, "event reason")
	group := flag.String("group", "assignment-workers", "worker consumer group")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.NewAssignmentRecomputeEvent(*reason)
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamAssignmentsRecompute,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamAssignmentsRecompute)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Reason: %s\n", event.Reason)

	fmt.Printf("\nWaiting for group %q to ack...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			log.Fatalf("Timeout: message %s still pending", id)
		case <-ticker.C:
			pending, err := client.XPendingExt(ctx, &redis.XPendingExtArgs{
				Stream: domain.StreamAssignmentsRecompute,
				Group:  *group,
				Start:  id,
				End:    id,
				Count:  1,
			}).Result()
			if err != nil {
				log.Printf("XPENDING failed: %v", err)
				continue
			}
			if len(pending) > 0 {
				continue
			}

			groups, err := client.XInfoGroups(ctx, domain.StreamAssignmentsRecompute).Result()
			if err != nil {
				log.Printf("XINFO GROUPS failed: %v", err)
				continue
			}
			for _, g := range groups {
				if g.Name == *group && g.LastDeliveredID >= id {
					fmt.Printf("Acked by %s\n", *group)
					return
				}
			}
		}
	}
}
