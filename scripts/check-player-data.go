package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
	"github.com/KirkDiggler/wuxing-api/internal/redis"
	"github.com/KirkDiggler/wuxing-api/internal/repositories/player"
)

// repairState fills missing entries and clamps negative counts. A battle
// context that is malformed or disagrees with the in-battle flag is dropped.
func repairState(s *wuxing.GameState) {
	if s.Inventory == nil {
		s.Inventory = wuxing.Inventory{}
	}
	if s.Wallet == nil {
		s.Wallet = wuxing.Wallet{}
	}
	if s.Skills == nil {
		s.Skills = wuxing.SkillSet{}
	}
	for _, e := range wuxing.AllElements() {
		s.Inventory[e] = max(s.Inventory[e], 0)
		skill := s.Skills[e]
		skill.YinLevel = max(skill.YinLevel, 0)
		skill.YangLevel = max(skill.YangLevel, 0)
		s.Skills[e] = skill
	}
	for _, c := range wuxing.AllCurrencies() {
		s.Wallet[c] = max(s.Wallet[c], 0)
	}
	if s.InBattle != (s.Battle != nil) || (s.Battle != nil && s.Battle.Validate() != nil) {
		s.InBattle = false
		s.Battle = nil
	}
}

func main() {
	repair := flag.Bool("repair", false, "rewrite repairable snapshots")
	flag.Parse()

	redisAddr := os.Getenv("WUXING_REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	client, err := redis.NewClient(redisAddr)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	if err := redis.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create repository:", err)
	}

	fmt.Println("Connected to Redis:", redisAddr)
	fmt.Println("Checking player snapshots...")

	list, err := repo.List(ctx, player.ListInput{})
	if err != nil {
		log.Fatal("Failed to list players:", err)
	}

	var broken, repaired int
	for _, id := range list.PlayerIDs {
		got, err := repo.Get(ctx, player.GetInput{PlayerID: id})
		if err != nil {
			fmt.Printf("✗ Unreadable snapshot for %s: %v\n", id, err)
			broken++
			continue
		}

		state := got.Record.State
		verr := state.Validate()
		if verr == nil {
			continue
		}
		fmt.Printf("✗ Invalid snapshot for %s: %v\n", id, verr)
		broken++

		if !*repair {
			continue
		}

		repairState(state)
		if err := state.Validate(); err != nil {
			fmt.Printf("  Could not repair %s: %v\n", id, err)
			continue
		}
		if _, err := repo.Update(ctx, player.UpdateInput{State: state}); err != nil {
			fmt.Printf("  Failed to save %s: %v\n", id, err)
			continue
		}
		fmt.Printf("  Repaired %s\n", id)
		repaired++
	}

	fmt.Printf("\nChecked %d players, %d invalid", len(list.PlayerIDs), broken)
	if *repair {
		fmt.Printf(", %d repaired", repaired)
	}
	fmt.Println()

	if broken > repaired {
		os.Exit(1)
	}
}
