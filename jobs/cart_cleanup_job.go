package jobs

import (
	"context"
	"log"
	"time"

	"github.com/yogamaster/yoga_master/stores"
)

// PurgeStaleCartItems returns the cron callback that clears cart entries
// nobody checked out. Cart items only live between add-to-cart and checkout,
// so anything older than ttl is abandoned.
func PurgeStaleCartItems(cart stores.CartStore, ttl time.Duration) func() {
	return func() {
		log.Println("Running job: PurgeStaleCartItems...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cutoff := time.Now().Add(-ttl)
		deleted, err := cart.DeleteCreatedBefore(ctx, cutoff)
		if err != nil {
			log.Printf("Error purging stale cart items: %v", err)
			return
		}

		if deleted > 0 {
			log.Printf("Purged %d stale cart item(s) older than %s", deleted, cutoff.Format(time.RFC3339))
		}
	}
}
