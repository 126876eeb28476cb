// Package counter provides the "times used" counter shown by the studio.
//
// Client fetches the total from a remote counter API:
//
//	GET <base-url>/counters/total/ip  ->  {"counter": 1234}
//
// Every failure (transport error, non-2xx status, malformed body) is absorbed
// and reported as 0, so callers never have to handle counter errors:
//
//	client := counter.NewClient("https://api.example.com/", counter.WithTimeout(5*time.Second))
//	total := client.Total(ctx) // 0 when the API is unreachable
//
// The package also implements the server side of the same endpoint. A Store
// records client IPs and reports how many distinct IPs were seen:
//
//	store := counter.NewMemoryStore()           // single process
//	store := counter.NewRedisStore(rdb, key)    // shared, HyperLogLog based
//
//	_ = store.Hit(ctx, "203.0.113.7")
//	n, _ := store.Total(ctx)
//
// StoreSource adapts a Store to the Source interface so the studio can read
// its own counter without a network round trip.
package counter
