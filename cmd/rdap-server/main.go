// main.go
// A Cobra-based CLI that serves an in-memory RDAP store over HTTP, seeded
// from IANA bootstrap registry files.
//
// Flags
//   --addr               – bind address (default ":8080")
//   --dns-bootstrap       – path to an IANA dns.json file
//   --ipv4-bootstrap      – path to an IANA ipv4.json file
//   --ipv6-bootstrap      – path to an IANA ipv6.json file
//   --asn-bootstrap       – path to an IANA asn.json file
//   --object-tags         – path to an IANA object-tags.json file
//   --rate-limit          – requests/sec per source IP, 0 disables (default 0)
//   --rate-limit-cooldown – seconds a source IP is blocked after tripping the limit
//
// Run examples
//   ./rdap-server --addr :8080 --dns-bootstrap dns.json --ipv4-bootstrap ipv4.json
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/datum-labs/rdapkit/server"
	"github.com/datum-labs/rdapkit/store"
)

var (
	flagAddr               string
	flagDNSBootstrap       string
	flagIPv4Bootstrap      string
	flagIPv6Bootstrap      string
	flagASNBootstrap       string
	flagObjectTagBootstrap string
	flagRateLimit          int
	flagRateLimitCooldown  int
	flagRateLimitEntries   int
)

func main() {
	root := &cobra.Command{
		Use:   "rdap-server",
		Short: "serve RDAP lookups from IANA bootstrap registries",
		RunE:  runServe,
	}

	root.Flags().StringVar(&flagAddr, "addr", ":8080", "address to bind")
	root.Flags().StringVar(&flagDNSBootstrap, "dns-bootstrap", "", "path to IANA dns.json")
	root.Flags().StringVar(&flagIPv4Bootstrap, "ipv4-bootstrap", "", "path to IANA ipv4.json")
	root.Flags().StringVar(&flagIPv6Bootstrap, "ipv6-bootstrap", "", "path to IANA ipv6.json")
	root.Flags().StringVar(&flagASNBootstrap, "asn-bootstrap", "", "path to IANA asn.json")
	root.Flags().StringVar(&flagObjectTagBootstrap, "object-tags", "", "path to IANA object-tags.json")
	root.Flags().IntVar(&flagRateLimit, "rate-limit", 0, "requests/sec per source IP, 0 disables")
	root.Flags().IntVar(&flagRateLimitCooldown, "rate-limit-cooldown", 60, "seconds a source IP stays blocked once it trips the limit")
	root.Flags().IntVar(&flagRateLimitEntries, "rate-limit-entries", 10000, "max tracked source IPs before oldest entries are evicted")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	s := store.New()

	loaders := []struct {
		path string
		load func(*store.Store, []byte) error
	}{
		{flagDNSBootstrap, store.LoadDNSBootstrap},
		{flagIPv4Bootstrap, store.LoadIPBootstrap},
		{flagIPv6Bootstrap, store.LoadIPBootstrap},
		{flagASNBootstrap, store.LoadASNBootstrap},
		{flagObjectTagBootstrap, store.LoadObjectTagBootstrap},
	}
	loaded := 0
	for _, l := range loaders {
		if l.path == "" {
			continue
		}
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return fmt.Errorf("read %s: %w", l.path, err)
		}
		if err := l.load(s, raw); err != nil {
			return fmt.Errorf("load %s: %w", l.path, err)
		}
		loaded++
		log.Printf("rdap-server: loaded bootstrap file %s", l.path)
	}
	if loaded == 0 {
		log.Printf("rdap-server: no bootstrap files given, starting with an empty store")
	}

	var router *server.Router
	if flagRateLimit > 0 {
		router = server.NewRouterWithLimiter(s, flagRateLimit, flagRateLimitCooldown, flagRateLimitEntries)
	} else {
		router = server.NewRouter(s)
	}

	log.Printf("rdap-server: listening on %s", flagAddr)
	return http.ListenAndServe(flagAddr, router)
}
