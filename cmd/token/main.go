// Command token prints a service token for the internal event API.
//
//	go run ./cmd/token -sub leads-api
//	curl -H "Authorization: Bearer <token>" localhost:8080/internal/api/v1/events/lead-assigned ...
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"lead-notification-srv/config"
	"lead-notification-srv/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "leads-api", "calling service name")
	scope := flag.String("scope", "events", "token scope")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	// INTERNAL_JWT_SECRET must match the running service
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	manager, err := jwt.New(jwt.Config{
		SecretKey: cfg.InternalJWT.SecretKey,
		Issuer:    cfg.InternalJWT.Issuer,
		TTL:       *ttl,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize JWT manager: ", err)
		os.Exit(1)
	}

	token, err := manager.GenerateToken(*subject, *scope)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to generate token: ", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
