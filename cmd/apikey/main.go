// Command apikey prints an API key for the roster server.
//
//	apikey -s <secret> [-r anon|service_role] [-t 720h]
//
// The secret must match the server's -s / secret_key setting.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/roster/internal/server/auth"
)

func main() {
	fs := flag.NewFlagSet("apikey", flag.ExitOnError)

	secret := fs.String("s", "", "API key secret (required)")
	role := fs.String("r", string(auth.RoleAnon), "role: anon or service_role")
	ttl := fs.Duration("t", 0, "validity, e.g. 720h; 0 means no expiry")

	_ = fs.Parse(os.Args[1:])

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "apikey: -s is required")
		fs.Usage()
		os.Exit(2)
	}

	key, err := auth.GenerateAPIKey(auth.Role(*role), []byte(*secret), *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "apikey: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(key)
}
