// Package webscale provides a Go client SDK for the Webscale address-set
// API, which manages named collections of IP addresses (blocklists,
// throttle lists) hosted on the Webscale security service.
//
// The SDK exposes the four remote operations (list sets, get a set, list
// members, patch members) plus idempotent membership helpers that add an
// address only when it is not already present.
//
// Basic usage:
//
//	client, err := webscale.New("https://api.webscale.example", webscale.WithAPIKey("your-api-key"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	blocked, err := client.Membership().IsBlocked(ctx, "blocklist-1", "1.2.3.4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !blocked {
//	    result, err := client.Membership().AddMemberIfAbsent(ctx, "blocklist-1", "1.2.3.4")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("added:", result.Added)
//	}
package webscale
