// Package slidegate provides a Go client SDK for SlideGate, a remote
// verification service combining slider captchas with SMS one-time
// passwords.
//
// Every method is a single request/response round trip against the
// service's REST API: the SDK performs no retries, caching, or rate
// limiting of its own. Failures come in two shapes callers should
// distinguish: a *ServiceError carries the service's full response
// envelope and is safe to surface, while a *TransportError wraps an
// opaque network or parse failure.
//
// Basic usage:
//
//	client, err := slidegate.New(slidegate.Config{
//	    BaseURL: "https://verify.example.com",
//	    APIKey:  "your-api-key",
//	    AppName: "my-app",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	challenge, err := client.GenerateCaptcha(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render challenge.Image and challenge.Thumb, collect the drop
//	// position, then redeem the challenge:
//	ok, err := client.CheckCaptcha(ctx, challenge.CaptchaKey, slidegate.Point{X: 179, Y: 76}.String())
//
// The X-Client-IP header is per-client mutable state, set via
// SetClientIP and defaulting to "none". When one client serves requests
// for many end users, set the IP immediately before each IP-sensitive
// call; concurrent writers are last-writer-wins. A per-call IP parameter
// would be the safer design and may be added later.
package slidegate
