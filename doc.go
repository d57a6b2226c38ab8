// Package stripekit provides a Go client binding for the Stripe payment
// API, built for use from application code holding a publishable key.
//
// The client composes authenticated form-encoded requests, dispatches them
// on background goroutines, and decodes typed responses or structured API
// errors. Every call completes through a callback that runs exactly once
// on the client's completion loop, so handlers from one client never run
// concurrently with each other.
//
// Basic usage:
//
//	client := stripekit.New(stripekit.WithAPIKey("pk_test_..."))
//	defer client.Close()
//
//	params := form.New().
//	    Set("card", form.Map(form.New().
//	        Set("number", form.String("4242424242424242")).
//	        Set("exp_month", form.Int(12)).
//	        Set("exp_year", form.Int(2030))))
//
//	stripekit.Post(client, "/tokens", params, func(tok *Token, err error) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("token:", tok.ID)
//	})
//
// Result types are caller-defined structs; tag fields that must be present
// with `validate:"required"` so an error payload cannot masquerade as a
// success.
package stripekit
