// Package off is a read-only client for the Open Food Facts REST API.
//
// A client is assembled by a versioned builder and issues blocking GET
// requests. Responses are returned raw: bodies are never parsed and
// non-2xx statuses are never turned into errors, so callers inspect the
// status and decode the JSON themselves.
//
//	client, err := off.V0().Locale(off.NewLocale("fr", "")).Build()
//	if err != nil {
//		// ...
//	}
//	resp, err := client.Facet(ctx, "brands", &off.Output{Page: off.Int(2)})
//	if err != nil {
//		// ...
//	}
//	defer resp.Body.Close()
package off
