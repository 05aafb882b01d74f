// Package health serves liveness and readiness checks for an AriaML server.
//
// Liveness always answers OK while the process runs. Readiness runs a set of
// named [Checks] concurrently, each bounded by a shared timeout, and answers
// 503 when any of them fails.
//
//	r.Get("/health/live", health.Live())
//	r.Get("/health/ready", health.Ready(health.Checks{
//	    "pages": store.Healthcheck(),
//	}, health.WithTimeout(2*time.Second)))
//
// Checks answer plain text by default. Clients that send
// Accept: application/json or ?format=json receive a [Report]:
//
//	{"status":"unhealthy","checks":{"pages":{"status":"unhealthy","error":"..."}}}
package health
