// Package health serves liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "placeholder": client.Ping,
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log)))
//
// Checks run concurrently under one timeout. Responses are plain text
// ("OK" or "Service Unavailable") unless the client asks for JSON with
// Accept: application/json or ?format=json:
//
//	{"status":"unhealthy","checks":{"placeholder":{"status":"unhealthy","error":"...","duration":"12ms"}}}
package health
