// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] in parallel:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "translations": func(ctx context.Context) error { ... },
//	}, health.WithTimeout(3*time.Second)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// asks for JSON with Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "translations": {"status": "unhealthy", "error": "no languages loaded"}
//	  }
//	}
package health
